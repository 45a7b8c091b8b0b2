package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TopProduct struct {
	ProductName string
	Quantity    int64
	Revenue     decimal.Decimal
}

type Summary struct {
	RestaurantID          int64
	From                  time.Time
	To                    time.Time
	OrdersTotal           int64
	OrdersByStatus        map[OrderStatusType]int64
	CompletedRevenue      decimal.Decimal
	CompletedTransactions int64
	PendingPayments       int64
	AverageOrderValue     decimal.Decimal
	TopProducts           []TopProduct
}
