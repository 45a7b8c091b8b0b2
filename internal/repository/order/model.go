package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID           int64
	RestaurantID int64
	CustomerID   *int64
	TotalAmount  decimal.Decimal
	Status       string
	OrderType    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderSummaryDB struct {
	OrderDB
	CustomerName  *string
	PaymentMethod *string
	PaymentStatus *string
}

type OrderDetailsDB struct {
	OrderDB
	RestaurantName string
	CustomerName   *string
	CustomerEmail  *string
	PaymentMethod  *string
	PaymentStatus  *string
}

type OrderItemDB struct {
	ID           int64
	ProductID    *int64
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal
	ImageURL     *string
	ProductImage *string
}
