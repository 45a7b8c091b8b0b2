package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatusType string

const (
	OrderPreparing OrderStatusType = "preparing"
	OrderReady     OrderStatusType = "ready"
	OrderCompleted OrderStatusType = "completed"
	OrderCancelled OrderStatusType = "cancelled"
	OrderFailed    OrderStatusType = "failed"
	OrderRefunded  OrderStatusType = "refunded"
)

const DefaultOrderStatus = OrderPreparing

var OrderStatuses = []OrderStatusType{
	OrderPreparing,
	OrderReady,
	OrderCompleted,
	OrderCancelled,
	OrderFailed,
	OrderRefunded,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type OrderType string

const (
	DineIn   OrderType = "dine_in"
	Takeaway OrderType = "takeaway"
	Delivery OrderType = "delivery"
)

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) IsValid() bool {
	switch t {
	case DineIn, Takeaway, Delivery:
		return true
	default:
		return false
	}
}

type Order struct {
	ID           int64
	RestaurantID int64
	CustomerID   *int64
	TotalAmount  decimal.Decimal
	Status       OrderStatusType
	Type         OrderType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderSummary строка списка заказов
type OrderSummary struct {
	Order
	CustomerName  *string
	PaymentMethod *PaymentMethod
	PaymentStatus *PaymentStatusType
}

type OrderItem struct {
	ID          int64
	ProductID   *int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	ImageURL    *string
	// ProductImage текущее изображение товара, если товар еще существует
	ProductImage *string
}

type OrderDetails struct {
	Order
	RestaurantName string
	CustomerName   *string
	CustomerEmail  *string
	PaymentMethod  *PaymentMethod
	PaymentStatus  *PaymentStatusType
	Items          []OrderItem
}

// OrderStatusChange результат успешного перехода статуса
type OrderStatusChange struct {
	OrderID       int64
	RestaurantID  int64
	Status        OrderStatusType
	PaymentStatus *PaymentStatusType
	ChangedAt     time.Time
}

type OrderFilter struct {
	Status *OrderStatusType
	Type   *OrderType
	From   *time.Time
	To     *time.Time
	Limit  uint64
	Offset uint64
}
