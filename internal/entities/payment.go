package entities

import (
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
)

func (m PaymentMethod) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "Pending"
	PaymentCompleted PaymentStatusType = "Completed"
	PaymentCancelled PaymentStatusType = "Cancelled"
	PaymentFailed    PaymentStatusType = "Failed"
	PaymentRefunded  PaymentStatusType = "Refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type Payment struct {
	ID      int64
	OrderID int64
	Method  PaymentMethod
	Status  PaymentStatusType
	Amount  decimal.Decimal
}
