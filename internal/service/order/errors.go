package order

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidFilter   = errors.New("invalid order filter")
	ErrDatabase        = errors.New("database error")
)
