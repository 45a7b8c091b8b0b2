//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"restaurant-admin/internal/entities"
)

type OrderRepository interface {
	UpdateStatus(ctx context.Context, restaurantID, orderID int64, status entities.OrderStatusType) error
	GetDetails(ctx context.Context, restaurantID, orderID int64) (*entities.OrderDetails, error)
	List(ctx context.Context, restaurantID int64, filter entities.OrderFilter) ([]entities.OrderSummary, error)
}

type PaymentRepository interface {
	GetByOrderForUpdate(ctx context.Context, restaurantID, orderID int64) (*entities.Payment, error)
	UpdateStatus(ctx context.Context, paymentID int64, status entities.PaymentStatusType) error
}

type OutboxRepository interface {
	Add(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

type (
	DeriveFn    func(payment entities.Payment) *entities.PaymentStatusType
	RuleFactory interface {
		GetRule(status entities.OrderStatusType) (DeriveFn, error)
	}
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	Notify(change entities.OrderStatusChange)
}
