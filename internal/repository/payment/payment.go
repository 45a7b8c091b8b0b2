package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/order"
)

type PaymentDB struct {
	ID      int64
	OrderID int64
	Method  string
	Status  string
	Amount  decimal.Decimal
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByOrderForUpdate блокирует строку платежа до конца транзакции
func (r *Repository) GetByOrderForUpdate(ctx context.Context, restaurantID, orderID int64) (*entities.Payment, error) {
	query := `SELECT p.payment_id, p.order_id, p.payment_method, p.payment_status, p.amount
		FROM payments p
		JOIN orders o ON p.order_id = o.id
		WHERE o.id = $1 AND o.restaurant_id = $2
		FOR UPDATE OF p`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, orderID, restaurantID).
		Scan(
			&paymentDB.ID,
			&paymentDB.OrderID,
			&paymentDB.Method,
			&paymentDB.Status,
			&paymentDB.Amount,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get error: %w", err)
	}

	return &entities.Payment{
		ID:      paymentDB.ID,
		OrderID: paymentDB.OrderID,
		Method:  entities.PaymentMethod(paymentDB.Method),
		Status:  entities.PaymentStatusType(paymentDB.Status),
		Amount:  paymentDB.Amount,
	}, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, paymentID int64, status entities.PaymentStatusType) error {
	query := `UPDATE payments
		SET payment_status = $1, updated_at = NOW()
		WHERE payment_id = $2`

	tag, err := r.querier.Exec(ctx, query, status.String(), paymentID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository update status error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrPaymentNotFound
	}

	return nil
}
