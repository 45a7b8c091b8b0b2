package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"restaurant-admin/internal/entities"
	"restaurant-admin/pkg/imagepath"
)

type Service struct {
	orders      OrderRepository
	payments    PaymentRepository
	outbox      OutboxRepository
	ruleFactory RuleFactory
	txManager   TxManager
	notifier    Notifier
	now         func() time.Time
}

func New(
	orders OrderRepository,
	payments PaymentRepository,
	outbox OutboxRepository,
	ruleFactory RuleFactory,
	txManager TxManager,
	notifier Notifier,
) *Service {
	return &Service{
		orders:      orders,
		payments:    payments,
		outbox:      outbox,
		ruleFactory: ruleFactory,
		txManager:   txManager,
		notifier:    notifier,
		now:         time.Now,
	}
}

// UpdateStatus переводит заказ ресторана в новый статус и в той же транзакции
// пересчитывает статус платежа и пишет событие в outbox.
func (s *Service) UpdateStatus(
	ctx context.Context,
	restaurantID, orderID int64,
	status entities.OrderStatusType,
) (*entities.OrderStatusChange, string, error) {
	if !status.IsValid() {
		StatusTransitionsTotal.WithLabelValues("unknown", resultInvalid).Inc()
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if orderID <= 0 {
		StatusTransitionsTotal.WithLabelValues(status.String(), resultInvalid).Inc()
		return nil, "", fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}

	deriveFn, err := s.ruleFactory.GetRule(status)
	if err != nil {
		StatusTransitionsTotal.WithLabelValues(status.String(), resultInvalid).Inc()
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}

	change := &entities.OrderStatusChange{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       status,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// строка везет restaurant_id в WHERE, чужой заказ не обновится
		if err := s.orders.UpdateStatus(ctx, restaurantID, orderID, status); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		payment, err := s.payments.GetByOrderForUpdate(ctx, restaurantID, orderID)
		if err != nil && !errors.Is(err, ErrPaymentNotFound) {
			return fmt.Errorf("get order payment: %w", err)
		}

		if payment != nil {
			if derived := deriveFn(*payment); derived != nil {
				if err := s.payments.UpdateStatus(ctx, payment.ID, *derived); err != nil {
					return fmt.Errorf("update payment status: %w", err)
				}
				change.PaymentStatus = derived
			}
		}

		change.ChangedAt = s.now().UTC()

		err = s.outbox.Add(ctx, entities.OrderStatusChangedEvent{
			EventID:       uuid.New(),
			OrderID:       change.OrderID,
			RestaurantID:  change.RestaurantID,
			Status:        change.Status,
			PaymentStatus: change.PaymentStatus,
			ChangedAt:     change.ChangedAt,
		})
		if err != nil {
			return fmt.Errorf("add status changed event: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			StatusTransitionsTotal.WithLabelValues(status.String(), resultNotFound).Inc()
			return nil, "", err
		}
		StatusTransitionsTotal.WithLabelValues(status.String(), resultError).Inc()
		return nil, "", fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	StatusTransitionsTotal.WithLabelValues(status.String(), resultSuccess).Inc()
	s.notifier.Notify(*change)

	return change, statusMessage(change), nil
}

func (s *Service) GetOrderDetails(ctx context.Context, restaurantID, orderID int64) (*entities.OrderDetails, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}

	details, err := s.orders.GetDetails(ctx, restaurantID, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: get order details: %w", ErrDatabase, err)
	}

	for i := range details.Items {
		item := &details.Items[i]
		item.ImageURL = imagepath.Resolve(item.ImageURL, details.RestaurantName, item.ProductImage)
	}

	return details, nil
}

func (s *Service) ListOrders(
	ctx context.Context,
	restaurantID int64,
	filter entities.OrderFilter,
) ([]entities.OrderSummary, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.List(ctx, restaurantID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %w", ErrDatabase, err)
	}

	return orders, nil
}

func statusMessage(change *entities.OrderStatusChange) string {
	msg := fmt.Sprintf("Order #%d status updated to %s", change.OrderID, change.Status)
	if change.PaymentStatus != nil {
		msg += fmt.Sprintf(", payment marked as %s", *change.PaymentStatus)
	}
	return msg
}
