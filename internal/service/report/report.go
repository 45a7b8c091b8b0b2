package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"restaurant-admin/internal/entities"
)

const (
	topProductsLimit = 5
	defaultPeriod    = 30 * 24 * time.Hour
	maxPeriod        = 366 * 24 * time.Hour
)

var ErrInvalidRange = errors.New("invalid report range")

// PaymentTotals агрегаты по платежам за период
type PaymentTotals struct {
	CompletedRevenue      decimal.Decimal
	CompletedTransactions int64
	PendingPayments       int64
}

type Service struct {
	repository Repository
	now        func() time.Time
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

// Summary сводка ресторана за [from, to). Нулевые границы означают последние 30 дней.
func (s *Service) Summary(ctx context.Context, restaurantID int64, from, to time.Time) (*entities.Summary, error) {
	if to.IsZero() {
		to = s.now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultPeriod)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	if to.Sub(from) > maxPeriod {
		return nil, fmt.Errorf("%w: period longer than a year", ErrInvalidRange)
	}

	counts, err := s.repository.OrderCounts(ctx, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("order counts: %w", err)
	}

	totals, err := s.repository.PaymentTotals(ctx, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("payment totals: %w", err)
	}

	top, err := s.repository.TopProducts(ctx, restaurantID, from, to, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	summary := &entities.Summary{
		RestaurantID:          restaurantID,
		From:                  from,
		To:                    to,
		OrdersByStatus:        make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses)),
		CompletedRevenue:      totals.CompletedRevenue,
		CompletedTransactions: totals.CompletedTransactions,
		PendingPayments:       totals.PendingPayments,
		AverageOrderValue:     decimal.Zero,
		TopProducts:           top,
	}

	// все статусы присутствуют в ответе, даже с нулем
	for _, status := range entities.OrderStatuses {
		summary.OrdersByStatus[status] = counts[status]
		summary.OrdersTotal += counts[status]
	}

	if totals.CompletedTransactions > 0 {
		summary.AverageOrderValue = totals.CompletedRevenue.
			Div(decimal.NewFromInt(totals.CompletedTransactions)).
			Round(2)
	}

	return summary, nil
}
