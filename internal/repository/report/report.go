package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/report"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func periodWhere(restaurantID int64, from, to time.Time) sq.And {
	return sq.And{
		sq.Eq{"o.restaurant_id": restaurantID},
		sq.GtOrEq{"o.created_at": from},
		sq.Lt{"o.created_at": to},
	}
}

func (r *Repository) OrderCounts(
	ctx context.Context,
	restaurantID int64,
	from, to time.Time,
) (map[entities.OrderStatusType]int64, error) {
	query, args, err := qb.
		Select("o.status", "COUNT(*)").
		From("orders o").
		Where(periodWhere(restaurantID, from, to)).
		GroupBy("o.status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository order counts error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository order counts error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected report repository order counts error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected report repository order counts error: %w", err)
	}

	return counts, nil
}

// PaymentTotals выручка считается только по payments.payment_status = Completed
func (r *Repository) PaymentTotals(
	ctx context.Context,
	restaurantID int64,
	from, to time.Time,
) (*report.PaymentTotals, error) {
	query, args, err := qb.
		Select(
			"COALESCE(SUM(p.amount) FILTER (WHERE p.payment_status = 'Completed'), 0)",
			"COUNT(*) FILTER (WHERE p.payment_status = 'Completed')",
			"COUNT(*) FILTER (WHERE p.payment_status = 'Pending')",
		).
		From("payments p").
		Join("orders o ON o.id = p.order_id").
		Where(periodWhere(restaurantID, from, to)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository payment totals error: %w", err)
	}

	var (
		totals  report.PaymentTotals
		revenue decimal.Decimal
	)
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(&revenue, &totals.CompletedTransactions, &totals.PendingPayments)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository payment totals error: %w", err)
	}
	totals.CompletedRevenue = revenue

	return &totals, nil
}

func (r *Repository) TopProducts(
	ctx context.Context,
	restaurantID int64,
	from, to time.Time,
	limit int,
) ([]entities.TopProduct, error) {
	query, args, err := qb.
		Select("oi.product_name", "SUM(oi.quantity)", "SUM(oi.quantity * oi.unit_price)").
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		Where(periodWhere(restaurantID, from, to)).
		Where(sq.NotEq{"o.status": entities.OrderCancelled.String()}).
		GroupBy("oi.product_name").
		OrderBy("SUM(oi.quantity) DESC", "oi.product_name").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top products error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top products error: %w", err)
	}
	defer rows.Close()

	top := make([]entities.TopProduct, 0, limit)
	for rows.Next() {
		var p entities.TopProduct
		if err := rows.Scan(&p.ProductName, &p.Quantity, &p.Revenue); err != nil {
			return nil, fmt.Errorf("unexpected report repository top products error: %w", err)
		}
		top = append(top, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected report repository top products error: %w", err)
	}

	return top, nil
}
