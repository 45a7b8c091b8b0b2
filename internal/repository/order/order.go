package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/order"
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

// UpdateStatus пишет статус только заказу этого ресторана.
// Запись того же значения postgres считает затронутой строкой.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	restaurantID, orderID int64,
	status entities.OrderStatusType,
) error {
	query := `UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND restaurant_id = $3`

	tag, err := r.querier.Exec(ctx, query, status.String(), orderID, restaurantID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return order.ErrInvalidStatus
		}
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) GetDetails(ctx context.Context, restaurantID, orderID int64) (*entities.OrderDetails, error) {
	query := `SELECT o.id, o.restaurant_id, o.customer_id, o.total_amount, o.status, o.order_type,
			o.created_at, o.updated_at,
			r.name, u.name, u.email, p.payment_method, p.payment_status
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN users u ON u.id = o.customer_id
		LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.id = $1 AND o.restaurant_id = $2`

	var detailsDB OrderDetailsDB
	err := r.querier.QueryRow(ctx, query, orderID, restaurantID).
		Scan(
			&detailsDB.ID,
			&detailsDB.RestaurantID,
			&detailsDB.CustomerID,
			&detailsDB.TotalAmount,
			&detailsDB.Status,
			&detailsDB.OrderType,
			&detailsDB.CreatedAt,
			&detailsDB.UpdatedAt,
			&detailsDB.RestaurantName,
			&detailsDB.CustomerName,
			&detailsDB.CustomerEmail,
			&detailsDB.PaymentMethod,
			&detailsDB.PaymentStatus,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get details error: %w", err)
	}

	itemsDB, err := r.getItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToDomainDetails(&detailsDB, itemsDB), nil
}

func (r *Repository) getItems(ctx context.Context, orderID int64) ([]OrderItemDB, error) {
	query := `SELECT oi.id, oi.product_id, oi.product_name, oi.quantity, oi.unit_price,
			oi.image_url, p.image
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.ImageURL,
			&item.ProductImage,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return items, nil
}

func (r *Repository) List(
	ctx context.Context,
	restaurantID int64,
	filter entities.OrderFilter,
) ([]entities.OrderSummary, error) {
	builder := qb.
		Select(
			"o.id", "o.restaurant_id", "o.customer_id", "o.total_amount", "o.status", "o.order_type",
			"o.created_at", "o.updated_at",
			"u.name", "p.payment_method", "p.payment_status",
		).
		From("orders o").
		LeftJoin("users u ON u.id = o.customer_id").
		LeftJoin("payments p ON p.order_id = o.id").
		Where(sq.Eq{"o.restaurant_id": restaurantID})

	// опциональные фильтры
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": filter.Status.String()})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"o.order_type": filter.Type.String()})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"o.created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"o.created_at": *filter.To})
	}

	builder = builder.
		OrderBy("o.created_at DESC", "o.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderSummaryDB, 0, filter.Limit)
	for rows.Next() {
		var o OrderSummaryDB
		err := rows.Scan(
			&o.ID,
			&o.RestaurantID,
			&o.CustomerID,
			&o.TotalAmount,
			&o.Status,
			&o.OrderType,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.CustomerName,
			&o.PaymentMethod,
			&o.PaymentStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainSummaryList(ordersDB), nil
}
