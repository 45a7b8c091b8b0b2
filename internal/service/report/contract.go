//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"restaurant-admin/internal/entities"
)

type Repository interface {
	OrderCounts(ctx context.Context, restaurantID int64, from, to time.Time) (map[entities.OrderStatusType]int64, error)
	PaymentTotals(ctx context.Context, restaurantID int64, from, to time.Time) (*PaymentTotals, error)
	TopProducts(ctx context.Context, restaurantID int64, from, to time.Time, limit int) ([]entities.TopProduct, error)
}
