//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_test
package menu

import (
	"context"

	"restaurant-admin/internal/entities"
)

type Repository interface {
	ListProducts(ctx context.Context, restaurantID int64, filter entities.ProductFilter) ([]entities.Product, error)
}
