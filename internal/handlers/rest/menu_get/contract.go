//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_get_test
package menu_get

import (
	"context"

	"restaurant-admin/internal/entities"
	"restaurant-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListProducts(ctx context.Context, restaurantID int64, filter entities.ProductFilter) ([]entities.Product, error)
}
