//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_status_put_test
package restaurant_status_put

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
	SetRestaurantStatus(ctx context.Context, restaurantID int64, status entities.RestaurantStatusType) (*entities.Restaurant, error)
}
