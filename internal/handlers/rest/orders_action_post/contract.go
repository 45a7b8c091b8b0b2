//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_action_post_test
package orders_action_post

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
	UpdateStatus(ctx context.Context, restaurantID, orderID int64, status entities.OrderStatusType) (*entities.OrderStatusChange, string, error)
	GetOrderDetails(ctx context.Context, restaurantID, orderID int64) (*entities.OrderDetails, error)
}
