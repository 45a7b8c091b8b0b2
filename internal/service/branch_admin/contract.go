//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branch_admin_test
package branch_admin

import (
	"context"

	"restaurant-admin/internal/entities"
)

type Repository interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	CreateRestaurant(ctx context.Context, restaurant entities.Restaurant) (*entities.Restaurant, error)
	List(ctx context.Context) ([]entities.BranchAdmin, error)
	Delete(ctx context.Context, userID int64) error
	SetRestaurantStatus(ctx context.Context, restaurantID int64, status entities.RestaurantStatusType) (*entities.Restaurant, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
