//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"restaurant-admin/internal/entities"
)

type Repository interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*entities.Credentials, error)
}

type TokenIssuer interface {
	Issue(userID int64, role string, restaurantID int64) (string, time.Time, error)
}
