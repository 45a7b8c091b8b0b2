package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/auth"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetCredentialsByEmail(ctx context.Context, email string) (*entities.Credentials, error) {
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
			r.id, r.status
		FROM users u
		LEFT JOIN restaurants r ON r.owner_id = u.id
		WHERE u.email = $1`

	var (
		creds            entities.Credentials
		role             string
		restaurantStatus *string
	)
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&creds.ID,
			&creds.Name,
			&creds.Email,
			&creds.PasswordHash,
			&role,
			&creds.CreatedAt,
			&creds.UpdatedAt,
			&creds.RestaurantID,
			&restaurantStatus,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get credentials error: %w", err)
	}

	creds.Role = entities.UserRole(role)
	if restaurantStatus != nil {
		status := entities.RestaurantStatusType(*restaurantStatus)
		creds.RestaurantStatus = &status
	}

	return &creds, nil
}
