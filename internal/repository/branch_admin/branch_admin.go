package branch_admin

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/service/branch_admin"
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

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := `INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at, updated_at`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role.String()).
		Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.PasswordHash,
			&userDB.Role,
			&userDB.CreatedAt,
			&userDB.UpdatedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, branch_admin.ErrConflict
		}
		return nil, fmt.Errorf("unexpected branch admin repository create user error: %w", err)
	}

	return userToDomain(&userDB), nil
}

func (r *Repository) CreateRestaurant(ctx context.Context, restaurant entities.Restaurant) (*entities.Restaurant, error) {
	query := `INSERT INTO restaurants (owner_id, name, address, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, name, address, phone, status, created_at, updated_at`

	var restaurantDB RestaurantDB
	err := r.querier.QueryRow(
		ctx,
		query,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Status.String(),
	).Scan(
		&restaurantDB.ID,
		&restaurantDB.OwnerID,
		&restaurantDB.Name,
		&restaurantDB.Address,
		&restaurantDB.Phone,
		&restaurantDB.Status,
		&restaurantDB.CreatedAt,
		&restaurantDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, branch_admin.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, branch_admin.ErrBranchAdminNotFound
		}
		return nil, fmt.Errorf("unexpected branch admin repository create restaurant error: %w", err)
	}

	return restaurantToDomain(&restaurantDB), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.BranchAdmin, error) {
	query := `SELECT u.id, u.name, u.email, u.role, u.created_at, u.updated_at,
			r.id, r.owner_id, r.name, r.address, r.phone, r.status, r.created_at, r.updated_at
		FROM users u
		JOIN restaurants r ON r.owner_id = u.id
		WHERE u.role = $1
		ORDER BY u.id`

	rows, err := r.querier.Query(ctx, query, entities.RoleBranchAdmin.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected branch admin repository list error: %w", err)
	}
	defer rows.Close()

	admins := make([]entities.BranchAdmin, 0, 8)
	for rows.Next() {
		var (
			userDB       UserDB
			restaurantDB RestaurantDB
		)
		err := rows.Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Role,
			&userDB.CreatedAt,
			&userDB.UpdatedAt,
			&restaurantDB.ID,
			&restaurantDB.OwnerID,
			&restaurantDB.Name,
			&restaurantDB.Address,
			&restaurantDB.Phone,
			&restaurantDB.Status,
			&restaurantDB.CreatedAt,
			&restaurantDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected branch admin repository list error: %w", err)
		}
		admins = append(admins, entities.BranchAdmin{
			User:       *userToDomain(&userDB),
			Restaurant: *restaurantToDomain(&restaurantDB),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected branch admin repository list error: %w", err)
	}

	return admins, nil
}

// Delete удаляет только branch admin, super admin этим путем не удалить
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = $1 AND role = $2`

	tag, err := r.querier.Exec(ctx, query, userID, entities.RoleBranchAdmin.String())
	if err != nil {
		return fmt.Errorf("unexpected branch admin repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return branch_admin.ErrBranchAdminNotFound
	}
	return nil
}

func (r *Repository) SetRestaurantStatus(
	ctx context.Context,
	restaurantID int64,
	status entities.RestaurantStatusType,
) (*entities.Restaurant, error) {
	query, args, err := qb.
		Update("restaurants").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": restaurantID}).
		Suffix("RETURNING id, owner_id, name, address, phone, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected branch admin repository set status error: %w", err)
	}

	var restaurantDB RestaurantDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&restaurantDB.ID,
			&restaurantDB.OwnerID,
			&restaurantDB.Name,
			&restaurantDB.Address,
			&restaurantDB.Phone,
			&restaurantDB.Status,
			&restaurantDB.CreatedAt,
			&restaurantDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branch_admin.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected branch admin repository set status error: %w", err)
	}

	return restaurantToDomain(&restaurantDB), nil
}
