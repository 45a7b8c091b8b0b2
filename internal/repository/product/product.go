package product

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// экранирование для ILIKE, иначе % и _ из поиска станут шаблоном
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListProducts(
	ctx context.Context,
	restaurantID int64,
	filter entities.ProductFilter,
) ([]entities.Product, error) {
	builder := qb.
		Select(
			"p.id", "p.restaurant_id", "r.name", "p.name", "p.description", "p.category",
			"p.price", "p.image", "p.is_available", "p.created_at", "p.updated_at",
		).
		From("products p").
		Join("restaurants r ON r.id = p.restaurant_id").
		Where(sq.Eq{"p.restaurant_id": restaurantID})

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.description": pattern},
		})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"p.category": filter.Category})
	}
	if filter.OnlyAvailable {
		builder = builder.Where(sq.Eq{"p.is_available": true})
	}

	query, args, err := builder.OrderBy("p.category", "p.name", "p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository list error: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, 16)
	for rows.Next() {
		var p entities.Product
		err := rows.Scan(
			&p.ID,
			&p.RestaurantID,
			&p.RestaurantName,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.Price,
			&p.Image,
			&p.IsAvailable,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository list error: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	return products, nil
}
