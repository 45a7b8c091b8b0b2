package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-admin/internal/entities"
	"restaurant-admin/pkg/imagepath"
)

const maxSearchLength = 100

var ErrInvalidFilter = errors.New("invalid product filter")

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) ListProducts(
	ctx context.Context,
	restaurantID int64,
	filter entities.ProductFilter,
) ([]entities.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	if len(filter.Search) > maxSearchLength {
		return nil, fmt.Errorf("%w: search is longer than %d", ErrInvalidFilter, maxSearchLength)
	}

	products, err := s.repository.ListProducts(ctx, restaurantID, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	for i := range products {
		p := &products[i]
		if p.Image == nil {
			continue
		}
		if path := imagepath.ProductImagePath(p.RestaurantName, *p.Image); path != "" {
			p.ImagePath = &path
		}
	}

	return products, nil
}
