package order

import (
	"fmt"

	"restaurant-admin/internal/entities"
)

const (
	DefaultListLimit uint64 = 50
	MaxListLimit     uint64 = 200
)

func normalizeFilter(filter entities.OrderFilter) (entities.OrderFilter, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return filter, fmt.Errorf("%w: status %q", ErrInvalidFilter, *filter.Status)
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return filter, fmt.Errorf("%w: order type %q", ErrInvalidFilter, *filter.Type)
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, fmt.Errorf("%w: from is after to", ErrInvalidFilter)
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	return filter, nil
}
