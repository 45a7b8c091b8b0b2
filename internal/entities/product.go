package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             int64
	RestaurantID   int64
	RestaurantName string
	Name           string
	Description    string
	Category       string
	Price          decimal.Decimal
	Image          *string
	// ImagePath путь внутри uploads/menus, nil если изображения нет
	ImagePath   *string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductFilter struct {
	Search        string
	Category      string
	OnlyAvailable bool
}
