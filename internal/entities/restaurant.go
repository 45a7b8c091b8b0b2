package entities

import "time"

type RestaurantStatusType string

const (
	RestaurantActive   RestaurantStatusType = "active"
	RestaurantInactive RestaurantStatusType = "inactive"
)

func (s RestaurantStatusType) String() string {
	return string(s)
}

func (s RestaurantStatusType) IsValid() bool {
	return s == RestaurantActive || s == RestaurantInactive
}

type Restaurant struct {
	ID        int64
	OwnerID   int64
	Name      string
	Address   string
	Phone     string
	Status    RestaurantStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}
