package branch_admin

import "time"

type UserDB struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RestaurantDB struct {
	ID        int64
	OwnerID   int64
	Name      string
	Address   string
	Phone     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
