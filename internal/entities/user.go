package entities

import "time"

type UserRole string

const (
	RoleSuperAdmin  UserRole = "super_admin"
	RoleBranchAdmin UserRole = "branch_admin"
	RoleCustomer    UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials учетная запись для входа вместе с рестораном branch admin
type Credentials struct {
	User
	RestaurantID     *int64
	RestaurantStatus *RestaurantStatusType
}

// Principal аутентифицированный пользователь запроса
type Principal struct {
	UserID       int64
	Role         UserRole
	RestaurantID int64
}

type BranchAdmin struct {
	User       User
	Restaurant Restaurant
}

type BranchAdminCreate struct {
	Name              string
	Email             string
	Password          string
	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}
