package branch_admin

import "errors"

var (
	ErrMissingRequiredFields   = errors.New("missing required fields")
	ErrInvalidName             = errors.New("invalid name")
	ErrInvalidEmail            = errors.New("invalid email")
	ErrInvalidPassword         = errors.New("password must be between 8 and 72 bytes")
	ErrInvalidRestaurantName   = errors.New("invalid restaurant name")
	ErrInvalidRestaurantStatus = errors.New("invalid restaurant status")
	ErrInvalidID               = errors.New("invalid id")

	ErrBranchAdminNotFound = errors.New("branch admin not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrConflict            = errors.New("resource already exists")
)
