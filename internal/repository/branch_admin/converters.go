package branch_admin

import "restaurant-admin/internal/entities"

func userToDomain(u *UserDB) *entities.User {
	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func restaurantToDomain(r *RestaurantDB) *entities.Restaurant {
	return &entities.Restaurant{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Status:    entities.RestaurantStatusType(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
