package branch_admin

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"restaurant-admin/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
	hashCost   int
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		hashCost:   bcrypt.DefaultCost,
	}
}

// CreateBranchAdmin создает пользователя и его ресторан одной транзакцией
func (s *Service) CreateBranchAdmin(ctx context.Context, create entities.BranchAdminCreate) (*entities.BranchAdmin, error) {
	create.Name = strings.TrimSpace(create.Name)
	create.Email = strings.ToLower(strings.TrimSpace(create.Email))
	create.RestaurantName = strings.TrimSpace(create.RestaurantName)
	create.RestaurantAddress = strings.TrimSpace(create.RestaurantAddress)
	create.RestaurantPhone = strings.TrimSpace(create.RestaurantPhone)

	if create.Name == "" || create.Email == "" || create.Password == "" || create.RestaurantName == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(create.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(create.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(create.Password) {
		return nil, ErrInvalidPassword
	}
	if !isValidName(create.RestaurantName) {
		return nil, ErrInvalidRestaurantName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var result entities.BranchAdmin
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.repository.CreateUser(ctx, entities.User{
			Name:         create.Name,
			Email:        create.Email,
			PasswordHash: string(hash),
			Role:         entities.RoleBranchAdmin,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		restaurant, err := s.repository.CreateRestaurant(ctx, entities.Restaurant{
			OwnerID: user.ID,
			Name:    create.RestaurantName,
			Address: create.RestaurantAddress,
			Phone:   create.RestaurantPhone,
			Status:  entities.RestaurantActive,
		})
		if err != nil {
			return fmt.Errorf("create restaurant: %w", err)
		}

		result = entities.BranchAdmin{User: *user, Restaurant: *restaurant}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create branch admin: %w", err)
	}

	return &result, nil
}

func (s *Service) ListBranchAdmins(ctx context.Context) ([]entities.BranchAdmin, error) {
	admins, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branch admins: %w", err)
	}
	return admins, nil
}

// DeleteBranchAdmin удаляет пользователя, ресторан и все его данные уходят каскадом
func (s *Service) DeleteBranchAdmin(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidID
	}

	if err := s.repository.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete branch admin: %w", err)
	}
	return nil
}

func (s *Service) SetRestaurantStatus(
	ctx context.Context,
	restaurantID int64,
	status entities.RestaurantStatusType,
) (*entities.Restaurant, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidID
	}
	if !status.IsValid() {
		return nil, ErrInvalidRestaurantStatus
	}

	restaurant, err := s.repository.SetRestaurantStatus(ctx, restaurantID, status)
	if err != nil {
		return nil, fmt.Errorf("set restaurant status: %w", err)
	}
	return restaurant, nil
}
