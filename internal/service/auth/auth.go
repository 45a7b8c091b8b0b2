package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"restaurant-admin/internal/entities"
)

// хеш для выравнивания времени ответа на несуществующий email
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3t/0wHqJ.3mfTlLBF1NKR2y")

type Service struct {
	repository Repository
	issuer     TokenIssuer
}

func New(repository Repository, issuer TokenIssuer) *Service {
	return &Service{
		repository: repository,
		issuer:     issuer,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	creds, err := s.repository.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	principal := entities.Principal{
		UserID: creds.ID,
		Role:   creds.Role,
	}

	switch creds.Role {
	case entities.RoleSuperAdmin:
	case entities.RoleBranchAdmin:
		if creds.RestaurantID == nil {
			return nil, fmt.Errorf("%w: branch admin without restaurant", ErrInvalidCredentials)
		}
		if creds.RestaurantStatus == nil || *creds.RestaurantStatus != entities.RestaurantActive {
			return nil, ErrRestaurantInactive
		}
		principal.RestaurantID = *creds.RestaurantID
	default:
		return nil, ErrRoleNotAllowed
	}

	token, expiresAt, err := s.issuer.Issue(principal.UserID, principal.Role.String(), principal.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: principal,
	}, nil
}
