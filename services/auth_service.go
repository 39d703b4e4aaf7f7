package services

import (
	"context"
	"errors"

	"bento-shop/models"
	"bento-shop/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInactiveUser = errors.New("inactive user")
)

// AuthService verifies bearer tokens and resolves the stored user
// record behind them. It satisfies middleware.Authenticator.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.AuthUser, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	var user models.AuthUser
	var isActive bool
	err = models.DB.QueryRow(ctx,
		"SELECT id, username, role, is_active FROM users WHERE username=$1",
		claims.Subject).Scan(&user.ID, &user.Username, &user.Role, &isActive)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !isActive {
		return nil, ErrInactiveUser
	}

	return &user, nil
}
