package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   time.Duration
}

// Login authenticates an operator and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperror.ErrAccountDisabled
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.jwtManager.AccessTokenExpiry(),
	}, nil
}

// GetProfile retrieves the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// EnsureAdmin creates the seed administrator when no user has that email.
// An empty password disables seeding.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return false, nil
	}
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	err = s.userRepo.Create(ctx, &entity.User{
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
		Role:     enum.UserRoleAdmin,
		Active:   true,
	})
	return err == nil, err
}
