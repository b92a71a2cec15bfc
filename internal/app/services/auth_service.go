package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/auth"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/dberrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/logger"
)

// UserStore is the user persistence surface the auth and user services depend on
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
}

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// AuthService handles registration and login
type AuthService struct {
	userRepo   UserStore
	jwtService TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account and returns a token for it.
// A duplicate email is rejected before the insert is attempted.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.Role(req.Role),
		PositionID:   req.PositionID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return &dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}

// Login verifies credentials and returns a token. Unknown emails and wrong
// passwords produce the same error so the response does not reveal which
// part was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	} else {
		user.LastLogin = &now
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}
