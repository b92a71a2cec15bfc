package services

import (
	"context"
	"fmt"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/helpers"
)

// UserService handles user profile and listing operations
type UserService struct {
	userRepo UserStore
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile retrieves the profile of the given user
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

// List retrieves a page of users
func (s *UserService) List(ctx context.Context, page, pageSize int) (*dto.UserListResponse, error) {
	page, pageSize = helpers.NormalizePagination(page, pageSize)

	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.FromUser(&users[i]))
	}

	return &dto.UserListResponse{
		Users:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}
