package dto

import (
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=hr manager staff"`
	PositionID *int64 `json:"positionId" binding:"omitempty,gt=0"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents basic user information.
// The password hash never appears in this projection.
type UserResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	PositionID *int64     `json:"positionId,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromUser converts a user row to its response projection
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		PositionID: user.PositionID,
		LastLogin:  user.LastLogin,
	}
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
