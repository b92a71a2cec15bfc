package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

func TestUserServiceGetProfile(t *testing.T) {
	userRepo := newFakeUserStore()
	service := NewUserService(userRepo)

	user := &models.User{Name: "Jane Doe", Email: "jane@example.com", Role: models.RoleManager}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	resp, err := service.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Email != "jane@example.com" {
		t.Fatalf("expected email jane@example.com, got %s", resp.Email)
	}
	if resp.Role != "manager" {
		t.Fatalf("expected role manager, got %s", resp.Role)
	}
}

func TestUserServiceGetProfile_NotFound(t *testing.T) {
	service := NewUserService(newFakeUserStore())

	_, err := service.GetProfile(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceList_Pagination(t *testing.T) {
	userRepo := newFakeUserStore()
	service := NewUserService(userRepo)

	for i := 0; i < 12; i++ {
		user := &models.User{
			Name:  fmt.Sprintf("User %02d", i),
			Email: fmt.Sprintf("user%02d@example.com", i),
			Role:  models.RoleStaff,
		}
		if err := userRepo.Create(context.Background(), user); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	resp, err := service.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users on page 2, got %d", len(resp.Users))
	}
	if resp.Pagination.Total != 12 {
		t.Fatalf("expected total 12, got %d", resp.Pagination.Total)
	}
	if resp.Pagination.TotalPages != 2 {
		t.Fatalf("expected totalPages 2, got %d", resp.Pagination.TotalPages)
	}
}
