package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "meeting-management-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  models.RoleHR,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService(time.Hour)

	token, expiresIn, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected userId 42, got %d", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email jane@example.com, got %s", claims.Email)
	}
	if claims.Role != string(models.RoleHR) {
		t.Fatalf("expected role hr, got %s", claims.Role)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service := testJWTService(-time.Minute)

	token, _, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = service.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken(testUser())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := testJWTService(time.Hour)

	_, err := service.ValidateToken("not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "abc123" {
		t.Fatalf("expected abc123, got %s", token)
	}

	token, err = ExtractBearerToken("abc123")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "abc123" {
		t.Fatalf("expected raw token to pass through, got %s", token)
	}

	_, err = ExtractBearerToken("")
	if !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
}
