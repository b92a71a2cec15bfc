package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
)

// These cases fail before any service call, so nil services are safe.

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestMeetingController_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMeetingController(nil)
	router.GET("/api/meetings/:id", controller.GetByID)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/abc", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric ID, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != dto.ErrorKindBadRequest {
		t.Fatalf("expected BadRequest kind, got %s", resp.Error)
	}
	if resp.Message != "Invalid meeting ID" {
		t.Fatalf("expected 'Invalid meeting ID', got %q", resp.Message)
	}
}

func TestCandidateController_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCandidateController(nil)
	router.GET("/api/candidates/:id", controller.GetByID)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates/12.5", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer ID, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Message != "Invalid candidate ID" {
		t.Fatalf("expected 'Invalid candidate ID', got %q", resp.Message)
	}
}

func TestAuthController_RegisterValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(nil)
	router.POST("/api/auth/register", controller.Register)

	body := `{"name":"J","email":"not-an-email","password":"short","role":"ceo"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != dto.ErrorKindValidation {
		t.Fatalf("expected ValidationError kind, got %s", resp.Error)
	}
	if len(resp.Details) == 0 {
		t.Fatal("expected itemized validation details")
	}

	fields := make(map[string]bool)
	for _, detail := range resp.Details {
		fields[detail.Field] = true
	}
	for _, want := range []string{"name", "email", "password", "role"} {
		if !fields[want] {
			t.Fatalf("expected a validation detail for field %q, got %+v", want, resp.Details)
		}
	}
}

func TestMeetingController_AddParticipantValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMeetingController(nil)
	router.POST("/api/meetings/:id/participants", controller.AddParticipant)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/meetings/1/participants", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing userId, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != dto.ErrorKindValidation {
		t.Fatalf("expected ValidationError kind, got %s", resp.Error)
	}
}
