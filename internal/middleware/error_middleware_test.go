package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(rec, req)

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return rec, resp
}

func TestHandleAPIError_StatusAndKind(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   dto.ErrorKind
	}{
		{"meeting not found", apperrors.ErrMeetingNotFound, http.StatusNotFound, dto.ErrorKindNotFound},
		{"candidate not found", apperrors.ErrCandidateNotFound, http.StatusNotFound, dto.ErrorKindNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorKindBadRequest},
		{"duplicate participant", apperrors.ErrParticipantExists, http.StatusBadRequest, dto.ErrorKindBadRequest},
		{"invalid date range", apperrors.ErrInvalidDateRange, http.StatusBadRequest, dto.ErrorKindBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorKindUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorKindForbidden},
		{"unknown error", apperrors.NewCustomError(nil, "boom"), http.StatusInternalServerError, dto.ErrorKindInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := serveError(t, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if resp.Error != tc.wantKind {
				t.Fatalf("expected kind %s, got %s", tc.wantKind, resp.Error)
			}
		})
	}
}

func TestHandleAPIError_Messages(t *testing.T) {
	_, resp := serveError(t, apperrors.ErrInvalidCredentials)
	if resp.Message != "Invalid email or password" {
		t.Fatalf("expected 'Invalid email or password', got %q", resp.Message)
	}

	_, resp = serveError(t, apperrors.ErrMeetingNotFound)
	if resp.Message != "Meeting not found" {
		t.Fatalf("expected 'Meeting not found', got %q", resp.Message)
	}

	// Internal failures never leak their cause.
	_, resp = serveError(t, apperrors.NewCustomError(nil, "pq: connection refused"))
	if resp.Message != "Internal server error" {
		t.Fatalf("expected generic internal message, got %q", resp.Message)
	}
}

func TestHandleAPIError_CustomMessage(t *testing.T) {
	rec, resp := serveError(t, apperrors.NewBadRequestError("One or more participant users do not exist"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Message != "One or more participant users do not exist" {
		t.Fatalf("expected custom message to pass through, got %q", resp.Message)
	}
}
