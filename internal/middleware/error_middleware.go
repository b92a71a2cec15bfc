package middleware

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the uniform error envelope.
// Every handler funnels its failures through here so kind, status code and
// message stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, envelope(dto.ErrorKindValidation, err, "Validation failed"))

	case apperrors.Is(err, apperrors.ErrBadRequest,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCandidateEmailExists,
		apperrors.ErrParticipantExists,
		apperrors.ErrInvalidDateRange,
		apperrors.ErrMeetingHasRelated):
		c.JSON(http.StatusBadRequest, envelope(dto.ErrorKindBadRequest, err, "Bad request"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "Invalid email or password"))

	case errors.Is(err, apperrors.ErrTokenMissing):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "No token provided"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "Invalid token"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorKindForbidden, "Permission denied"))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrMeetingNotFound,
		apperrors.ErrCandidateNotFound,
		apperrors.ErrParticipantNotFound,
		apperrors.ErrPositionNotFound):
		c.JSON(http.StatusNotFound, envelope(dto.ErrorKindNotFound, err, "Resource not found"))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorKindInternal, "Internal server error"))
	}
}

// envelope builds the response for an error, preferring an attached custom
// message over the sentinel's text.
func envelope(kind dto.ErrorKind, err error, fallback string) *dto.ErrorResponse {
	message := fallback

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	} else if err != nil && err.Error() != "" {
		message = capitalize(err.Error())
	}

	resp := dto.NewErrorResponse(kind, message)
	if customErr != nil {
		if details, ok := customErr.Details.([]dto.ValidationDetail); ok {
			resp = resp.WithDetails(details)
		}
	}
	return resp
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
