package dto

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ErrorKind classifies an API failure in the response envelope
type ErrorKind string

const (
	ErrorKindValidation   ErrorKind = "ValidationError"
	ErrorKindBadRequest   ErrorKind = "BadRequest"
	ErrorKindUnauthorized ErrorKind = "Unauthorized"
	ErrorKindForbidden    ErrorKind = "Forbidden"
	ErrorKindNotFound     ErrorKind = "NotFound"
	ErrorKindInternal     ErrorKind = "InternalServerError"
)

// ValidationDetail is one (field, message) pair of a validation failure
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope for every failed request
type ErrorResponse struct {
	Error   ErrorKind          `json:"error"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error envelope
func NewErrorResponse(kind ErrorKind, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   kind,
		Message: message,
	}
}

// WithDetails attaches itemized validation details
func (e *ErrorResponse) WithDetails(details []ValidationDetail) *ErrorResponse {
	e.Details = details
	return e
}

// HandleValidationError translates a binding/validation failure into the
// error envelope with one detail entry per offending field.
func HandleValidationError(err error) *ErrorResponse {
	resp := NewErrorResponse(ErrorKindValidation, "Validation failed")

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ValidationDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ValidationDetail{
				Field:   jsonFieldName(fieldErr.Field()),
				Message: formatValidationError(fieldErr),
			})
		}
		return resp.WithDetails(details)
	}

	return resp.WithDetails([]ValidationDetail{{Field: "body", Message: err.Error()}})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// jsonFieldName lowercases the first rune of a struct field name to match
// the lowerCamel JSON keys used by the API.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
