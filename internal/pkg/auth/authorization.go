package auth

import (
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

// Identity is the authenticated principal attached to a request
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// Authorize checks the identity against the allowed roles. An empty allowed
// set admits any authenticated identity. All role checks in the API funnel
// through here so the policy lives in one place.
func Authorize(identity Identity, allowedRoles ...string) error {
	if identity.UserID <= 0 {
		return apperrors.ErrTokenInvalid
	}
	if len(allowedRoles) == 0 {
		return nil
	}
	for _, role := range allowedRoles {
		if identity.Role == role {
			return nil
		}
	}
	return apperrors.ErrPermissionDenied
}
