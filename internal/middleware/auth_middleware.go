package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware handles bearer token authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the Authorization header and attaches the caller's
// identity to the request context. Requests without a valid token never
// reach the handler.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindUnauthorized, "No token provided"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindUnauthorized, "Invalid token"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindUnauthorized, message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired restricts a route to the given roles. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindUnauthorized, "No token provided"))
			return
		}

		if err := auth.Authorize(identity, allowedRoles...); err != nil {
			if errors.Is(err, apperrors.ErrPermissionDenied) {
				c.AbortWithStatusJSON(http.StatusForbidden,
					dto.NewErrorResponse(dto.ErrorKindForbidden, "Permission denied"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindUnauthorized, "Invalid token"))
			return
		}

		c.Next()
	}
}

// IdentityFromContext rebuilds the caller identity set by JWTAuth
func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return auth.Identity{}, false
	}
	id, ok := userID.(int64)
	if !ok {
		return auth.Identity{}, false
	}

	identity := auth.Identity{UserID: id}
	if email, ok := c.Get(ContextEmail); ok {
		identity.Email, _ = email.(string)
	}
	if role, ok := c.Get(ContextRole); ok {
		identity.Role, _ = role.(string)
	}
	return identity, true
}
