package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/app/services"
	"github.com/ikatwm/meeting-management-sub000/internal/middleware"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/helpers"
)

// UserController handles user profile and listing endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile handles GET /api/users/me
func (c *UserController) GetProfile(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "No token provided"))
		return
	}

	resp, err := c.userService.GetProfile(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// List handles GET /api/users
func (c *UserController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.userService.List(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
