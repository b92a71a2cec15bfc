package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/services"
	"github.com/ikatwm/meeting-management-sub000/internal/middleware"
)

// PositionController handles the position lookup endpoints
type PositionController struct {
	positionService *services.PositionService
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService *services.PositionService) *PositionController {
	return &PositionController{positionService: positionService}
}

// ListPositions handles GET /api/positions
func (c *PositionController) ListPositions(ctx *gin.Context) {
	positions, err := c.positionService.ListPositions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, positions)
}

// ListAppliedPositions handles GET /api/positions/applied
func (c *PositionController) ListAppliedPositions(ctx *gin.Context) {
	positions, err := c.positionService.ListAppliedPositions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, positions)
}
