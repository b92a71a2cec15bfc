package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/app/services"
	"github.com/ikatwm/meeting-management-sub000/internal/middleware"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/helpers"
)

// MeetingController handles meeting and participant endpoints
type MeetingController struct {
	meetingService *services.MeetingService
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService *services.MeetingService) *MeetingController {
	return &MeetingController{meetingService: meetingService}
}

// Create handles POST /api/meetings
func (c *MeetingController) Create(ctx *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorKindUnauthorized, "No token provided"))
		return
	}

	resp, err := c.meetingService.Create(ctx.Request.Context(), identity.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetByID handles GET /api/meetings/:id
func (c *MeetingController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	resp, err := c.meetingService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// List handles GET /api/meetings
func (c *MeetingController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.meetingService.List(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/meetings/:id
func (c *MeetingController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	var req dto.UpdateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	resp, err := c.meetingService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/meetings/:id (soft delete)
func (c *MeetingController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	if err := c.meetingService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Meeting deleted successfully"})
}

// HardDelete handles DELETE /api/meetings/:id/permanent
func (c *MeetingController) HardDelete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	if err := c.meetingService.HardDelete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Meeting permanently deleted"})
}

// AddParticipant handles POST /api/meetings/:id/participants
func (c *MeetingController) AddParticipant(ctx *gin.Context) {
	meetingID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	var req dto.AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	resp, err := c.meetingService.AddParticipant(ctx.Request.Context(), meetingID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// RemoveParticipant handles DELETE /api/meetings/:id/participants/:userId
func (c *MeetingController) RemoveParticipant(ctx *gin.Context) {
	meetingID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid user ID"))
		return
	}

	if err := c.meetingService.RemoveParticipant(ctx.Request.Context(), meetingID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Participant removed successfully"})
}

// ListParticipants handles GET /api/meetings/:id/participants
func (c *MeetingController) ListParticipants(ctx *gin.Context) {
	meetingID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid meeting ID"))
		return
	}

	resp, err := c.meetingService.ListParticipants(ctx.Request.Context(), meetingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
