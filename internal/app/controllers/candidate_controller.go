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

// CandidateController handles candidate and candidate history endpoints
type CandidateController struct {
	candidateService *services.CandidateService
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(candidateService *services.CandidateService) *CandidateController {
	return &CandidateController{candidateService: candidateService}
}

// Create handles POST /api/candidates
func (c *CandidateController) Create(ctx *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	resp, err := c.candidateService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetByID handles GET /api/candidates/:id
func (c *CandidateController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid candidate ID"))
		return
	}

	resp, err := c.candidateService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// List handles GET /api/candidates with optional search and status filters
func (c *CandidateController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	var filter dto.CandidateFilter
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}

	resp, err := c.candidateService.List(ctx.Request.Context(), page, pageSize, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/candidates/:id
func (c *CandidateController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid candidate ID"))
		return
	}

	var req dto.UpdateCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	resp, err := c.candidateService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/candidates/:id
func (c *CandidateController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid candidate ID"))
		return
	}

	if err := c.candidateService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Candidate deleted successfully"})
}

// AddHistory handles POST /api/candidates/:id/history
func (c *CandidateController) AddHistory(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid candidate ID"))
		return
	}

	var req dto.CreateHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	resp, err := c.candidateService.AddHistory(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListHistory handles GET /api/candidates/:id/history
func (c *CandidateController) ListHistory(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorKindBadRequest, "Invalid candidate ID"))
		return
	}

	resp, err := c.candidateService.ListHistory(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
