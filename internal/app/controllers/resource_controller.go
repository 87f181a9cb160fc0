package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/app/services"
	"github.com/arjunrv/mentorhub/internal/middleware"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

// ResourceController handles the shared resource board
type ResourceController struct {
	resourceService services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		logger:          logger,
	}
}

// Create publishes a resource board entry
// @Summary Publish a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Resource fields"
// @Success 201 {object} dto.APIResponse
// @Failure 422 {object} dto.ErrorResponse "Unknown resource type"
// @Router /resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resource, err := c.resourceService.Create(ctx, middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// List retrieves all resources, newest first
// @Summary List resources
// @Tags resources
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	resources, err := c.resourceService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// Delete removes a resource owned by the caller
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid resource ID"))
		return
	}

	if err := c.resourceService.Delete(ctx, middleware.CallerID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resource deleted"))
}
