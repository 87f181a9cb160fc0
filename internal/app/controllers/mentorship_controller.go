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

// MentorshipController handles the mentorship request workflow
type MentorshipController struct {
	mentorshipService services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// Create opens a mentorship request addressed to a mentor
// @Summary Request mentorship
// @Description Opens a pending mentorship request from the calling student to the named mentor. At most one request may exist per pair.
// @Tags mentorship
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorshipRequest true "Target mentor"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Request already sent"
// @Router /mentorship/request [post]
func (c *MentorshipController) Create(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	request, err := c.mentorshipService.CreateRequest(ctx, middleware.CallerID(ctx), req.MentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// Respond records the mentor's decision on a request
// @Summary Respond to a mentorship request
// @Description Accepts or rejects a pending request. Only the addressed mentor may respond, and a resolved request cannot change again.
// @Tags mentorship
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.RespondMentorshipRequest true "ACCEPTED or REJECTED"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the addressed mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already responded to"
// @Failure 422 {object} dto.ErrorResponse "Unknown status"
// @Router /mentorship/respond/{id} [put]
func (c *MentorshipController) Respond(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid request ID"))
		return
	}

	var req dto.RespondMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	request, err := c.mentorshipService.Respond(ctx, middleware.CallerID(ctx), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request))
}

// ListIncoming lists requests addressed to the calling mentor
// @Summary List incoming mentorship requests
// @Tags mentorship
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /mentorship/requests [get]
func (c *MentorshipController) ListIncoming(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListIncoming(ctx, middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// ListOwn lists requests created by the calling student
// @Summary List own mentorship requests
// @Tags mentorship
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /mentorship/my-requests [get]
func (c *MentorshipController) ListOwn(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListOwn(ctx, middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}
