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

// ProfileController handles profile and mentor catalog operations
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetMe returns the caller's own profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/me [get]
func (c *ProfileController) GetMe(ctx *gin.Context) {
	user, err := c.profileService.GetMe(ctx, middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateProfile applies a partial update to the caller's profile
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /profile/update [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.profileService.UpdateProfile(ctx, middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// GetUser returns any user's public profile
// @Summary Get a user profile
// @Tags profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/user/{id} [get]
func (c *ProfileController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid user ID"))
		return
	}

	user, err := c.profileService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// ListMentors returns the mentor catalog
// @Summary List all mentors
// @Tags mentors
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /mentors [get]
func (c *ProfileController) ListMentors(ctx *gin.Context) {
	mentors, err := c.profileService.GetMentors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentors))
}

// GetMentor returns a single mentor profile
// @Summary Get a mentor profile
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /mentors/{id} [get]
func (c *ProfileController) GetMentor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid mentor ID"))
		return
	}

	mentor, err := c.profileService.GetMentorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentor))
}
