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
	"github.com/arjunrv/mentorhub/internal/pkg/helpers"
)

// HistoryController handles academic history records
type HistoryController struct {
	historyService services.HistoryService
	logger         zerolog.Logger
}

// NewHistoryController creates a new HistoryController
func NewHistoryController(historyService services.HistoryService, logger zerolog.Logger) *HistoryController {
	return &HistoryController{
		historyService: historyService,
		logger:         logger,
	}
}

// targetStudentID reads the optional studentId path parameter. Zero means
// the caller did not name a target; the service resolves what that means
// per role.
func targetStudentID(ctx *gin.Context) (int64, error) {
	param := ctx.Param("studentId")
	if param == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid student ID")
	}
	return id, nil
}

// Create opens a history record
// @Summary Create a history record
// @Description Creates the academic history record for a student. Students create their own; mentors name the target in the path.
// @Tags history
// @Accept json
// @Produce json
// @Param studentId path int false "Target student (mentors only)"
// @Param request body dto.CreateHistoryRequest true "Initial record fields"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Record already exists"
// @Router /history/{studentId} [post]
func (c *HistoryController) Create(ctx *gin.Context) {
	targetID, err := targetStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.historyService.Create(ctx, middleware.CallerID(ctx), middleware.CallerRole(ctx), targetID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// Get retrieves a history record
// @Summary Get a history record
// @Tags history
// @Produce json
// @Param studentId path int false "Target student (mentors only)"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /history/{studentId} [get]
func (c *HistoryController) Get(ctx *gin.Context) {
	targetID, err := targetStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record, err := c.historyService.Get(ctx, middleware.CallerID(ctx), middleware.CallerRole(ctx), targetID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Update applies a partial update to a history record
// @Summary Update a history record
// @Description Applies the supplied fields only; absent fields stay untouched. A supplied semesters list replaces the whole list.
// @Tags history
// @Accept json
// @Produce json
// @Param studentId path int false "Target student (mentors only)"
// @Param request body dto.UpdateHistoryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 422 {object} dto.ErrorResponse "Semester validation failed"
// @Router /history/{studentId} [put]
func (c *HistoryController) Update(ctx *gin.Context) {
	targetID, err := targetStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.historyService.Update(ctx, middleware.CallerID(ctx), middleware.CallerRole(ctx), targetID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Delete removes a history record
// @Summary Delete a history record
// @Tags history
// @Produce json
// @Param studentId path int false "Target student (mentors only)"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /history/{studentId} [delete]
func (c *HistoryController) Delete(ctx *gin.Context) {
	targetID, err := targetStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.historyService.Delete(ctx, middleware.CallerID(ctx), middleware.CallerRole(ctx), targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("History record deleted"))
}

// UpsertSemester adds or partially updates one semester
// @Summary Upsert a semester
// @Description Adds a semester or updates the one matching semesterNumber. The list stays sorted and holds at most eight entries.
// @Tags history
// @Accept json
// @Produce json
// @Param studentId path int false "Target student (mentors only)"
// @Param request body dto.UpsertSemesterRequest true "Semester fields"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 422 {object} dto.ErrorResponse "Semester validation failed"
// @Router /history/{studentId}/semester [patch]
func (c *HistoryController) UpsertSemester(ctx *gin.Context) {
	targetID, err := targetStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpsertSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.historyService.UpsertSemester(ctx, middleware.CallerID(ctx), middleware.CallerRole(ctx), targetID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// ListAll retrieves history records across all students
// @Summary List all history records
// @Description Mentors only. Records are ordered by most recent update, paginated via page and limit query parameters.
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 403 {object} dto.ErrorResponse "Mentor role required"
// @Router /history/all [get]
func (c *HistoryController) ListAll(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	records, pagination, err := c.historyService.ListAll(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      records,
		Pagination: pagination,
	}))
}
