package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// funnel every service error through here so the status taxonomy stays in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, message, "Bad request")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, message, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, message, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, message, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, message, "Permission denied")

	case errors.Is(err, apperrors.ErrMentorNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Mentor not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Student not found")
	case errors.Is(err, apperrors.ErrRequestNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Mentorship request not found")
	case errors.Is(err, apperrors.ErrHistoryNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "History record not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "Email already exists")
	case errors.Is(err, apperrors.ErrRequestAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "Mentorship request already sent")
	case errors.Is(err, apperrors.ErrRequestAlreadyClosed):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "Mentorship request already responded to")
	case errors.Is(err, apperrors.ErrHistoryAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "History record already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "Conflict")

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, message, "Validation failed")

	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "", "Internal server error")
	}
}

// HandleValidationError maps request binding failures to a 400 response
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request body").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message, fallback string) {
	if message == "" {
		message = fallback
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
