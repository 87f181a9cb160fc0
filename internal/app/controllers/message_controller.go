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

// MessageController handles direct messaging over HTTP
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// Send persists a message and delivers it to the receiver if online
// @Summary Send a direct message
// @Description Persists the message, then attempts realtime delivery. Delivery is best-effort; the message is stored either way.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Receiver and text"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	message, err := c.messageService.Send(ctx, middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// GetConversation retrieves the thread with another user
// @Summary Get a conversation
// @Tags messages
// @Produce json
// @Param userId path int true "Other user ID"
// @Success 200 {object} dto.APIResponse
// @Router /messages/{userId} [get]
func (c *MessageController) GetConversation(ctx *gin.Context) {
	otherID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid user ID"))
		return
	}

	messages, err := c.messageService.GetConversation(ctx, middleware.CallerID(ctx), otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// RecentContacts lists the caller's recent conversation partners
// @Summary List recent contacts
// @Tags messages
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /messages/contacts/recent [get]
func (c *MessageController) RecentContacts(ctx *gin.Context) {
	contacts, err := c.messageService.RecentContacts(ctx, middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts))
}
