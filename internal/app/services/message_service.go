package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

// messageStore is the subset of message persistence this service depends on.
type messageStore interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	GetConversation(ctx context.Context, userA, userB int64) ([]*models.Message, error)
	GetRecentContacts(ctx context.Context, userID int64) ([]dto.ContactResponse, error)
}

// MessageService defines the interface for direct messaging operations
type MessageService interface {
	Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, callerID, otherID int64) ([]*models.Message, error)
	RecentContacts(ctx context.Context, callerID int64) ([]dto.ContactResponse, error)
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageStore messageStore
	users        userLookup
	notifier     realtime.Notifier
	logger       zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageStore messageStore,
	users userLookup,
	notifier realtime.Notifier,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageStore: messageStore,
		users:        users,
		notifier:     notifier,
		logger:       logger,
	}
}

// Send persists the message, then makes a best-effort realtime delivery to
// the receiver. Persistence is authoritative; delivery failure never
// surfaces to the sender.
func (s *messageServiceImpl) Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewBadRequestError("cannot message yourself")
	}

	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
	}
	if _, err := s.messageStore.Create(ctx, message); err != nil {
		return nil, err
	}

	s.notifier.Notify(req.ReceiverID, realtime.NewChatEvent(senderID, req.Text))
	s.notifier.Notify(req.ReceiverID, realtime.NewNotificationEvent(
		realtime.NotificationTypeChat, "You received a new message", senderID,
	))

	return message, nil
}

// GetConversation retrieves the full message thread between the caller and
// the other user, oldest first.
func (s *messageServiceImpl) GetConversation(ctx context.Context, callerID, otherID int64) ([]*models.Message, error) {
	messages, err := s.messageStore.GetConversation(ctx, callerID, otherID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*models.Message{}
	}
	return messages, nil
}

// RecentContacts lists the users the caller has exchanged messages with,
// most recent exchange first.
func (s *messageServiceImpl) RecentContacts(ctx context.Context, callerID int64) ([]dto.ContactResponse, error) {
	contacts, err := s.messageStore.GetRecentContacts(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []dto.ContactResponse{}
	}
	return contacts, nil
}
