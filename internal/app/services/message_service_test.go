package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

type fakeMessageStore struct {
	messages []*models.Message
	nextID   int64
}

func (f *fakeMessageStore) Create(_ context.Context, message *models.Message) (int64, error) {
	f.nextID++
	message.ID = f.nextID
	f.messages = append(f.messages, message)
	return message.ID, nil
}

func (f *fakeMessageStore) GetConversation(_ context.Context, userA, userB int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range f.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetRecentContacts(_ context.Context, _ int64) ([]dto.ContactResponse, error) {
	return nil, nil
}

func newMessageFixture() (*fakeMessageStore, *fakeNotifier, MessageService) {
	store := &fakeMessageStore{}
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Name: "Asha", RoleType: models.RoleStudent},
		2: {ID: 2, Name: "Ravi", RoleType: models.RoleMentor},
	}}
	notifier := &fakeNotifier{}
	service := NewMessageService(store, users, notifier, zerolog.Nop())
	return store, notifier, service
}

func TestSendMessage(t *testing.T) {
	t.Run("persists then delivers chat event and notification", func(t *testing.T) {
		store, notifier, service := newMessageFixture()

		message, err := service.Send(context.Background(), 1, &dto.SendMessageRequest{
			ReceiverID: 2,
			Text:       "hello",
		})
		require.NoError(t, err)

		require.Len(t, store.messages, 1)
		assert.Equal(t, int64(1), message.SenderID)
		assert.Equal(t, int64(2), message.ReceiverID)

		require.Len(t, notifier.notifications, 2)
		assert.Equal(t, int64(2), notifier.notifications[0].userID)
		assert.Equal(t, realtime.EventReceiveMessage, notifier.notifications[0].event.Event)
		assert.Equal(t, realtime.EventNotification, notifier.notifications[1].event.Event)
	})

	t.Run("rejects messaging yourself", func(t *testing.T) {
		store, _, service := newMessageFixture()

		_, err := service.Send(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 1, Text: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Empty(t, store.messages)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		store, notifier, service := newMessageFixture()

		_, err := service.Send(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 99, Text: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Empty(t, store.messages)
		assert.Empty(t, notifier.notifications)
	})
}

func TestGetConversation(t *testing.T) {
	_, _, service := newMessageFixture()

	_, err := service.Send(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 2, Text: "hi"})
	require.NoError(t, err)
	_, err = service.Send(context.Background(), 2, &dto.SendMessageRequest{ReceiverID: 1, Text: "hello back"})
	require.NoError(t, err)

	messages, err := service.GetConversation(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	// Empty thread comes back non-nil
	empty, err := service.GetConversation(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRecentContactsNeverNil(t *testing.T) {
	_, _, service := newMessageFixture()

	contacts, err := service.RecentContacts(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
}
