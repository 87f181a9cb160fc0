package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

type fakeUserLookup struct {
	users map[int64]*models.User
}

func (f *fakeUserLookup) GetByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeMentorshipStore struct {
	requests map[int64]*models.MentorshipRequest
	nextID   int64
}

func newFakeMentorshipStore() *fakeMentorshipStore {
	return &fakeMentorshipStore{requests: make(map[int64]*models.MentorshipRequest)}
}

func (f *fakeMentorshipStore) Create(_ context.Context, request *models.MentorshipRequest) (int64, error) {
	for _, existing := range f.requests {
		if existing.StudentID == request.StudentID && existing.MentorID == request.MentorID {
			return 0, apperrors.ErrRequestAlreadyExists
		}
	}
	f.nextID++
	request.ID = f.nextID
	request.Status = models.RequestStatusPending
	f.requests[request.ID] = request
	return request.ID, nil
}

func (f *fakeMentorshipStore) GetByID(_ context.Context, id int64) (*models.MentorshipRequest, error) {
	if request, ok := f.requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, apperrors.ErrRequestNotFound
}

func (f *fakeMentorshipStore) ExistsForPair(_ context.Context, studentID, mentorID int64) (bool, error) {
	for _, request := range f.requests {
		if request.StudentID == studentID && request.MentorID == mentorID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMentorshipStore) UpdateStatus(_ context.Context, id int64, status models.RequestStatus) error {
	request, ok := f.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeMentorshipStore) ListByMentor(_ context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	var out []*models.MentorshipRequest
	for _, request := range f.requests {
		if request.MentorID == mentorID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeMentorshipStore) ListByStudent(_ context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	var out []*models.MentorshipRequest
	for _, request := range f.requests {
		if request.StudentID == studentID {
			out = append(out, request)
		}
	}
	return out, nil
}

type recordedNotification struct {
	userID int64
	event  realtime.Event
}

type fakeNotifier struct {
	notifications []recordedNotification
}

func (f *fakeNotifier) Notify(userID int64, event realtime.Event) {
	f.notifications = append(f.notifications, recordedNotification{userID: userID, event: event})
}

func newMentorshipFixture() (*fakeMentorshipStore, *fakeUserLookup, *fakeNotifier, MentorshipService) {
	store := newFakeMentorshipStore()
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Name: "Asha", RoleType: models.RoleStudent},
		2: {ID: 2, Name: "Ravi", RoleType: models.RoleMentor},
		3: {ID: 3, Name: "Divya", RoleType: models.RoleMentor},
	}}
	notifier := &fakeNotifier{}
	service := NewMentorshipService(store, users, notifier, zerolog.Nop())
	return store, users, notifier, service
}

func TestCreateRequest(t *testing.T) {
	t.Run("creates pending request and notifies mentor", func(t *testing.T) {
		store, _, notifier, service := newMentorshipFixture()

		request, err := service.CreateRequest(context.Background(), 1, 2)
		require.NoError(t, err)

		assert.Equal(t, models.RequestStatusPending, request.Status)
		assert.Len(t, store.requests, 1)

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, int64(2), notifier.notifications[0].userID)
		assert.Equal(t, realtime.EventNotification, notifier.notifications[0].event.Event)
	})

	t.Run("rejects duplicate pair", func(t *testing.T) {
		_, _, notifier, service := newMentorshipFixture()

		_, err := service.CreateRequest(context.Background(), 1, 2)
		require.NoError(t, err)

		_, err = service.CreateRequest(context.Background(), 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyExists)
		assert.Len(t, notifier.notifications, 1)
	})

	t.Run("same student may request a different mentor", func(t *testing.T) {
		store, _, _, service := newMentorshipFixture()

		_, err := service.CreateRequest(context.Background(), 1, 2)
		require.NoError(t, err)
		_, err = service.CreateRequest(context.Background(), 1, 3)
		require.NoError(t, err)

		assert.Len(t, store.requests, 2)
	})

	t.Run("unknown mentor", func(t *testing.T) {
		_, _, _, service := newMentorshipFixture()

		_, err := service.CreateRequest(context.Background(), 1, 99)
		assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
	})

	t.Run("target user is not a mentor", func(t *testing.T) {
		_, users, _, service := newMentorshipFixture()
		users.users[4] = &models.User{ID: 4, Name: "Kiran", RoleType: models.RoleStudent}

		_, err := service.CreateRequest(context.Background(), 1, 4)
		assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
	})
}

func TestRespond(t *testing.T) {
	openRequest := func(t *testing.T, service MentorshipService) int64 {
		t.Helper()
		request, err := service.CreateRequest(context.Background(), 1, 2)
		require.NoError(t, err)
		return request.ID
	}

	t.Run("accept persists and notifies student once", func(t *testing.T) {
		store, _, notifier, service := newMentorshipFixture()
		id := openRequest(t, service)
		notifier.notifications = nil

		request, err := service.Respond(context.Background(), 2, id, "ACCEPTED")
		require.NoError(t, err)

		assert.Equal(t, models.RequestStatusAccepted, request.Status)
		assert.Equal(t, models.RequestStatusAccepted, store.requests[id].Status)

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, int64(1), notifier.notifications[0].userID)
		payload := notifier.notifications[0].event.Data.(realtime.NotificationPayload)
		assert.Equal(t, realtime.NotificationTypeMentorship, payload.Type)
		assert.Equal(t, int64(2), payload.From)
		assert.Equal(t, "Your mentorship request was accepted", payload.Text)
	})

	t.Run("reject notifies with reject text", func(t *testing.T) {
		_, _, notifier, service := newMentorshipFixture()
		id := openRequest(t, service)
		notifier.notifications = nil

		_, err := service.Respond(context.Background(), 2, id, "REJECTED")
		require.NoError(t, err)

		require.Len(t, notifier.notifications, 1)
		payload := notifier.notifications[0].event.Data.(realtime.NotificationPayload)
		assert.Equal(t, "Your mentorship request was rejected", payload.Text)
	})

	t.Run("only the addressed mentor may respond", func(t *testing.T) {
		store, _, _, service := newMentorshipFixture()
		id := openRequest(t, service)

		_, err := service.Respond(context.Background(), 3, id, "ACCEPTED")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, models.RequestStatusPending, store.requests[id].Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		store, _, _, service := newMentorshipFixture()
		id := openRequest(t, service)

		_, err := service.Respond(context.Background(), 2, id, "MAYBE")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, models.RequestStatusPending, store.requests[id].Status)
	})

	t.Run("terminal request cannot transition again", func(t *testing.T) {
		store, _, notifier, service := newMentorshipFixture()
		id := openRequest(t, service)

		_, err := service.Respond(context.Background(), 2, id, "ACCEPTED")
		require.NoError(t, err)
		notifier.notifications = nil

		_, err = service.Respond(context.Background(), 2, id, "REJECTED")
		assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyClosed)
		assert.Equal(t, models.RequestStatusAccepted, store.requests[id].Status)
		assert.Empty(t, notifier.notifications)
	})

	t.Run("missing request", func(t *testing.T) {
		_, _, _, service := newMentorshipFixture()

		_, err := service.Respond(context.Background(), 2, 77, "ACCEPTED")
		assert.True(t, errors.Is(err, apperrors.ErrRequestNotFound))
	})
}

func TestListRequests(t *testing.T) {
	_, _, _, service := newMentorshipFixture()

	_, err := service.CreateRequest(context.Background(), 1, 2)
	require.NoError(t, err)

	incoming, err := service.ListIncoming(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)

	own, err := service.ListOwn(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	// Empty lists come back non-nil
	none, err := service.ListIncoming(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
