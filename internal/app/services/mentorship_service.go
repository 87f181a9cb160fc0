package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

// mentorshipStore is the subset of mentorship request persistence this
// service depends on.
type mentorshipStore interface {
	Create(ctx context.Context, request *models.MentorshipRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	ExistsForPair(ctx context.Context, studentID, mentorID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error
	ListByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error)
}

// userLookup resolves user profiles by ID.
type userLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// MentorshipService defines the interface for the mentorship request workflow
type MentorshipService interface {
	CreateRequest(ctx context.Context, studentID, mentorID int64) (*models.MentorshipRequest, error)
	Respond(ctx context.Context, callerID, requestID int64, status string) (*models.MentorshipRequest, error)
	ListIncoming(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	ListOwn(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error)
}

// mentorshipServiceImpl implements MentorshipService
type mentorshipServiceImpl struct {
	mentorshipStore mentorshipStore
	users           userLookup
	notifier        realtime.Notifier
	logger          zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	mentorshipStore mentorshipStore,
	users userLookup,
	notifier realtime.Notifier,
	logger zerolog.Logger,
) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipStore: mentorshipStore,
		users:           users,
		notifier:        notifier,
		logger:          logger,
	}
}

// CreateRequest opens a pending mentorship request from the student to the
// mentor. At most one request may exist per (student, mentor) pair regardless
// of status; the unique constraint backs the pre-check under races.
func (s *mentorshipServiceImpl) CreateRequest(ctx context.Context, studentID, mentorID int64) (*models.MentorshipRequest, error) {
	mentor, err := s.users.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, err
	}
	if !mentor.IsMentor() {
		return nil, apperrors.ErrMentorNotFound
	}

	exists, err := s.mentorshipStore.ExistsForPair(ctx, studentID, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing request: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRequestAlreadyExists
	}

	request := &models.MentorshipRequest{
		StudentID: studentID,
		MentorID:  mentorID,
	}
	if _, err := s.mentorshipStore.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestID", request.ID).
		Int64("studentID", studentID).
		Int64("mentorID", mentorID).
		Msg("Mentorship request created")

	s.notifier.Notify(mentorID, realtime.NewNotificationEvent(
		realtime.NotificationTypeMentorship,
		"You received a new mentorship request",
		studentID,
	))

	return request, nil
}

// Respond records the mentor's decision on a pending request. Only the
// addressed mentor may respond, the status must be ACCEPTED or REJECTED, and
// a request already in a terminal state cannot transition again.
func (s *mentorshipServiceImpl) Respond(ctx context.Context, callerID, requestID int64, status string) (*models.MentorshipRequest, error) {
	request, err := s.mentorshipStore.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.MentorID != callerID {
		return nil, apperrors.NewForbiddenError("only the addressed mentor can respond to this request")
	}

	newStatus := models.RequestStatus(status)
	if newStatus != models.RequestStatusAccepted && newStatus != models.RequestStatusRejected {
		return nil, apperrors.NewValidationError("status must be ACCEPTED or REJECTED")
	}

	if request.Status.IsTerminal() {
		return nil, apperrors.ErrRequestAlreadyClosed
	}

	if err := s.mentorshipStore.UpdateStatus(ctx, requestID, newStatus); err != nil {
		return nil, err
	}
	request.Status = newStatus

	s.logger.Info().
		Int64("requestID", requestID).
		Str("status", string(newStatus)).
		Msg("Mentorship request resolved")

	text := "Your mentorship request was rejected"
	if newStatus == models.RequestStatusAccepted {
		text = "Your mentorship request was accepted"
	}
	s.notifier.Notify(request.StudentID, realtime.NewNotificationEvent(
		realtime.NotificationTypeMentorship, text, request.MentorID,
	))

	return request, nil
}

// ListIncoming retrieves requests addressed to the mentor, newest first
func (s *mentorshipServiceImpl) ListIncoming(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	requests, err := s.mentorshipStore.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*models.MentorshipRequest{}
	}
	return requests, nil
}

// ListOwn retrieves requests created by the student, newest first
func (s *mentorshipServiceImpl) ListOwn(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	requests, err := s.mentorshipStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*models.MentorshipRequest{}
	}
	return requests, nil
}
