package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

// ProfileService defines the interface for profile and mentor catalog operations
type ProfileService interface {
	GetMe(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetMentors(ctx context.Context) ([]*models.User, error)
	GetMentorByID(ctx context.Context, id int64) (*models.User, error)
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	userStore userStore
	logger    zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userStore userStore, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		userStore: userStore,
		logger:    logger,
	}
}

// GetMe retrieves the caller's own profile
func (s *profileServiceImpl) GetMe(ctx context.Context, userID int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's profile
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userStore.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userID", userID).Msg("Profile updated")
	return user, nil
}

// GetUserByID retrieves any user's public profile
func (s *profileServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// GetMentors lists all mentor accounts
func (s *profileServiceImpl) GetMentors(ctx context.Context) ([]*models.User, error) {
	mentors, err := s.userStore.GetMentors(ctx)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []*models.User{}
	}
	return mentors, nil
}

// GetMentorByID retrieves a single mentor profile. A user that exists but
// does not carry the mentor role is reported as not found.
func (s *profileServiceImpl) GetMentorByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, err
	}
	if !user.IsMentor() {
		return nil, apperrors.ErrMentorNotFound
	}
	return user, nil
}
