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
)

func newProfileFixture() (*fakeUserStore, ProfileService) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, Name: "Asha", Email: "asha@college.edu", RoleType: models.RoleStudent}
	store.users[2] = &models.User{ID: 2, Name: "Ravi", Email: "ravi@college.edu", RoleType: models.RoleMentor}
	store.nextID = 2
	return store, NewProfileService(store, zerolog.Nop())
}

func TestGetMentorByID(t *testing.T) {
	_, service := newProfileFixture()

	mentor, err := service.GetMentorByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", mentor.Name)

	// A student is not part of the mentor catalog
	_, err = service.GetMentorByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)

	_, err = service.GetMentorByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	store, service := newProfileFixture()

	about := "Distributed systems mentor"
	user, err := service.UpdateProfile(context.Background(), 2, &dto.UpdateProfileRequest{About: &about})
	require.NoError(t, err)

	assert.Equal(t, about, user.About)
	assert.Equal(t, "Ravi", user.Name)
	assert.Equal(t, about, store.users[2].About)
}

func TestGetMentorsNeverNil(t *testing.T) {
	store := newFakeUserStore()
	service := NewProfileService(store, zerolog.Nop())

	mentors, err := service.GetMentors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, mentors)
	assert.Empty(t, mentors)
}
