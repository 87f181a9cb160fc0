package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, userID int64, update *dto.UpdateProfileRequest) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.About != nil {
		user.About = *update.About
	}
	if update.Expertise != nil {
		user.Expertise = *update.Expertise
	}
	return user, nil
}

func (f *fakeUserStore) GetMentors(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, user := range f.users {
		if user.IsMentor() {
			out = append(out, user)
		}
	}
	return out, nil
}

func newAuthFixture() (*fakeUserStore, AuthService) {
	store := newFakeUserStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return store, NewAuthService(store, jwtService, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	t.Run("creates a student by default and issues tokens", func(t *testing.T) {
		store, service := newAuthFixture()

		user, tokens, err := service.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Asha",
			Email:    "asha@college.edu",
			Password: "supersecret",
		})
		require.NoError(t, err)

		assert.Equal(t, models.RoleStudent, user.RoleType)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.Len(t, store.users, 1)
	})

	t.Run("honors an explicit mentor role", func(t *testing.T) {
		_, service := newAuthFixture()

		user, _, err := service.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Ravi",
			Email:    "ravi@college.edu",
			Password: "supersecret",
			Role:     "MENTOR",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleMentor, user.RoleType)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, service := newAuthFixture()

		_, _, err := service.Register(context.Background(), &dto.RegisterRequest{
			Name: "Asha", Email: "asha@college.edu", Password: "supersecret",
		})
		require.NoError(t, err)

		_, _, err = service.Register(context.Background(), &dto.RegisterRequest{
			Name: "Imposter", Email: "asha@college.edu", Password: "othersecret",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	register := func(t *testing.T, service AuthService) {
		t.Helper()
		_, _, err := service.Register(context.Background(), &dto.RegisterRequest{
			Name: "Asha", Email: "asha@college.edu", Password: "supersecret",
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		_, service := newAuthFixture()
		register(t, service)

		user, tokens, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "asha@college.edu",
			Password: "supersecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "asha@college.edu", user.Email)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, service := newAuthFixture()
		register(t, service)

		_, _, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "asha@college.edu",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, service := newAuthFixture()

		_, _, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@college.edu",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
