package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/auth"
)

// userStore is the subset of user persistence the auth and profile
// services depend on.
type userStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, update *dto.UpdateProfileRequest) (*models.User, error)
	GetMentors(ctx context.Context) ([]*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore  userStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore userStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account and issues an initial token pair.
// The role defaults to STUDENT when absent from the request.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error) {
	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := models.RoleType(req.Role)
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		RoleType:  role,
		Expertise: []string{},
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.RoleType)).
		Msg("User registered")

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authServiceImpl) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	access, refresh, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}
