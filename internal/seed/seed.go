package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/arjunrv/mentorhub/internal/app/models"
	appRepos "github.com/arjunrv/mentorhub/internal/app/repositories"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/auth"
)

const (
	defaultMentorEmail    = "mentor@mentorhub.app"
	defaultMentorPassword = "ChangeMe!2024"
)

// CreateDefaultData creates a default mentor account if none exists, so a
// fresh deployment has someone students can reach.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultMentorEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default mentor account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultMentorPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default mentor password")
		return err
	}

	mentor := &appModels.User{
		Name:      "MentorHub Admin",
		Email:     defaultMentorEmail,
		Password:  hashed,
		RoleType:  appModels.RoleMentor,
		About:     "Default mentor account. Change the password after first login.",
		Expertise: []string{"general"},
	}

	if _, err := userRepo.Create(ctx, mentor); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default mentor account")
		return err
	}

	lgr.Info().Str("email", defaultMentorEmail).Msg("Default mentor account created")
	return nil
}
