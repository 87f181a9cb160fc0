package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/dberrors"
)

const userColumns = "id, name, email, password, role_type, about, expertise, avatar_url, banner_url, created_at, updated_at"

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.RoleType,
		&user.About, &user.Expertise, &user.AvatarURL, &user.BannerURL,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. The unique email constraint is the authoritative
// duplicate signal; the violation is mapped to ErrEmailAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password, role_type, about, expertise, avatar_url, banner_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	expertise := user.Expertise
	if expertise == nil {
		expertise = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.RoleType,
		user.About, expertise, user.AvatarURL, user.BannerURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks whether a user with the given email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies a partial profile update. Only non-nil fields are
// written; updated_at is always touched.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, update *dto.UpdateProfileRequest) (*models.User, error) {
	builder := squirrel.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", userID).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(squirrel.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.About != nil {
		builder = builder.Set("about", *update.About)
	}
	if update.Expertise != nil {
		builder = builder.Set("expertise", *update.Expertise)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
	}
	if update.BannerURL != nil {
		builder = builder.Set("banner_url", *update.BannerURL)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return user, nil
}

// GetMentors retrieves all users with the mentor role
func (r *UserRepository) GetMentors(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE role_type = $1 ORDER BY name`, userColumns)

	rows, err := r.db.Query(ctx, query, models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*models.User
	for rows.Next() {
		mentor, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentors: %w", err)
	}

	return mentors, nil
}
