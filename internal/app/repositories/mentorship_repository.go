package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/dberrors"
)

// MentorshipRepository handles database operations for mentorship requests
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create inserts a new pending mentorship request. The unique
// (student_id, mentor_id) constraint is the authoritative duplicate signal;
// its violation is mapped to ErrRequestAlreadyExists.
func (r *MentorshipRepository) Create(ctx context.Context, request *models.MentorshipRequest) (int64, error) {
	query := `
		INSERT INTO mentorship_requests (student_id, mentor_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.StudentID, request.MentorID, models.RequestStatusPending,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrRequestAlreadyExists
		}
		return 0, fmt.Errorf("error creating mentorship request: %w", err)
	}

	request.Status = models.RequestStatusPending
	return request.ID, nil
}

// GetByID retrieves a mentorship request by its ID
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	query := `
		SELECT id, student_id, mentor_id, status, created_at, updated_at
		FROM mentorship_requests
		WHERE id = $1
	`

	request := &models.MentorshipRequest{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.StudentID, &request.MentorID,
		&request.Status, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	return request, nil
}

// ExistsForPair checks whether a request already exists for the
// (student, mentor) pair. This is a fast-path pre-check only; the unique
// constraint enforces it under races.
func (r *MentorshipRepository) ExistsForPair(ctx context.Context, studentID, mentorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM mentorship_requests WHERE student_id = $1 AND mentor_id = $2)`,
		studentID, mentorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking mentorship request: %w", err)
	}
	return exists, nil
}

// UpdateStatus persists a status transition
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE mentorship_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("error updating mentorship request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// ListByMentor retrieves all requests addressed to the mentor, newest first,
// with student profiles populated.
func (r *MentorshipRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, "mr.mentor_id", mentorID, "student_id")
}

// ListByStudent retrieves all requests created by the student, newest first,
// with mentor profiles populated.
func (r *MentorshipRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, "mr.student_id", studentID, "mentor_id")
}

func (r *MentorshipRepository) list(ctx context.Context, ownerColumn string, ownerID int64, counterpartColumn string) ([]*models.MentorshipRequest, error) {
	query := fmt.Sprintf(`
		SELECT mr.id, mr.student_id, mr.mentor_id, mr.status, mr.created_at, mr.updated_at,
		       u.id, u.name, u.email, u.role_type, u.about, u.expertise, u.avatar_url, u.banner_url
		FROM mentorship_requests mr
		JOIN users u ON mr.%s = u.id
		WHERE %s = $1
		ORDER BY mr.created_at DESC
	`, counterpartColumn, ownerColumn)

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.MentorshipRequest
	for rows.Next() {
		request := &models.MentorshipRequest{}
		counterpart := &models.User{}

		err := rows.Scan(
			&request.ID, &request.StudentID, &request.MentorID,
			&request.Status, &request.CreatedAt, &request.UpdatedAt,
			&counterpart.ID, &counterpart.Name, &counterpart.Email, &counterpart.RoleType,
			&counterpart.About, &counterpart.Expertise, &counterpart.AvatarURL, &counterpart.BannerURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship request: %w", err)
		}

		if counterpart.ID == request.StudentID {
			request.Student = counterpart
		} else {
			request.Mentor = counterpart
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship requests: %w", err)
	}

	return requests, nil
}
