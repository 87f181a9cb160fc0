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

const historyColumns = `id, student_id, full_name, reg_no, phone_number, dob, department,
	permanent_address, guardians, schooling, skills, new_achievement,
	certification_link, semesters, last_edited_by, created_at, updated_at`

// HistoryRepository handles database operations for student history records.
// Guardian, schooling, skills and semester sub-records live in JSONB columns.
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func scanHistory(row pgx.Row) (*models.StudentHistory, error) {
	record := &models.StudentHistory{}
	err := row.Scan(
		&record.ID, &record.StudentID, &record.FullName, &record.RegNo,
		&record.PhoneNumber, &record.DOB, &record.Department, &record.PermanentAddress,
		&record.Guardians, &record.Schooling, &record.Skills, &record.NewAchievement,
		&record.CertificationLink, &record.Semesters, &record.LastEditedBy,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if record.Skills == nil {
		record.Skills = []string{}
	}
	if record.Semesters == nil {
		record.Semesters = []models.Semester{}
	}
	return record, nil
}

// Create inserts a new history record. The unique student_id constraint is
// the authoritative duplicate signal; its violation is mapped to
// ErrHistoryAlreadyExists.
func (r *HistoryRepository) Create(ctx context.Context, record *models.StudentHistory) (int64, error) {
	query := `
		INSERT INTO student_histories (
			student_id, full_name, reg_no, phone_number, dob, department,
			permanent_address, guardians, schooling, skills, new_achievement,
			certification_link, semesters, last_edited_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	skills := record.Skills
	if skills == nil {
		skills = []string{}
	}
	semesters := record.Semesters
	if semesters == nil {
		semesters = []models.Semester{}
	}

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.FullName, record.RegNo, record.PhoneNumber,
		record.DOB, record.Department, record.PermanentAddress,
		record.Guardians, record.Schooling, skills, record.NewAchievement,
		record.CertificationLink, semesters, record.LastEditedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrHistoryAlreadyExists
		}
		return 0, fmt.Errorf("error creating history record: %w", err)
	}

	return record.ID, nil
}

// GetByStudentID retrieves the history record owned by the student
func (r *HistoryRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.StudentHistory, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_histories WHERE student_id = $1`, historyColumns)

	record, err := scanHistory(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("error retrieving history record: %w", err)
	}

	return record, nil
}

// ExistsForStudent checks whether a record already exists for the student.
// Fast-path pre-check; the unique constraint enforces it under races.
func (r *HistoryRepository) ExistsForStudent(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_histories WHERE student_id = $1)`,
		studentID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking history record: %w", err)
	}
	return exists, nil
}

// Update applies a partial update built from the non-nil fields of the
// request. lastEditedBy is always written.
func (r *HistoryRepository) Update(ctx context.Context, studentID, editorID int64, update *dto.UpdateHistoryRequest) (*models.StudentHistory, error) {
	builder := squirrel.Update("student_histories").
		Set("last_edited_by", editorID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("student_id = ?", studentID).
		Suffix("RETURNING " + historyColumns).
		PlaceholderFormat(squirrel.Dollar)

	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.RegNo != nil {
		builder = builder.Set("reg_no", *update.RegNo)
	}
	if update.PhoneNumber != nil {
		builder = builder.Set("phone_number", *update.PhoneNumber)
	}
	if update.DOB != nil {
		builder = builder.Set("dob", *update.DOB)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.PermanentAddress != nil {
		builder = builder.Set("permanent_address", *update.PermanentAddress)
	}
	if update.Guardians != nil {
		builder = builder.Set("guardians", *update.Guardians)
	}
	if update.Schooling != nil {
		builder = builder.Set("schooling", *update.Schooling)
	}
	if update.Skills != nil {
		builder = builder.Set("skills", *update.Skills)
	}
	if update.NewAchievement != nil {
		builder = builder.Set("new_achievement", *update.NewAchievement)
	}
	if update.CertificationLink != nil {
		builder = builder.Set("certification_link", *update.CertificationLink)
	}
	if update.Semesters != nil {
		builder = builder.Set("semesters", *update.Semesters)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	record, err := scanHistory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("error updating history record: %w", err)
	}

	return record, nil
}

// ReplaceSemesters overwrites the semesters document and the audit reference
func (r *HistoryRepository) ReplaceSemesters(ctx context.Context, studentID, editorID int64, semesters []models.Semester) (*models.StudentHistory, error) {
	query := fmt.Sprintf(`
		UPDATE student_histories
		SET semesters = $1, last_edited_by = $2, updated_at = NOW()
		WHERE student_id = $3
		RETURNING %s
	`, historyColumns)

	record, err := scanHistory(r.db.QueryRow(ctx, query, semesters, editorID, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("error replacing semesters: %w", err)
	}

	return record, nil
}

// Delete removes the history record owned by the student
func (r *HistoryRepository) Delete(ctx context.Context, studentID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student_histories WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting history record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHistoryNotFound
	}
	return nil
}

// ListAll retrieves history records ordered by most recent update, paginated
func (r *HistoryRepository) ListAll(ctx context.Context, offset uint64, limit int) ([]*models.StudentHistory, error) {
	builder := squirrel.Select(historyColumns).
		From("student_histories").
		OrderBy("updated_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing history records: %w", err)
	}
	defer rows.Close()

	var records []*models.StudentHistory
	for rows.Next() {
		record, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning history record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history records: %w", err)
	}

	return records, nil
}

// CountAll returns the total number of history records
func (r *HistoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_histories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting history records: %w", err)
	}
	return count, nil
}
