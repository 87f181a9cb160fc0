package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
	"github.com/arjunrv/mentorhub/internal/pkg/helpers"
)

// historyStore is the subset of history persistence this service depends on.
type historyStore interface {
	Create(ctx context.Context, record *models.StudentHistory) (int64, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.StudentHistory, error)
	ExistsForStudent(ctx context.Context, studentID int64) (bool, error)
	Update(ctx context.Context, studentID, editorID int64, update *dto.UpdateHistoryRequest) (*models.StudentHistory, error)
	ReplaceSemesters(ctx context.Context, studentID, editorID int64, semesters []models.Semester) (*models.StudentHistory, error)
	Delete(ctx context.Context, studentID int64) error
	ListAll(ctx context.Context, offset uint64, limit int) ([]*models.StudentHistory, error)
	CountAll(ctx context.Context) (int64, error)
}

// HistoryService defines the interface for academic history operations.
// Every operation takes the caller's identity and role; students always act
// on their own record, mentors act on the record they name.
type HistoryService interface {
	Create(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.CreateHistoryRequest) (*models.StudentHistory, error)
	Get(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64) (*models.StudentHistory, error)
	Update(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.UpdateHistoryRequest) (*models.StudentHistory, error)
	Delete(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64) error
	UpsertSemester(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.UpsertSemesterRequest) (*models.StudentHistory, error)
	ListAll(ctx context.Context, page, limit int) ([]*models.StudentHistory, dto.PaginationInfo, error)
}

// historyServiceImpl implements HistoryService
type historyServiceImpl struct {
	historyStore historyStore
	users        userLookup
	logger       zerolog.Logger
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyStore historyStore, users userLookup, logger zerolog.Logger) HistoryService {
	return &historyServiceImpl{
		historyStore: historyStore,
		users:        users,
		logger:       logger,
	}
}

// resolveTargetStudent decides whose record the operation addresses.
// Students always operate on their own record; any supplied target is
// ignored. Mentors must name a target student. The resolved user must exist
// and carry the student role.
func (s *historyServiceImpl) resolveTargetStudent(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64) (int64, error) {
	resolved := callerID
	if callerRole == models.RoleMentor {
		if targetID <= 0 {
			return 0, apperrors.NewBadRequestError("a target student must be specified")
		}
		resolved = targetID
	}

	user, err := s.users.GetByID(ctx, resolved)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, err
	}
	if !user.IsStudent() {
		return 0, apperrors.ErrStudentNotFound
	}

	return resolved, nil
}

// Create opens the history record for the resolved student. A student may
// hold at most one record.
func (s *historyServiceImpl) Create(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.CreateHistoryRequest) (*models.StudentHistory, error) {
	studentID, err := s.resolveTargetStudent(ctx, callerID, callerRole, targetID)
	if err != nil {
		return nil, err
	}

	if err := validateSemesters(req.Semesters); err != nil {
		return nil, err
	}

	exists, err := s.historyStore.ExistsForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing record: %w", err)
	}
	if exists {
		return nil, apperrors.ErrHistoryAlreadyExists
	}

	record := &models.StudentHistory{
		StudentID:         studentID,
		FullName:          req.FullName,
		RegNo:             req.RegNo,
		PhoneNumber:       req.PhoneNumber,
		DOB:               req.DOB,
		Department:        req.Department,
		PermanentAddress:  req.PermanentAddress,
		Guardians:         req.Guardians,
		Schooling:         req.Schooling,
		Skills:            req.Skills,
		NewAchievement:    req.NewAchievement,
		CertificationLink: req.CertificationLink,
		Semesters:         sortedSemesters(req.Semesters),
		LastEditedBy:      callerID,
	}

	if _, err := s.historyStore.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int64("editorID", callerID).
		Msg("History record created")

	return record, nil
}

// Get retrieves the history record of the resolved student
func (s *historyServiceImpl) Get(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64) (*models.StudentHistory, error) {
	studentID, err := s.resolveTargetStudent(ctx, callerID, callerRole, targetID)
	if err != nil {
		return nil, err
	}
	return s.historyStore.GetByStudentID(ctx, studentID)
}

// Update applies a partial update to the record. Absent fields are left
// untouched; a supplied semesters field replaces the whole list.
func (s *historyServiceImpl) Update(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.UpdateHistoryRequest) (*models.StudentHistory, error) {
	studentID, err := s.resolveTargetStudent(ctx, callerID, callerRole, targetID)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("update carries no fields")
	}

	if req.Semesters != nil {
		if err := validateSemesters(*req.Semesters); err != nil {
			return nil, err
		}
		sorted := sortedSemesters(*req.Semesters)
		req.Semesters = &sorted
	}

	record, err := s.historyStore.Update(ctx, studentID, callerID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("studentID", studentID).
		Int64("editorID", callerID).
		Msg("History record updated")

	return record, nil
}

// Delete removes the record of the resolved student
func (s *historyServiceImpl) Delete(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64) error {
	studentID, err := s.resolveTargetStudent(ctx, callerID, callerRole, targetID)
	if err != nil {
		return err
	}

	if err := s.historyStore.Delete(ctx, studentID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int64("editorID", callerID).
		Msg("History record deleted")

	return nil
}

// UpsertSemester adds a semester or partially updates an existing one,
// matched by semester number. The list stays sorted by semester number and
// never exceeds MaxSemesters distinct entries.
func (s *historyServiceImpl) UpsertSemester(ctx context.Context, callerID int64, callerRole models.RoleType, targetID int64, req *dto.UpsertSemesterRequest) (*models.StudentHistory, error) {
	if req.SemesterNumber < 1 || req.SemesterNumber > models.MaxSemesters {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("semesterNumber must lie between 1 and %d", models.MaxSemesters))
	}

	studentID, err := s.resolveTargetStudent(ctx, callerID, callerRole, targetID)
	if err != nil {
		return nil, err
	}

	record, err := s.historyStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	semesters := make([]models.Semester, len(record.Semesters))
	copy(semesters, record.Semesters)

	if idx := record.FindSemester(req.SemesterNumber); idx >= 0 {
		if req.GPA != nil {
			semesters[idx].GPA = *req.GPA
		}
		if req.Subjects != nil {
			semesters[idx].Subjects = *req.Subjects
		}
	} else {
		if len(semesters) >= models.MaxSemesters {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("a record holds at most %d semesters", models.MaxSemesters))
		}
		entry := models.Semester{SemesterNumber: req.SemesterNumber, Subjects: []models.Subject{}}
		if req.GPA != nil {
			entry.GPA = *req.GPA
		}
		if req.Subjects != nil {
			entry.Subjects = *req.Subjects
		}
		semesters = append(semesters, entry)
		sort.Slice(semesters, func(i, j int) bool {
			return semesters[i].SemesterNumber < semesters[j].SemesterNumber
		})
	}

	updated, err := s.historyStore.ReplaceSemesters(ctx, studentID, callerID, semesters)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("studentID", studentID).
		Int("semester", req.SemesterNumber).
		Msg("Semester upserted")

	return updated, nil
}

// ListAll retrieves history records across all students, most recently
// updated first, paginated.
func (s *historyServiceImpl) ListAll(ctx context.Context, page, limit int) ([]*models.StudentHistory, dto.PaginationInfo, error) {
	page, limit = helpers.ClampPagination(page, limit)
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	total, err := s.historyStore.CountAll(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	records, err := s.historyStore.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	if records == nil {
		records = []*models.StudentHistory{}
	}

	return records, helpers.NewPaginationInfo(total, page, limit), nil
}

// validateSemesters rejects oversized or out-of-range semester lists and
// duplicate semester numbers.
func validateSemesters(semesters []models.Semester) error {
	if len(semesters) > models.MaxSemesters {
		return apperrors.NewValidationError(
			fmt.Sprintf("a record holds at most %d semesters", models.MaxSemesters))
	}
	seen := make(map[int]bool, len(semesters))
	for _, sem := range semesters {
		if sem.SemesterNumber < 1 || sem.SemesterNumber > models.MaxSemesters {
			return apperrors.NewValidationError(
				fmt.Sprintf("semesterNumber must lie between 1 and %d", models.MaxSemesters))
		}
		if seen[sem.SemesterNumber] {
			return apperrors.NewValidationError("duplicate semesterNumber")
		}
		seen[sem.SemesterNumber] = true
	}
	return nil
}

// sortedSemesters returns a copy ordered by semester number ascending.
func sortedSemesters(semesters []models.Semester) []models.Semester {
	out := make([]models.Semester, len(semesters))
	copy(out, semesters)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SemesterNumber < out[j].SemesterNumber
	})
	return out
}
