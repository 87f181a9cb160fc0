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

type fakeHistoryStore struct {
	records map[int64]*models.StudentHistory
	nextID  int64
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{records: make(map[int64]*models.StudentHistory)}
}

func (f *fakeHistoryStore) Create(_ context.Context, record *models.StudentHistory) (int64, error) {
	if _, ok := f.records[record.StudentID]; ok {
		return 0, apperrors.ErrHistoryAlreadyExists
	}
	f.nextID++
	record.ID = f.nextID
	copied := *record
	f.records[record.StudentID] = &copied
	return record.ID, nil
}

func (f *fakeHistoryStore) GetByStudentID(_ context.Context, studentID int64) (*models.StudentHistory, error) {
	record, ok := f.records[studentID]
	if !ok {
		return nil, apperrors.ErrHistoryNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeHistoryStore) ExistsForStudent(_ context.Context, studentID int64) (bool, error) {
	_, ok := f.records[studentID]
	return ok, nil
}

func (f *fakeHistoryStore) Update(_ context.Context, studentID, editorID int64, update *dto.UpdateHistoryRequest) (*models.StudentHistory, error) {
	record, ok := f.records[studentID]
	if !ok {
		return nil, apperrors.ErrHistoryNotFound
	}
	if update.FullName != nil {
		record.FullName = *update.FullName
	}
	if update.RegNo != nil {
		record.RegNo = *update.RegNo
	}
	if update.PhoneNumber != nil {
		record.PhoneNumber = *update.PhoneNumber
	}
	if update.Department != nil {
		record.Department = *update.Department
	}
	if update.Skills != nil {
		record.Skills = *update.Skills
	}
	if update.Semesters != nil {
		record.Semesters = *update.Semesters
	}
	record.LastEditedBy = editorID
	copied := *record
	return &copied, nil
}

func (f *fakeHistoryStore) ReplaceSemesters(_ context.Context, studentID, editorID int64, semesters []models.Semester) (*models.StudentHistory, error) {
	record, ok := f.records[studentID]
	if !ok {
		return nil, apperrors.ErrHistoryNotFound
	}
	record.Semesters = semesters
	record.LastEditedBy = editorID
	copied := *record
	return &copied, nil
}

func (f *fakeHistoryStore) Delete(_ context.Context, studentID int64) error {
	if _, ok := f.records[studentID]; !ok {
		return apperrors.ErrHistoryNotFound
	}
	delete(f.records, studentID)
	return nil
}

func (f *fakeHistoryStore) ListAll(_ context.Context, offset uint64, limit int) ([]*models.StudentHistory, error) {
	var out []*models.StudentHistory
	for _, record := range f.records {
		out = append(out, record)
	}
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHistoryStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func newHistoryFixture() (*fakeHistoryStore, HistoryService) {
	store := newFakeHistoryStore()
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Name: "Asha", RoleType: models.RoleStudent},
		2: {ID: 2, Name: "Ravi", RoleType: models.RoleMentor},
		5: {ID: 5, Name: "Kiran", RoleType: models.RoleStudent},
	}}
	service := NewHistoryService(store, users, zerolog.Nop())
	return store, service
}

func TestHistoryTargetResolution(t *testing.T) {
	t.Run("student always operates on own record", func(t *testing.T) {
		store, service := newHistoryFixture()

		// The supplied target must be ignored for students
		record, err := service.Create(context.Background(), 1, models.RoleStudent, 5, &dto.CreateHistoryRequest{FullName: "Asha"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), record.StudentID)
		assert.Contains(t, store.records, int64(1))
		assert.NotContains(t, store.records, int64(5))
	})

	t.Run("mentor must name a target", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Get(context.Background(), 2, models.RoleMentor, 0)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("mentor operates on the named student", func(t *testing.T) {
		store, service := newHistoryFixture()

		record, err := service.Create(context.Background(), 2, models.RoleMentor, 5, &dto.CreateHistoryRequest{FullName: "Kiran"})
		require.NoError(t, err)

		assert.Equal(t, int64(5), record.StudentID)
		assert.Equal(t, int64(2), record.LastEditedBy)
		assert.Contains(t, store.records, int64(5))
	})

	t.Run("target must exist and be a student", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Get(context.Background(), 2, models.RoleMentor, 99)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

		// Naming another mentor is also a student-not-found
		_, err = service.Get(context.Background(), 2, models.RoleMentor, 2)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestHistoryCreate(t *testing.T) {
	t.Run("duplicate record is a conflict", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{})
		assert.ErrorIs(t, err, apperrors.ErrHistoryAlreadyExists)
	})

	t.Run("initial semesters are sorted", func(t *testing.T) {
		_, service := newHistoryFixture()

		record, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: []models.Semester{
				{SemesterNumber: 3, GPA: "8.1"},
				{SemesterNumber: 1, GPA: "7.5"},
			},
		})
		require.NoError(t, err)

		require.Len(t, record.Semesters, 2)
		assert.Equal(t, 1, record.Semesters[0].SemesterNumber)
		assert.Equal(t, 3, record.Semesters[1].SemesterNumber)
	})

	t.Run("rejects out-of-range or duplicate semester numbers", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: []models.Semester{{SemesterNumber: 9}},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: []models.Semester{{SemesterNumber: 1}, {SemesterNumber: 1}},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestHistoryUpdate(t *testing.T) {
	t.Run("applies only supplied fields and records the editor", func(t *testing.T) {
		store, service := newHistoryFixture()

		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			FullName:   "Asha",
			Department: "CSE",
		})
		require.NoError(t, err)

		phone := "9876543210"
		record, err := service.Update(context.Background(), 2, models.RoleMentor, 1, &dto.UpdateHistoryRequest{
			PhoneNumber: &phone,
		})
		require.NoError(t, err)

		assert.Equal(t, "9876543210", record.PhoneNumber)
		assert.Equal(t, "Asha", record.FullName)
		assert.Equal(t, "CSE", record.Department)
		assert.Equal(t, int64(2), record.LastEditedBy)
		assert.Equal(t, int64(2), store.records[1].LastEditedBy)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{})
		require.NoError(t, err)

		_, err = service.Update(context.Background(), 1, models.RoleStudent, 0, &dto.UpdateHistoryRequest{})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("supplied semesters replace the list after validation", func(t *testing.T) {
		_, service := newHistoryFixture()

		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: []models.Semester{{SemesterNumber: 1}},
		})
		require.NoError(t, err)

		oversized := make([]models.Semester, models.MaxSemesters+1)
		for i := range oversized {
			oversized[i] = models.Semester{SemesterNumber: i + 1}
		}
		_, err = service.Update(context.Background(), 1, models.RoleStudent, 0, &dto.UpdateHistoryRequest{
			Semesters: &oversized,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		replacement := []models.Semester{{SemesterNumber: 2, GPA: "8.0"}}
		record, err := service.Update(context.Background(), 1, models.RoleStudent, 0, &dto.UpdateHistoryRequest{
			Semesters: &replacement,
		})
		require.NoError(t, err)
		require.Len(t, record.Semesters, 1)
		assert.Equal(t, 2, record.Semesters[0].SemesterNumber)
	})
}

func TestUpsertSemester(t *testing.T) {
	setup := func(t *testing.T) (*fakeHistoryStore, HistoryService) {
		t.Helper()
		store, service := newHistoryFixture()
		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: []models.Semester{
				{SemesterNumber: 1, GPA: "7.5"},
				{SemesterNumber: 2, GPA: "7.8"},
			},
		})
		require.NoError(t, err)
		return store, service
	}

	t.Run("appends a new semester in sorted position", func(t *testing.T) {
		_, service := setup(t)

		gpa := "8.2"
		record, err := service.UpsertSemester(context.Background(), 1, models.RoleStudent, 0, &dto.UpsertSemesterRequest{
			SemesterNumber: 3,
			GPA:            &gpa,
		})
		require.NoError(t, err)

		require.Len(t, record.Semesters, 3)
		assert.Equal(t, []int{1, 2, 3}, semesterNumbers(record.Semesters))
		assert.Equal(t, "8.2", record.Semesters[2].GPA)
	})

	t.Run("updates an existing semester in place", func(t *testing.T) {
		_, service := setup(t)

		gpa := "9.0"
		record, err := service.UpsertSemester(context.Background(), 1, models.RoleStudent, 0, &dto.UpsertSemesterRequest{
			SemesterNumber: 2,
			GPA:            &gpa,
		})
		require.NoError(t, err)

		require.Len(t, record.Semesters, 2)
		assert.Equal(t, "9.0", record.Semesters[1].GPA)
		// The untouched semester keeps its value
		assert.Equal(t, "7.5", record.Semesters[0].GPA)
	})

	t.Run("partial update leaves absent fields untouched", func(t *testing.T) {
		_, service := setup(t)

		subjects := []models.Subject{{Code: "CS201", Name: "Algorithms", Marks: "88"}}
		record, err := service.UpsertSemester(context.Background(), 1, models.RoleStudent, 0, &dto.UpsertSemesterRequest{
			SemesterNumber: 2,
			Subjects:       &subjects,
		})
		require.NoError(t, err)

		assert.Equal(t, "7.8", record.Semesters[1].GPA)
		assert.Equal(t, subjects, record.Semesters[1].Subjects)
	})

	t.Run("rejects out-of-range semester numbers", func(t *testing.T) {
		_, service := setup(t)

		for _, number := range []int{0, -1, models.MaxSemesters + 1} {
			_, err := service.UpsertSemester(context.Background(), 1, models.RoleStudent, 0, &dto.UpsertSemesterRequest{
				SemesterNumber: number,
			})
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		}
	})

	t.Run("ninth distinct semester is rejected and the record unchanged", func(t *testing.T) {
		store, service := newHistoryFixture()

		full := make([]models.Semester, models.MaxSemesters)
		for i := range full {
			full[i] = models.Semester{SemesterNumber: i + 1}
		}
		_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{
			Semesters: full,
		})
		require.NoError(t, err)

		// All slots are taken, but an in-place update of slot 8 still works
		gpa := "9.9"
		_, err = service.UpsertSemester(context.Background(), 1, models.RoleStudent, 0, &dto.UpsertSemesterRequest{
			SemesterNumber: models.MaxSemesters,
			GPA:            &gpa,
		})
		require.NoError(t, err)

		assert.Len(t, store.records[1].Semesters, models.MaxSemesters)
	})

	t.Run("records the editor", func(t *testing.T) {
		store, service := setup(t)

		gpa := "8.0"
		_, err := service.UpsertSemester(context.Background(), 2, models.RoleMentor, 1, &dto.UpsertSemesterRequest{
			SemesterNumber: 1,
			GPA:            &gpa,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2), store.records[1].LastEditedBy)
	})
}

func TestHistoryListAll(t *testing.T) {
	store, service := newHistoryFixture()

	_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), 2, models.RoleMentor, 5, &dto.CreateHistoryRequest{})
	require.NoError(t, err)
	require.Len(t, store.records, 2)

	records, pagination, err := service.ListAll(context.Background(), 0, 500)
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 100, pagination.PageSize)
	assert.Equal(t, int64(2), pagination.TotalItems)
}

func TestHistoryDelete(t *testing.T) {
	store, service := newHistoryFixture()

	_, err := service.Create(context.Background(), 1, models.RoleStudent, 0, &dto.CreateHistoryRequest{})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), 1, models.RoleStudent, 0))
	assert.Empty(t, store.records)

	err = service.Delete(context.Background(), 1, models.RoleStudent, 0)
	assert.ErrorIs(t, err, apperrors.ErrHistoryNotFound)
}

func semesterNumbers(semesters []models.Semester) []int {
	out := make([]int, len(semesters))
	for i, s := range semesters {
		out[i] = s.SemesterNumber
	}
	return out
}
