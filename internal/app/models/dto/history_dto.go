package dto

import (
	"time"

	"github.com/arjunrv/mentorhub/internal/app/models"
)

// CreateHistoryRequest carries the initial fields of a history record.
// Student and lastEditedBy references are derived from the caller, never
// taken from the body.
type CreateHistoryRequest struct {
	FullName          string            `json:"fullName"`
	RegNo             string            `json:"regNo"`
	PhoneNumber       string            `json:"phoneNumber"`
	DOB               *time.Time        `json:"dob,omitempty"`
	Department        string            `json:"department"`
	PermanentAddress  string            `json:"permanentAddress"`
	Guardians         models.Guardians  `json:"guardians"`
	Schooling         models.Schooling  `json:"schooling"`
	Skills            []string          `json:"skills"`
	NewAchievement    string            `json:"newAchievement"`
	CertificationLink string            `json:"certificationLink"`
	Semesters         []models.Semester `json:"semesters"`
}

// UpdateHistoryRequest represents a partial history update.
// Nil means the field was absent from the request and must be left untouched;
// a non-nil pointer to a zero value is applied as given. A supplied semesters
// field replaces the whole list.
type UpdateHistoryRequest struct {
	FullName          *string            `json:"fullName,omitempty"`
	RegNo             *string            `json:"regNo,omitempty"`
	PhoneNumber       *string            `json:"phoneNumber,omitempty"`
	DOB               *time.Time         `json:"dob,omitempty"`
	Department        *string            `json:"department,omitempty"`
	PermanentAddress  *string            `json:"permanentAddress,omitempty"`
	Guardians         *models.Guardians  `json:"guardians,omitempty"`
	Schooling         *models.Schooling  `json:"schooling,omitempty"`
	Skills            *[]string          `json:"skills,omitempty"`
	NewAchievement    *string            `json:"newAchievement,omitempty"`
	CertificationLink *string            `json:"certificationLink,omitempty"`
	Semesters         *[]models.Semester `json:"semesters,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateHistoryRequest) IsEmpty() bool {
	return r.FullName == nil && r.RegNo == nil && r.PhoneNumber == nil &&
		r.DOB == nil && r.Department == nil && r.PermanentAddress == nil &&
		r.Guardians == nil && r.Schooling == nil && r.Skills == nil &&
		r.NewAchievement == nil && r.CertificationLink == nil && r.Semesters == nil
}

// UpsertSemesterRequest adds a new semester or partially updates an existing
// one, matched by semesterNumber.
type UpsertSemesterRequest struct {
	SemesterNumber int               `json:"semesterNumber"`
	GPA            *string           `json:"gpa,omitempty"`
	Subjects       *[]models.Subject `json:"subjects,omitempty"`
}
