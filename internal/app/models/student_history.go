package models

import "time"

// MaxSemesters is the maximum number of semesters a history record may hold.
const MaxSemesters = 8

// Subject holds the result of a single subject within a semester.
type Subject struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Marks string `json:"marks"`
}

// Semester holds the academic results for one semester.
// SemesterNumber is unique within a record and lies in [1, MaxSemesters].
type Semester struct {
	SemesterNumber int       `json:"semesterNumber"`
	GPA            string    `json:"gpa"`
	Subjects       []Subject `json:"subjects"`
}

// Guardians is the guardian sub-record of a student history.
type Guardians struct {
	FatherName       string `json:"fatherName"`
	FatherOccupation string `json:"fatherOccupation"`
	MotherName       string `json:"motherName"`
	MotherOccupation string `json:"motherOccupation"`
}

// Schooling is the pre-college schooling sub-record.
type Schooling struct {
	HighSchoolName            string `json:"highSchoolName"`
	HighSchoolPercentage      string `json:"highSchoolPercentage"`
	HigherSecondaryName       string `json:"higherSecondaryName"`
	HigherSecondaryPercentage string `json:"higherSecondaryPercentage"`
}

// StudentHistory is the per-student academic history record.
// Exactly one record may exist per student (unique student_id).
// Guardians, schooling, skills and semesters are stored as JSONB documents.
type StudentHistory struct {
	ID               int64      `json:"id" db:"id"`
	StudentID        int64      `json:"studentId" db:"student_id"`
	FullName         string     `json:"fullName" db:"full_name"`
	RegNo            string     `json:"regNo" db:"reg_no"`
	PhoneNumber      string     `json:"phoneNumber" db:"phone_number"`
	DOB              *time.Time `json:"dob,omitempty" db:"dob"`
	Department       string     `json:"department" db:"department"`
	PermanentAddress string     `json:"permanentAddress" db:"permanent_address"`
	Guardians        Guardians  `json:"guardians" db:"guardians"`
	Schooling        Schooling  `json:"schooling" db:"schooling"`
	Skills           []string   `json:"skills" db:"skills"`
	NewAchievement   string     `json:"newAchievement" db:"new_achievement"`
	CertificationLink string    `json:"certificationLink" db:"certification_link"`
	Semesters        []Semester `json:"semesters" db:"semesters"`
	LastEditedBy     int64      `json:"lastEditedBy" db:"last_edited_by"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	// Related entities
	Student *User `json:"student,omitempty"`
	Editor  *User `json:"editor,omitempty"`
}

// FindSemester returns the index of the semester with the given number, or -1.
func (h *StudentHistory) FindSemester(number int) int {
	for i, s := range h.Semesters {
		if s.SemesterNumber == number {
			return i
		}
	}
	return -1
}
