package models

import "time"

// RequestStatus represents the state of a mentorship request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// IsTerminal reports whether the status is a terminal state.
// Only PENDING requests can still transition.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// MentorshipRequest represents a student's request for mentorship from a mentor
type MentorshipRequest struct {
	ID        int64         `json:"id" db:"id"`
	StudentID int64         `json:"studentId" db:"student_id"`
	MentorID  int64         `json:"mentorId" db:"mentor_id"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Related entities
	Student *User `json:"student,omitempty"`
	Mentor  *User `json:"mentor,omitempty"`
}
