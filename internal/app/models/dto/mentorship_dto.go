package dto

// CreateMentorshipRequest is the body for a student's mentorship request
type CreateMentorshipRequest struct {
	MentorID int64 `json:"mentorId" binding:"required"`
}

// RespondMentorshipRequest is the body for a mentor's accept/reject decision
type RespondMentorshipRequest struct {
	Status string `json:"status" binding:"required"`
}
