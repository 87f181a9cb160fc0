package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleMentor  RoleType = "MENTOR"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Priya Sharma"`                    // Display name
	Email     string    `json:"email" db:"email" example:"priya@college.edu"`             // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`                // STUDENT or MENTOR
	About     string    `json:"about" db:"about" example:"Final year CS student"`         // Short bio
	Expertise []string  `json:"expertise" db:"expertise"`                                 // Areas of expertise (mostly mentors)
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`                      // Avatar image URL (nullable)
	BannerURL *string   `json:"bannerUrl,omitempty" db:"banner_url"`                      // Banner image URL (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// IsStudent reports whether the user carries the student role.
func (u *User) IsStudent() bool {
	return u.RoleType == RoleStudent
}

// IsMentor reports whether the user carries the mentor role.
func (u *User) IsMentor() bool {
	return u.RoleType == RoleMentor
}
