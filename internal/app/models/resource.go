package models

import "time"

// ResourceType categorizes an entry on the shared resource board
type ResourceType string

const (
	ResourceTypeBlog   ResourceType = "blog"
	ResourceTypeTool   ResourceType = "tool"
	ResourceTypeVideo  ResourceType = "video"
	ResourceTypeReport ResourceType = "report"
	ResourceTypeNews   ResourceType = "news"
)

// ValidResourceType reports whether t is one of the known resource types.
func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourceTypeBlog, ResourceTypeTool, ResourceTypeVideo, ResourceTypeReport, ResourceTypeNews:
		return true
	}
	return false
}

// Resource represents an entry on the shared resource board
type Resource struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Link        string       `json:"link" db:"link"`
	Type        ResourceType `json:"type" db:"type"`
	ImageURL    *string      `json:"imageUrl,omitempty" db:"image_url"`
	CreatorID   int64        `json:"creatorId" db:"creator_id"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// Related entities
	Creator *User `json:"creator,omitempty"`
}
