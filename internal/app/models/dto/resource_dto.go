package dto

// CreateResourceRequest is the body for adding a resource board entry
type CreateResourceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Type        string  `json:"type" binding:"omitempty,oneof=blog tool video report news"`
	ImageURL    *string `json:"image,omitempty"`
}
