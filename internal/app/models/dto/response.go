package dto

import "time"

// APIResponse provides a base structured API response
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-08-30T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success response wrapping data
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success response carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes the pagination state of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"page" example:"1"`
	PageSize    int   `json:"limit" example:"20"`
	TotalItems  int64 `json:"total" example:"42"`
	TotalPages  int   `json:"pages" example:"3"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
