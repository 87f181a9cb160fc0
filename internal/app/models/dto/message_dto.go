package dto

// SendMessageRequest is the body for persisting a direct message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// ContactResponse is a single entry in the recent contacts list
type ContactResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
