package dto

// UpdateProfileRequest represents a partial profile update.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	About     *string   `json:"about,omitempty"`
	Expertise *[]string `json:"expertise,omitempty"`
	AvatarURL *string   `json:"avatar,omitempty"`
	BannerURL *string   `json:"banner,omitempty"`
}
