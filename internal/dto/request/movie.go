package request

// MovieRequest covers both create and full-replacement update
type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Genre       string  `json:"genre" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}
