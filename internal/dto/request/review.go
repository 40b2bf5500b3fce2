package request

// ReviewRequest covers both create and update. The author is never taken
// from the body; it comes from the verified token.
type ReviewRequest struct {
	Content string   `json:"content" validate:"required"`
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=10"`
}
