package response

import (
	"movie-review-api/internal/data/entity"
)

// ReviewResponse carries one-level snapshots of its user and movie.
type ReviewResponse struct {
	ID      string         `json:"id"`
	Content string         `json:"content"`
	Rating  float64        `json:"rating"`
	MovieID *string        `json:"movie_id"`
	UserID  string         `json:"user_id"`
	User    *UserResponse  `json:"user"`
	Movie   *MovieResponse `json:"movie"`
}

func ReviewToResponse(review *entity.Review, user *entity.User, movie *entity.Movie) ReviewResponse {
	resp := ReviewResponse{
		ID:      review.ID.String(),
		Content: review.Content,
		Rating:  review.Rating,
		UserID:  review.UserID.String(),
	}

	if review.MovieID != nil {
		movieID := review.MovieID.String()
		resp.MovieID = &movieID
	}

	if user != nil {
		userResp := UserToResponse(user)
		resp.User = &userResp
	}

	if movie != nil {
		movieResp := MovieToResponse(movie)
		resp.Movie = &movieResp
	}

	return resp
}
