package response

import (
	"movie-review-api/internal/data/entity"
)

type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// MovieDetailResponse embeds the movie's reviews. Nesting stops there:
// each review carries snapshots, not another review list.
type MovieDetailResponse struct {
	MovieResponse
	Reviews []ReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Genre:       movie.Genre,
		Description: movie.Description,
		ImageURL:    movie.ImageURL,
	}
}

func MovieToDetailResponse(movie *entity.Movie, reviews []ReviewResponse) MovieDetailResponse {
	if reviews == nil {
		reviews = []ReviewResponse{}
	}
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Reviews:       reviews,
	}
}
