package wire

import (
	"movie-review-api/internal/adaptor"
	"movie-review-api/internal/data/repository"
	"movie-review-api/pkg/middleware"
	"movie-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/reviews", reviewHandler.GetReviews)
	r.Get("/reviews/{id}", reviewHandler.GetReviewByID)
	r.Get("/movies/{movie_id}/reviews", reviewHandler.GetMovieReviews)

	// ==================== PROTECTED ROUTES (require bearer token) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		r.Post("/movies/{movie_id}/reviews", reviewHandler.CreateReview)
		r.Put("/reviews/{id}", reviewHandler.UpdateReview)
		r.Delete("/reviews/{id}", reviewHandler.DeleteReview)
	})
}
