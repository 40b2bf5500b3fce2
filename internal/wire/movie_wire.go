package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
	r.Post("/movies", movieHandler.CreateMovie)
	r.Put("/movies/{id}", movieHandler.UpdateMovie)
	r.Delete("/movies/{id}", movieHandler.DeleteMovie)
}
