package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /login - exchange credentials for a bearer token
	r.Post("/login", authHandler.Login)
}
