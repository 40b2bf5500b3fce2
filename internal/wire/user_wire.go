package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user CRUD routes. The user resource carries no
// authentication of its own; registration happens through POST /users.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Get("/users", userHandler.GetUsers)
	r.Get("/users/{id}", userHandler.GetUserByID)
	r.Post("/users", userHandler.CreateUser)
	r.Put("/users/{id}", userHandler.UpdateUser)
	r.Delete("/users/{id}", userHandler.DeleteUser)
}
