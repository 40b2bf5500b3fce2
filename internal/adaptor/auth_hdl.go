package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		errMsg := err.Error()

		switch {
		case strings.Contains(errMsg, "validation failed"):
			h.log.Warn("Login validation failed", zap.Error(err))
			utils.ResponseBadRequest(w, errMsg, nil)

		case strings.Contains(errMsg, "invalid email or password"):
			// Same message for unknown email and wrong password
			h.log.Warn("Login rejected", zap.Error(err))
			utils.ResponseUnauthorized(w, "Invalid email or password")

		default:
			h.log.Error("Failed to login", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}
