package usecase_test

import (
	"context"
	"testing"
	"time"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAuthService(userRepo *MockUserRepository) usecase.AuthService {
	repo := &repository.Repository{User: userRepo}
	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
	return usecase.NewAuthService(repo, config, zap.NewNop())
}

func testUser(password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Phone:        "08123456789",
	}
}

func TestLogin_Success(t *testing.T) {
	user := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mockCtx, user.Email).Return(user, nil)

	svc := newAuthService(userRepo)
	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// The token subject must be the authenticated user's ID
	subject, err := utils.ParseToken("test-secret", resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	user := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mockCtx, user.Email).Return(user, nil)
	userRepo.On("FindByEmail", mockCtx, "unknown@example.com").Return(nil, nil)

	svc := newAuthService(userRepo)

	_, wrongPassErr := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})
	_, unknownEmailErr := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "unknown@example.com",
		Password: "secret123",
	})

	// Unknown email and wrong password must be indistinguishable to the caller
	assert.Error(t, wrongPassErr)
	assert.Error(t, unknownEmailErr)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestLogin_Validation(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	tests := []struct {
		name string
		req  *request.LoginRequest
	}{
		{"missing email", &request.LoginRequest{Password: "secret123"}},
		{"invalid email", &request.LoginRequest{Email: "not-an-email", Password: "secret123"}},
		{"missing password", &request.LoginRequest{Email: "alice@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorContains(t, err, "validation failed")
		})
	}
}
