package usecase_test

import (
	"context"
	"testing"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func userRequest() *request.UserRequest {
	return &request.UserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Phone:    "08123456789",
	}
}

func TestCreateUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mockCtx, "alice@example.com").Return(nil, nil)

	var created *entity.User
	userRepo.On("Create", mockCtx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	resp, err := svc.CreateUser(context.Background(), userRequest())

	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "08123456789", resp.Phone)
	assert.NotEmpty(t, resp.ID)

	// Only the bcrypt hash may reach the repository
	assert.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", created.PasswordHash))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	existing := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mockCtx, "alice@example.com").Return(existing, nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	_, err := svc.CreateUser(context.Background(), userRequest())

	assert.ErrorContains(t, err, "email already registered")
	userRepo.AssertNotCalled(t, "Create", mockCtx, mock.Anything)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := usecase.NewUserService(new(MockUserRepository), zap.NewNop())

	tests := []struct {
		name string
		req  *request.UserRequest
	}{
		{"missing username", &request.UserRequest{Email: "a@b.com", Password: "secret123", Phone: "081"}},
		{"invalid email", &request.UserRequest{Username: "alice", Email: "nope", Password: "secret123", Phone: "081"}},
		{"short password", &request.UserRequest{Username: "alice", Email: "a@b.com", Password: "abc", Phone: "081"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.req)
			assert.ErrorContains(t, err, "validation failed")
		})
	}
}

func TestGetUserByID(t *testing.T) {
	user := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, user.ID).Return(user, nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	resp, err := svc.GetUserByID(context.Background(), user.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.ID)
	assert.Equal(t, user.Username, resp.Username)
	assert.Equal(t, user.Email, resp.Email)
}

func TestGetUserByID_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, mock.Anything).Return(nil, nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	_, err := svc.GetUserByID(context.Background(), uuid.NewString())

	assert.ErrorContains(t, err, "user not found")
}

func TestGetUserByID_InvalidID(t *testing.T) {
	svc := usecase.NewUserService(new(MockUserRepository), zap.NewNop())
	_, err := svc.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorContains(t, err, "invalid user id")
}

func TestUpdateUser_FullReplacement(t *testing.T) {
	user := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, user.ID).Return(user, nil)
	userRepo.On("FindByEmail", mockCtx, "bob@example.com").Return(nil, nil)

	var updated *entity.User
	userRepo.On("Update", mockCtx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.User)
		}).
		Return(nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	resp, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "newsecret",
		Phone:    "08987654321",
	})

	assert.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.Equal(t, "bob@example.com", resp.Email)

	assert.NotNil(t, updated)
	assert.Equal(t, user.ID, updated.ID)
	assert.True(t, utils.CheckPasswordHash("newsecret", updated.PasswordHash))
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	user := testUser("secret123")
	other := testUser("secret123")
	other.Email = "bob@example.com"

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, user.ID).Return(user, nil)
	userRepo.On("FindByEmail", mockCtx, "bob@example.com").Return(other, nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	_, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UserRequest{
		Username: "alice",
		Email:    "bob@example.com",
		Password: "secret123",
		Phone:    "08123456789",
	})

	assert.ErrorContains(t, err, "email already registered")
	userRepo.AssertNotCalled(t, "Update", mockCtx, mock.Anything)
}

func TestDeleteUser(t *testing.T) {
	user := testUser("secret123")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, user.ID).Return(user, nil)
	userRepo.On("Delete", mockCtx, user.ID).Return(nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	err := svc.DeleteUser(context.Background(), user.ID.String())

	assert.NoError(t, err)
	userRepo.AssertCalled(t, "Delete", mockCtx, user.ID)
}

func TestDeleteUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mockCtx, mock.Anything).Return(nil, nil)

	svc := usecase.NewUserService(userRepo, zap.NewNop())
	err := svc.DeleteUser(context.Background(), uuid.NewString())

	assert.ErrorContains(t, err, "user not found")
	userRepo.AssertNotCalled(t, "Delete", mockCtx, mock.Anything)
}
