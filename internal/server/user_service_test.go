package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan/learnfast/internal/config"
	"github.com/rohan/learnfast/internal/db"
	"github.com/rohan/learnfast/internal/types"
)

func testUserService() (*UserService, *mockStore) {
	store := newMockStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	service, _ := testUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.SignupRequest{
		Name:     "Rohan",
		Email:    "rohan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Rohan", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "rohan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service, _ := testUserService()
	ctx := context.Background()

	req := &types.SignupRequest{Name: "Rohan", Email: "rohan@example.com", Password: "password123"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	service, _ := testUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.SignupRequest{
		Name: "Rohan", Email: "rohan@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "rohan@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	require.Error(t, err)
	// Same error type as a wrong password, so responses don't leak which
	// emails exist
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	now := time.Now()
	dbUser := &db.User{
		ID:           uuid.New(),
		Name:         "Rohan",
		Email:        "rohan@example.com",
		PasswordHash: "hashed-password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	typesUser := convertDBUserToTypesUser(dbUser)
	require.NotNil(t, typesUser)
	assert.Equal(t, dbUser.ID, typesUser.ID)
	assert.Equal(t, dbUser.Email, typesUser.Email)

	assert.Nil(t, convertDBUserToTypesUser(nil))
}
