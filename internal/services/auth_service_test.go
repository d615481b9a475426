package services

import (
	"context"
	"testing"

	"fleetflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testJWTSecret, nil)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, models.UserRoleDispatcher, registered.User.Role)
	assert.Equal(t, models.UserStatusActive, registered.User.Status)
	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "secret123", registered.User.Password)

	response, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, registered.User.ID, response.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testJWTSecret, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTSecret, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testJWTSecret, nil)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, users.Update(ctx, registered.User.ID, map[string]interface{}{"status": models.UserStatusSuspended}))

	_, err = svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testJWTSecret, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "B", Email: "dup@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTSecret, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "A",
		Email:    "a@example.com",
		Password: "secret123",
		Role:     models.UserRole("owner"),
	})
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
}
