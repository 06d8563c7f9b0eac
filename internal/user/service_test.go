package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehaven/venue-booking-backend/internal/auth"
)

func newTestService() Service {
	// Low bcrypt cost to keep tests fast.
	return NewService(NewMemoryRepository(), auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     RoleOwner,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleOwner, u.Role)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)

	logged, err := svc.Login(ctx, "alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, u.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "password123",
		Role:     Role("admin"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "nope-nope-nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "NoEmail", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(ctx, RegisterRequest{Name: "Short", Email: "s@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
