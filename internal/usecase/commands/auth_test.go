//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/pkg/jwt"
	"bengkel-service/internal/pkg/password"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/shared"
	"bengkel-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(f *fixture) (commands.AuthCommands, *jwt.Service) {
	jwtService := jwt.NewService("test-secret", time.Hour, f.clock)
	return commands.NewAuthCommands(f.store, jwtService, password.NewBcryptHasherWithCost(4), f.clock), jwtService
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer", func(t *testing.T) {
		f := newFixture(t)
		auth, _ := newAuth(f)

		u, err := auth.Register(ctx, builder.NewAuthBuilder().BuildRegisterInput())
		require.NoError(t, err)
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.NotEqual(t, "password123", u.PasswordHash())
	})

	t.Run("email is unique", func(t *testing.T) {
		f := newFixture(t)
		auth, _ := newAuth(f)

		req := builder.NewAuthBuilder().BuildRegisterInput()
		req.Email = "BUDI@example.com"
		_, err := auth.Register(ctx, req)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("weak password", func(t *testing.T) {
		f := newFixture(t)
		auth, _ := newAuth(f)

		req := builder.NewAuthBuilder().BuildRegisterInput()
		req.Password = "short"
		_, err := auth.Register(ctx, req)
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token carrying the role", func(t *testing.T) {
		f := newFixture(t)
		auth, jwtService := newAuth(f)
		_, err := auth.Register(ctx, builder.NewAuthBuilder().BuildRegisterInput())
		require.NoError(t, err)

		result, err := auth.Login(ctx, builder.NewAuthBuilder().BuildInput())
		require.NoError(t, err)
		assert.Equal(t, f.clock.Now().Add(time.Hour), result.ExpiresAt)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID(), claims.UserID)
		assert.Equal(t, "CUSTOMER", claims.Role)

		view, err := f.store.FindUserByID(ctx, result.User.ID())
		require.NoError(t, err)
		require.NotNil(t, view.LastLoginAt)
		assert.Equal(t, f.clock.Now(), *view.LastLoginAt)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		f := newFixture(t)
		auth, _ := newAuth(f)
		_, err := auth.Register(ctx, builder.NewAuthBuilder().BuildRegisterInput())
		require.NoError(t, err)

		req := builder.NewAuthBuilder().BuildInput()
		req.Password = "password124"
		_, err = auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)

		req = builder.NewAuthBuilder().BuildInput()
		req.Email = "nobody@example.com"
		_, err = auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("inactive accounts cannot log in", func(t *testing.T) {
		f := newFixture(t)
		auth, _ := newAuth(f)

		u, err := builder.NewUserBuilder().WithEmail("lama@example.com").WithPasswordHash(builder.Password123Hash).AsInactive().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, u)
		}))

		_, err = auth.Login(ctx, commands.LoginRequest{Email: "lama@example.com", Password: "password123"})
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
