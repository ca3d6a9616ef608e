package commands

import (
	"context"
	"log/slog"
	"time"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/pkg/jwt"
	"bengkel-service/internal/pkg/password"
	"bengkel-service/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthorized)
	ErrUserInactive       = errs.Mark(errs.New("user account is inactive"), errs.ErrUnauthorized)
	ErrEmailTaken         = errs.Mark(errs.New("email is already registered"), errs.ErrValidation)
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*user.User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

// Register always creates a CUSTOMER. Staff accounts are seeded by an administrator.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, shared.Validation(err)
	}
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, shared.Validation(err)
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.System(err, "failed to hash password")
	}

	u := user.NewCustomer(name, credentials.Email(), hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsConstraint(err, infra.ConstraintUserEmail) {
			return nil, ErrEmailTaken
		}
		return nil, errs.System(err, "failed to register user")
	}
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.System(err, "failed to generate access token")
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID(), now)
	})
	if err != nil {
		// login already succeeded, only the bookkeeping failed
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		User:        u,
		AccessToken: token,
		ExpiresAt:   now.Add(a.jwtService.TokenDuration()),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.System(err, "failed to load user")
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
