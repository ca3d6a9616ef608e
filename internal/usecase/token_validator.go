package usecase

import (
	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (authz.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (authz.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return authz.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return authz.Actor{}, jwt.ErrInvalidToken
	}

	return authz.Actor{ID: claims.UserID, Role: role}, nil
}
