package request

import (
	"strings"

	"bengkel-service/internal/usecase/commands"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToInput() commands.RegisterRequest {
	return commands.RegisterRequest{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToInput() commands.LoginRequest {
	return commands.LoginRequest{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}
