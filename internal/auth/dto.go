package auth

import (
	"github.com/pontodigital/ponto-backend/internal/funcionarios"
)

// LoginRequest is the credential payload posted by the client.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse carries the signed token plus a sanitized user summary.
type LoginResponse struct {
	Token   string              `json:"token"`
	Usuario funcionarios.Resumo `json:"usuario"`
}
