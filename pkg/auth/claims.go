package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pontodigital/ponto-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID    uuid.UUID
	Categoria enums.Categoria
}

// AccessTokenClaims represents the typed JWT issued to clients. Verification
// is stateless: there is no server-side session or revocation list, so a
// token stays valid until it expires or the signing secret rotates.
type AccessTokenClaims struct {
	UserID    uuid.UUID       `json:"user_id"`
	Categoria enums.Categoria `json:"categoria"`
	jwt.RegisteredClaims
}
