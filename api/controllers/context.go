package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pontodigital/ponto-backend/api/middleware"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
)

// userIDFromRequest resolves the authenticated employee id seeded by the auth
// middleware.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token inválido")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token inválido")
	}
	return id, nil
}
