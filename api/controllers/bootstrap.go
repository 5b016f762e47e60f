package controllers

import (
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/api/validators"
	"github.com/pontodigital/ponto-backend/internal/funcionarios"
	"github.com/pontodigital/ponto-backend/pkg/config"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

type bootstrapAdminRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
}

// BootstrapAdmin seeds the first ADMIN account. The route only exists outside
// production, there is no unauthenticated account creation in prod.
func BootstrapAdmin(svc funcionarios.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.App.IsProd() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeForbidden, "acesso negado"))
			return
		}
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "funcionarios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body bootstrapAdminRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		senha, err := svc.Criar(r.Context(), funcionarios.CreateInput{
			Nome:      body.Nome,
			Email:     body.Email,
			CPF:       body.CPF,
			Telefone:  body.Telefone,
			Categoria: "ADMIN",
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, map[string]any{"ok": true, "senhaGerada": senha})
	}
}
