package controllers

import (
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/api/validators"
	"github.com/pontodigital/ponto-backend/internal/ferias"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

// FeriasInfo returns the caller's eligibility snapshot.
func FeriasInfo(svc ferias.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "ferias service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		funcionarioID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		info, err := svc.Info(r.Context(), funcionarioID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, info)
	}
}

// FeriasSolicitar records a vacation request for the caller.
func FeriasSolicitar(svc ferias.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "ferias service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		funcionarioID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body ferias.SolicitarRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Solicitar(r.Context(), funcionarioID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, resp)
	}
}

// FeriasUltimas returns the caller's most recent vacation, if any.
func FeriasUltimas(svc ferias.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "ferias service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		funcionarioID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Ultimas(r.Context(), funcionarioID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, resp)
	}
}
