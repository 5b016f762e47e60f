package controllers

import (
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/internal/relatorios"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

// AdminStatus serves the aggregate dashboard summary.
func AdminStatus(svc relatorios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "relatorios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := svc.Status(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w, status)
	}
}

// AdminExportar serves the administrative report as a CSV download.
func AdminExportar(svc relatorios.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "relatorios service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Exportar(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="relatorio-ponto.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(report))
	}
}
