package middleware

import (
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
)

// RequireCategoria rejects requests whose authenticated categoria is not in the
// allowed set. Management surfaces pass RH and ADMIN.
func RequireCategoria(logg *logger.Logger, allowed ...enums.Categoria) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			categoria := CategoriaFromContext(r.Context())
			for _, c := range allowed {
				if categoria == string(c) {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "acesso negado"))
		})
	}
}
