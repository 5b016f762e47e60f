package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pontodigital/ponto-backend/pkg/config"
)

func bootstrapConfig(env string) *config.Config {
	return &config.Config{App: config.AppConfig{Env: env}}
}

func TestBootstrapAdminDisabledInProd(t *testing.T) {
	handler := BootstrapAdmin(&stubFuncionariosService{senha: "12345"}, bootstrapConfig("prod"), nil)

	payload := []byte(`{"nome":"Root","email":"root@empresa.com","cpf":"12345678900","telefone":"11999990000"}`)
	req := httptest.NewRequest(http.MethodPost, "/bootstrap-admin", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 in production, got %d", rec.Code)
	}
}

func TestBootstrapAdminCreatesAdmin(t *testing.T) {
	svc := &stubFuncionariosService{senha: "12345"}
	handler := BootstrapAdmin(svc, bootstrapConfig("dev"), nil)

	payload := []byte(`{"nome":"Root","email":"root@empresa.com","cpf":"12345678900","telefone":"11999990000"}`)
	req := httptest.NewRequest(http.MethodPost, "/bootstrap-admin", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotInput.Categoria != "ADMIN" {
		t.Fatalf("expected forced ADMIN categoria, got %q", svc.gotInput.Categoria)
	}
}
