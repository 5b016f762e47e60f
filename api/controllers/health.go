package controllers

import (
	"net/http"

	"github.com/pontodigital/ponto-backend/api/responses"
	"github.com/pontodigital/ponto-backend/pkg/config"
	"github.com/pontodigital/ponto-backend/pkg/db"
	pkgerrors "github.com/pontodigital/ponto-backend/pkg/errors"
	"github.com/pontodigital/ponto-backend/pkg/logger"
	"github.com/pontodigital/ponto-backend/pkg/redis"
	"github.com/pontodigital/ponto-backend/pkg/storage/gcs"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ponto-Env", cfg.App.Env)
		responses.WriteOK(w, map[string]string{"status": "live"})
	}
}

// HealthReady answers 200 only when every backing dependency responds.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger, gcsP gcs.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ponto-Env", cfg.App.Env)

		checks := []struct {
			name string
			ping func() error
		}{
			{"database", func() error { return pingOrNil(dbP, r) }},
			{"redis", func() error { return pingOrNilRedis(redisP, r) }},
			{"storage", func() error { return pingOrNilGCS(gcsP, r) }},
		}

		for _, check := range checks {
			if err := check.ping(); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.name+" unavailable"))
				return
			}
		}

		responses.WriteOK(w, map[string]string{"status": "ready"})
	}
}

func pingOrNil(p db.Pinger, r *http.Request) error {
	if p == nil {
		return nil
	}
	return p.Ping(r.Context())
}

func pingOrNilRedis(p redis.Pinger, r *http.Request) error {
	if p == nil {
		return nil
	}
	return p.Ping(r.Context())
}

func pingOrNilGCS(p gcs.Pinger, r *http.Request) error {
	if p == nil {
		return nil
	}
	return p.Ping(r.Context())
}
