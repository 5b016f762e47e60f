package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pontodigital/ponto-backend/api/controllers"
	"github.com/pontodigital/ponto-backend/api/middleware"
	"github.com/pontodigital/ponto-backend/internal/auth"
	"github.com/pontodigital/ponto-backend/internal/backup"
	"github.com/pontodigital/ponto-backend/internal/ferias"
	"github.com/pontodigital/ponto-backend/internal/funcionarios"
	"github.com/pontodigital/ponto-backend/internal/ponto"
	"github.com/pontodigital/ponto-backend/internal/relatorios"
	"github.com/pontodigital/ponto-backend/pkg/config"
	"github.com/pontodigital/ponto-backend/pkg/db"
	"github.com/pontodigital/ponto-backend/pkg/enums"
	"github.com/pontodigital/ponto-backend/pkg/logger"
	"github.com/pontodigital/ponto-backend/pkg/metrics"
	"github.com/pontodigital/ponto-backend/pkg/redis"
	"github.com/pontodigital/ponto-backend/pkg/storage/gcs"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	GCS      *gcs.Client
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry

	AuthService         auth.Service
	PontoService        ponto.Service
	FeriasService       ferias.Service
	FuncionariosService funcionarios.Service
	RelatoriosService   relatorios.Service
	BackupService       backup.Service
}

// NewRouter assembles the public, authenticated, and admin route groups.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.Metrics),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	var redisPinger redis.Pinger
	if p.Redis != nil {
		redisPinger = p.Redis
	}
	var gcsPinger gcs.Pinger
	if p.GCS != nil {
		gcsPinger = p.GCS
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, redisPinger, gcsPinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	login := controllers.AuthLogin(p.AuthService, logg)
	if p.Redis != nil {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", login)
	} else {
		r.Post("/login", login)
	}

	if !cfg.App.IsProd() {
		r.Post("/bootstrap-admin", controllers.BootstrapAdmin(p.FuncionariosService, cfg, logg))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Post("/ponto/registrar", controllers.PontoRegistrar(p.PontoService, p.GCS, cfg.Storage, logg))

		r.Route("/ferias", func(r chi.Router) {
			r.Get("/info", controllers.FeriasInfo(p.FeriasService, logg))
			r.Post("/solicitar", controllers.FeriasSolicitar(p.FeriasService, logg))
			r.Get("/ultimas", controllers.FeriasUltimas(p.FeriasService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireCategoria(logg, enums.CategoriaRH, enums.CategoriaAdmin))

			r.Get("/funcionarios", controllers.AdminListarFuncionarios(p.FuncionariosService, logg))
			r.Post("/criar-funcionario", controllers.AdminCriarFuncionario(p.FuncionariosService, logg))
			r.Route("/funcionario/{id}", func(r chi.Router) {
				r.Get("/", controllers.AdminObterFuncionario(p.FuncionariosService, logg))
				r.Put("/", controllers.AdminAtualizarFuncionario(p.FuncionariosService, logg))
				r.Delete("/", controllers.AdminExcluirFuncionario(p.FuncionariosService, logg))
			})

			r.Get("/status", controllers.AdminStatus(p.RelatoriosService, logg))
			r.Get("/exportar", controllers.AdminExportar(p.RelatoriosService, logg))

			r.Post("/backup-json", controllers.AdminBackupJSON(p.BackupService, logg))
			r.Get("/backups", controllers.AdminListarBackups(p.BackupService, logg))
			r.Post("/upload", controllers.AdminUpload(p.BackupService, logg))
		})
	})

	return r
}
