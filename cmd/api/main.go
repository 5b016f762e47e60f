package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pontodigital/ponto-backend/api/routes"
	"github.com/pontodigital/ponto-backend/internal/auth"
	"github.com/pontodigital/ponto-backend/internal/backup"
	"github.com/pontodigital/ponto-backend/internal/ferias"
	"github.com/pontodigital/ponto-backend/internal/funcionarios"
	"github.com/pontodigital/ponto-backend/internal/ponto"
	"github.com/pontodigital/ponto-backend/internal/relatorios"
	"github.com/pontodigital/ponto-backend/pkg/config"
	"github.com/pontodigital/ponto-backend/pkg/db"
	"github.com/pontodigital/ponto-backend/pkg/logger"
	"github.com/pontodigital/ponto-backend/pkg/metrics"
	"github.com/pontodigital/ponto-backend/pkg/migrate"
	"github.com/pontodigital/ponto-backend/pkg/redis"
	"github.com/pontodigital/ponto-backend/pkg/security"
	"github.com/pontodigital/ponto-backend/pkg/storage/gcs"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.Storage, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}

	cipher, err := security.NewFieldCipher(cfg.Cipher)
	if err != nil {
		logg.Error(context.Background(), "failed to build field cipher", err)
		os.Exit(1)
	}

	funcionariosRepo := funcionarios.NewRepository(dbClient.DB())
	pontoRepo := ponto.NewRepository(dbClient.DB())
	feriasRepo := ferias.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		Repo:      funcionariosRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	funcionariosService, err := funcionarios.NewService(funcionariosRepo, cipher, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create funcionarios service", err)
		os.Exit(1)
	}

	pontoService, err := ponto.NewService(pontoRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create ponto service", err)
		os.Exit(1)
	}

	feriasService, err := ferias.NewService(ferias.ServiceParams{Repo: feriasRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create ferias service", err)
		os.Exit(1)
	}

	relatoriosService, err := relatorios.NewService(relatorios.ServiceParams{
		Funcionarios: funcionariosRepo,
		Pontos:       pontoRepo,
		Ferias:       feriasRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create relatorios service", err)
		os.Exit(1)
	}

	backupService, err := backup.NewService(backup.ServiceParams{
		Store:      gcsClient,
		StorageCfg: cfg.Storage,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create backup service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:              cfg,
			Logger:              logg,
			DB:                  dbClient,
			Redis:               redisClient,
			GCS:                 gcsClient,
			Metrics:             httpMetrics,
			Registry:            registry,
			AuthService:         authService,
			PontoService:        pontoService,
			FeriasService:       feriasService,
			FuncionariosService: funcionariosService,
			RelatoriosService:   relatoriosService,
			BackupService:       backupService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
