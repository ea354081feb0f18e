package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/noah-isme/school-portal-api/api/swagger"
	"github.com/noah-isme/school-portal-api/internal/handler"
	"github.com/noah-isme/school-portal-api/internal/router"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/internal/store"
	"github.com/noah-isme/school-portal-api/pkg/config"
	"github.com/noah-isme/school-portal-api/pkg/kvstore"
	"github.com/noah-isme/school-portal-api/pkg/logger"
	"github.com/noah-isme/school-portal-api/pkg/storage"
)

// @title School Portal API
// @version 0.1.0
// @description Multi-school portal administration and survey service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	kv, err := openStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open storage backend", "driver", cfg.Storage.Driver, "error", err)
	}

	archive, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}

	validate := validator.New()

	metricsSvc := service.NewMetricsService()
	kv = kvstore.NewInstrumented(kv, metricsSvc.ObserveStoreOperation)

	tenants := store.NewTenantStore(kv)
	credentials := store.NewCredentialStore(kv)
	content := store.NewContentStore(kv, cfg.Seed.DemoData)
	sessions := store.NewSessionStore(kv)

	authSvc := service.NewAuthService(tenants, credentials, sessions, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	tenantSvc := service.NewTenantService(tenants, content, validate, logr)
	userSvc := service.NewUserService(credentials, tenants, validate, logr)
	surveySvc := service.NewSurveyService(content, tenants, validate, logr)
	fileSvc := service.NewFileService(content, tenants, validate, logr)
	dataSvc := service.NewDataService(content, tenants, kv, logr)
	exportSvc := service.NewExportService(surveySvc, archive, logr)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, metricsSvc),
		Tenant:  handler.NewTenantHandler(tenantSvc),
		User:    handler.NewUserHandler(userSvc),
		Survey:  handler.NewSurveyHandler(surveySvc, exportSvc, metricsSvc),
		File:    handler.NewFileHandler(fileSvc),
		Data:    handler.NewDataHandler(dataSvc),
		Metrics: handler.NewMetricsHandler(metricsSvc),
	}

	r := router.New(cfg, logr, authSvc, metricsSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return kvstore.NewMemory(), nil
	case config.StorageDriverFile:
		return kvstore.NewFile(cfg.Storage.FilePath)
	case config.StorageDriverRedis:
		return kvstore.NewRedis(cfg.Redis)
	case config.StorageDriverPostgres:
		return kvstore.OpenPostgres(cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
