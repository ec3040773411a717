package main

import (
	"net/http"

	"vitrine-be/internal/catalog"
	"vitrine-be/internal/config"
	"vitrine-be/internal/httpapi"
	"vitrine-be/internal/logger"
	"vitrine-be/internal/middleware"
	"vitrine-be/internal/session"
	"vitrine-be/internal/shipping"

	"go.uber.org/zap"
)

// startServerFunc is swappable in tests.
var startServerFunc = http.ListenAndServe

func buildCatalogRepository(cfg *config.Config) (catalog.Repository, error) {
	if cfg.CatalogPath != "" {
		return catalog.NewRepositoryFromFile(cfg.CatalogPath)
	}
	return catalog.NewRepository(), nil
}

func newServer(cfg *config.Config) (http.Handler, error) {
	repo, err := buildCatalogRepository(cfg)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		catalog.NewService(repo),
		session.NewManager(cfg.SessionTTL),
		shipping.NewMockEstimator(cfg.ShippingDelay),
	)

	router := handler.Router()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	var h http.Handler = router
	h = middleware.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	h = middleware.RateLimitMiddleware(h)

	return h, nil
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	handler, err := newServer(cfg)
	if err != nil {
		return err
	}

	logger.L().Info("🚀 storefront server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
