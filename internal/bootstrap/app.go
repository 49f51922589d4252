// Package bootstrap handles application initialization and lifecycle for the
// article generation service.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Asamis999/seo-article-generator/internal/api"
	"github.com/Asamis999/seo-article-generator/internal/articles"
	"github.com/Asamis999/seo-article-generator/internal/config"
	"github.com/Asamis999/seo-article-generator/internal/handlers"
	"github.com/Asamis999/seo-article-generator/internal/llm"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/metrics"
	"github.com/Asamis999/seo-article-generator/internal/seo"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

const (
	serviceName       = "seo-article-generator"
	version           = "dev"
	defaultConfigPath = "config.yml"
	disconnectTimeout = 5 * time.Second
)

// Start initializes and runs the service.
func Start() error {
	cfg, err := config.Load(config.GetConfigPath(defaultConfigPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	stores := setupStorage(cfg, log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if closeErr := stores.mongo.Close(ctx); closeErr != nil {
			log.Error("Failed to close mongo client", logger.Error(closeErr))
		}
	}()

	generator := llm.NewClient(cfg.OpenAI.Endpoint, cfg.OpenAI.APIKey)

	articleSvc := articles.NewService(stores.selector, generator, cfg.OpenAI.Model, log)
	seoSvc := seo.NewService(stores.selector, generator, cfg.OpenAI.Model, log)

	router := api.NewRouter(api.RouterConfig{
		ArticleHandler: handlers.NewArticleHandler(articleSvc, log),
		SEOHandler:     handlers.NewSEOHandler(seoSvc, log),
		Stores:         stores.selector,
		Metrics:        metrics.New(),
		ServiceName:    serviceName,
		Version:        version,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Debug:          cfg.Debug,
		Logger:         log,
	})

	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, log)

	log.Info("Service configured",
		logger.String("service", serviceName),
		logger.String("version", version),
		logger.String("model", cfg.OpenAI.Model),
		logger.Int("port", cfg.Server.Port),
	)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}

type storageHandles struct {
	selector *storage.Selector
	mongo    *storage.MongoStore
}

// setupStorage wires the dual-backend persistence layer. A Mongo client that
// cannot be constructed is not fatal: the selector then routes everything to
// the in-process store.
func setupStorage(cfg *config.Config, log logger.Logger) storageHandles {
	memory := storage.NewMemoryStore()

	mongo, err := storage.Connect(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.PingTimeout)
	if err != nil {
		log.Warn("Mongo client unavailable, serving from in-process store",
			logger.Error(err),
		)
		mongo = nil
	}

	return storageHandles{
		selector: storage.NewSelector(mongo, memory, log),
		mongo:    mongo,
	}
}
