// Package api builds the gin router and HTTP server for the service.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Asamis999/seo-article-generator/internal/handlers"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/metrics"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

const corsMaxAge = 12 * time.Hour

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	ArticleHandler *handlers.ArticleHandler
	SEOHandler     *handlers.SEOHandler
	Stores         *storage.Selector
	Metrics        *metrics.Metrics
	ServiceName    string
	Version        string
	CORSOrigins    []string
	Debug          bool
	Logger         logger.Logger
}

// NewRouter assembles middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(recoveryMiddleware(cfg.Logger))
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(cfg.Logger))
	router.Use(cfg.Metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))

	router.GET("/health", healthHandler(cfg.ServiceName, cfg.Version, cfg.Stores))
	router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	v1 := router.Group("/api/v1")

	articles := v1.Group("/articles")
	articles.POST("/generate", cfg.ArticleHandler.Generate)
	articles.GET("", cfg.ArticleHandler.List)
	articles.GET("/:id", cfg.ArticleHandler.GetByID)
	articles.PUT("/:id", cfg.ArticleHandler.Update)
	articles.DELETE("/:id", cfg.ArticleHandler.Delete)

	seo := v1.Group("/seo")
	seo.GET("/check/:articleId", cfg.SEOHandler.Check)
	seo.GET("/generate-meta/:articleId", cfg.SEOHandler.GenerateMeta)

	return router
}

// healthHandler reports service status plus which storage backend is live.
// Running on the in-process fallback is degraded, not unhealthy: the write
// path still works.
func healthHandler(serviceName, version string, stores *storage.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := stores.LiveBackend(c.Request.Context())

		status := "healthy"
		storageStatus := "healthy"
		message := "durable store reachable"
		if backend == storage.BackendMemory {
			status = "degraded"
			storageStatus = "degraded"
			message = "durable store unreachable, records held in process"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"service": serviceName,
			"version": version,
			"checks": gin.H{
				"storage": gin.H{
					"status":  storageStatus,
					"backend": backend,
					"message": message,
				},
			},
		})
	}
}
