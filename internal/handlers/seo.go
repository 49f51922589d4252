package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/seo"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

// SEOHandler serves the SEO check and meta-generation endpoints.
type SEOHandler struct {
	svc    *seo.Service
	logger logger.Logger
}

// NewSEOHandler creates the handler.
func NewSEOHandler(svc *seo.Service, log logger.Logger) *SEOHandler {
	return &SEOHandler{
		svc:    svc,
		logger: log,
	}
}

// Check handles GET /seo/check/:articleId.
func (h *SEOHandler) Check(c *gin.Context) {
	articleID := c.Param("articleId")

	result, err := h.svc.Check(c.Request.Context(), articleID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("No article found for the given ID", nil))
		return
	}
	if err != nil {
		h.logger.Error("SEO check failed", logger.String("article_id", articleID), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("SEO check failed", err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"seoScore":        result.Score,
		"recommendations": result.Recommendations,
	}))
}

// GenerateMeta handles GET /seo/generate-meta/:articleId.
func (h *SEOHandler) GenerateMeta(c *gin.Context) {
	articleID := c.Param("articleId")

	meta, err := h.svc.GenerateMeta(c.Request.Context(), articleID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("No article found for the given ID", nil))
		return
	}
	if err != nil {
		h.logger.Error("Meta generation failed", logger.String("article_id", articleID), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Meta generation failed", err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"metaTitle":       meta.Title,
		"metaDescription": meta.Description,
	}))
}
