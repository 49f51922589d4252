// Package handlers contains the gin HTTP handlers for the article and SEO
// endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Asamis999/seo-article-generator/internal/articles"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/models"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

// ArticleHandler serves the article CRUD and generation endpoints.
type ArticleHandler struct {
	svc    *articles.Service
	logger logger.Logger
}

// NewArticleHandler creates the handler.
func NewArticleHandler(svc *articles.Service, log logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		svc:    svc,
		logger: log,
	}
}

// Generate handles POST /articles/generate.
func (h *ArticleHandler) Generate(c *gin.Context) {
	var brief models.ArticleBrief
	if err := c.ShouldBindJSON(&brief); err != nil {
		h.logger.Debug("Invalid generation request", logger.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body", err))
		return
	}

	article, err := h.svc.Generate(c.Request.Context(), brief)
	if errors.Is(err, articles.ErrInvalidBrief) {
		c.JSON(http.StatusBadRequest, errorResponse("Title, target keywords, and target audience are required", nil))
		return
	}
	if err != nil {
		h.logger.Error("Article generation failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Article generation failed", err))
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{
		"articleId":        article.ID,
		"generatedArticle": article.GeneratedArticle,
	}))
}

// GetByID handles GET /articles/:id.
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	article, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("No article found for the given ID", nil))
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch article", logger.String("article_id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch article", err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"article": article}))
}

// List handles GET /articles.
func (h *ArticleHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list articles", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list articles", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(list),
		"data":    gin.H{"articles": list},
	})
}

// Update handles PUT /articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var fields models.UpdateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.logger.Debug("Invalid update request", logger.String("article_id", id), logger.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body", err))
		return
	}

	article, err := h.svc.Update(c.Request.Context(), id, fields)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("No article found for the given ID", nil))
		return
	}
	if err != nil {
		h.logger.Error("Failed to update article", logger.String("article_id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update article", err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"article": article}))
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("No article found for the given ID", nil))
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete article", logger.String("article_id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to delete article", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted",
	})
}
