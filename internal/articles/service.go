// Package articles implements the article lifecycle operations: generation
// through the text-generation collaborator plus CRUD over whichever storage
// backend is live.
package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/Asamis999/seo-article-generator/internal/llm"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/models"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

// ErrInvalidBrief indicates a brief missing required fields.
var ErrInvalidBrief = errors.New("title, target keywords, and target audience are required")

// Service coordinates generation and persistence of article records.
type Service struct {
	stores    *storage.Selector
	generator llm.Generator
	model     string
	logger    logger.Logger
}

// NewService wires the article service.
func NewService(stores *storage.Selector, generator llm.Generator, model string, log logger.Logger) *Service {
	return &Service{
		stores:    stores,
		generator: generator,
		model:     model,
		logger:    log,
	}
}

// Generate validates the brief, drafts an article through the collaborator,
// and persists the new record via the live backend. Generation failures are
// not retried.
func (s *Service) Generate(ctx context.Context, brief models.ArticleBrief) (*models.Article, error) {
	if brief.Title == "" || len(brief.TargetKeywords) == 0 || brief.TargetAudience == "" {
		return nil, ErrInvalidBrief
	}

	content, err := s.generator.Generate(ctx, llm.GenerationRequest{
		Model:        s.model,
		SystemPrompt: generationSystemPrompt,
		UserPrompt:   buildGenerationPrompt(brief),
	})
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	article := models.NewArticle(brief, models.GeneratedArticle{
		Title:    brief.Title,
		Content:  content,
		Metadata: map[string]any{},
	})

	store := s.stores.Live(ctx)
	if err := store.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	s.logger.Info("Article generated",
		logger.String("article_id", article.ID),
		logger.String("backend", string(store.Backend())),
		logger.String("title", article.Title),
	)

	return article, nil
}

// Get loads a record by ID from the live backend.
func (s *Service) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.stores.Live(ctx).GetByID(ctx, storage.NormalizeID(id))
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]models.Article, error) {
	return s.stores.Live(ctx).List(ctx)
}

// Update merges the partial fields over the record and returns the result.
func (s *Service) Update(ctx context.Context, id string, fields models.UpdateFields) (*models.Article, error) {
	return s.stores.Live(ctx).Update(ctx, storage.NormalizeID(id), fields)
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.stores.Live(ctx).Delete(ctx, storage.NormalizeID(id))
	if err == nil {
		s.logger.Info("Article deleted", logger.String("article_id", id))
	}
	return err
}
