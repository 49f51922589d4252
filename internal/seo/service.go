// Package seo implements the SEO follow-up operations: scoring an existing
// article and generating meta tags for it, both through the text-generation
// collaborator.
package seo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Asamis999/seo-article-generator/internal/llm"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/models"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

const (
	checkSystemPrompt = "You are an SEO analysis expert."
	metaSystemPrompt  = "You are an expert at writing SEO-optimized meta tags."

	contentExcerptLen = 1000
	metaDescMaxLen    = 160
)

// CheckResult is the outcome of one SEO analysis.
type CheckResult struct {
	Score           int      `json:"seoScore"`
	Recommendations []string `json:"recommendations"`
}

// MetaTags is the outcome of one meta-generation run.
type MetaTags struct {
	Title       string `json:"metaTitle"`
	Description string `json:"metaDescription"`
}

// Service runs SEO analysis over stored articles.
type Service struct {
	stores    *storage.Selector
	generator llm.Generator
	model     string
	logger    logger.Logger
}

// NewService wires the SEO service.
func NewService(stores *storage.Selector, generator llm.Generator, model string, log logger.Logger) *Service {
	return &Service{
		stores:    stores,
		generator: generator,
		model:     model,
		logger:    log,
	}
}

// Check analyzes the article's content against its target keywords, parses
// the score and recommendations out of the response, and persists them on the
// record via the live backend.
func (s *Service) Check(ctx context.Context, articleID string) (*CheckResult, error) {
	store := s.stores.Live(ctx)

	article, err := store.GetByID(ctx, storage.NormalizeID(articleID))
	if err != nil {
		return nil, err
	}

	analysis, err := s.generator.Generate(ctx, llm.GenerationRequest{
		Model:        s.model,
		SystemPrompt: checkSystemPrompt,
		UserPrompt:   buildCheckPrompt(article),
	})
	if err != nil {
		return nil, fmt.Errorf("seo analysis: %w", err)
	}

	result := &CheckResult{
		Score:           ParseScore(analysis),
		Recommendations: ParseRecommendations(analysis),
	}

	if _, err := store.Update(ctx, article.ID, models.UpdateFields{
		SEOScore:           &result.Score,
		SEORecommendations: &result.Recommendations,
	}); err != nil {
		return nil, fmt.Errorf("store seo result: %w", err)
	}

	s.logger.Info("SEO check completed",
		logger.String("article_id", article.ID),
		logger.Int("seo_score", result.Score),
		logger.Int("recommendations", len(result.Recommendations)),
	)

	return result, nil
}

// GenerateMeta produces a meta title and description for the article and
// merges them into generatedArticle.metadata, preserving other keys.
func (s *Service) GenerateMeta(ctx context.Context, articleID string) (*MetaTags, error) {
	store := s.stores.Live(ctx)

	article, err := store.GetByID(ctx, storage.NormalizeID(articleID))
	if err != nil {
		return nil, err
	}

	response, err := s.generator.Generate(ctx, llm.GenerationRequest{
		Model:        s.model,
		SystemPrompt: metaSystemPrompt,
		UserPrompt:   buildMetaPrompt(article),
	})
	if err != nil {
		return nil, fmt.Errorf("meta generation: %w", err)
	}

	title, description := ParseMetaTags(response)
	if title == "" {
		title = article.GeneratedArticle.Title
	}
	if description == "" {
		description = excerpt(article.GeneratedArticle.Content, metaDescMaxLen)
	}

	merged := article.GeneratedArticle
	metadata := make(map[string]any, len(merged.Metadata)+2)
	for k, v := range merged.Metadata {
		metadata[k] = v
	}
	metadata["metaTitle"] = title
	metadata["metaDescription"] = description
	merged.Metadata = metadata

	if _, err := store.Update(ctx, article.ID, models.UpdateFields{
		GeneratedArticle: &merged,
	}); err != nil {
		return nil, fmt.Errorf("store meta tags: %w", err)
	}

	s.logger.Info("Meta tags generated",
		logger.String("article_id", article.ID),
		logger.String("meta_title", title),
	)

	return &MetaTags{Title: title, Description: description}, nil
}

func buildCheckPrompt(article *models.Article) string {
	var b strings.Builder
	b.WriteString("Run an SEO analysis of the following article and suggest improvements.\n\n")
	b.WriteString("Article content:\n")
	b.WriteString(article.GeneratedArticle.Content)
	b.WriteString("\n\nTarget keywords: ")
	b.WriteString(strings.Join(article.TargetKeywords, ", "))
	b.WriteString("\n\nAnalyze these aspects:\n")
	b.WriteString("1. Keyword density and placement\n")
	b.WriteString("2. Meta title and meta description optimization\n")
	b.WriteString("3. Heading structure (H1, H2, H3) and optimization\n")
	b.WriteString("4. Internal linking suggestions\n")
	b.WriteString("5. Content readability and structure\n\n")
	b.WriteString("Return a 0-100 score and a list of concrete improvement suggestions.")
	return b.String()
}

func buildMetaPrompt(article *models.Article) string {
	var b strings.Builder
	b.WriteString("Generate an SEO-optimized meta title and meta description for this article.\n\n")
	fmt.Fprintf(&b, "Article title: %s\n", article.GeneratedArticle.Title)
	fmt.Fprintf(&b, "Target keywords: %s\n\n", strings.Join(article.TargetKeywords, ", "))
	b.WriteString("Excerpt of the article:\n")
	b.WriteString(excerpt(article.GeneratedArticle.Content, contentExcerptLen))
	b.WriteString("...\n\n")
	b.WriteString("Respond in this format:\n")
	b.WriteString("Meta title: (60 characters or fewer)\n")
	b.WriteString("Meta description: (160 characters or fewer)\n")
	return b.String()
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
