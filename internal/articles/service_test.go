package articles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asamis999/seo-article-generator/internal/articles"
	"github.com/Asamis999/seo-article-generator/internal/llm"
	"github.com/Asamis999/seo-article-generator/internal/logger"
	"github.com/Asamis999/seo-article-generator/internal/models"
	"github.com/Asamis999/seo-article-generator/internal/storage"
)

type stubGenerator struct {
	response string
	err      error
	lastReq  llm.GenerationRequest
	calls    int
}

func (s *stubGenerator) Generate(_ context.Context, req llm.GenerationRequest) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newService(gen llm.Generator) (*articles.Service, *storage.MemoryStore) {
	memory := storage.NewMemoryStore()
	selector := storage.NewSelector(nil, memory, logger.NewNop())
	return articles.NewService(selector, gen, "test-model", logger.NewNop()), memory
}

func validBrief() models.ArticleBrief {
	return models.ArticleBrief{
		Title:          "Why Go",
		TargetKeywords: []string{"go", "backend"},
		TargetAudience: "engineers",
	}
}

func TestService_Generate(t *testing.T) {
	gen := &stubGenerator{response: "Hello"}
	svc, memory := newService(gen)

	article, err := svc.Generate(context.Background(), validBrief())
	require.NoError(t, err)

	assert.NotEmpty(t, article.ID)
	assert.Equal(t, "Why Go", article.Title)
	assert.Equal(t, []string{"go", "backend"}, article.TargetKeywords)
	assert.Equal(t, "engineers", article.TargetAudience)
	assert.Equal(t, "Hello", article.GeneratedArticle.Content)
	assert.Equal(t, "Why Go", article.GeneratedArticle.Title)
	assert.Empty(t, article.GeneratedArticle.Metadata)
	assert.Zero(t, article.SEOScore)
	assert.Empty(t, article.SEORecommendations)
	assert.False(t, article.CreatedAt.IsZero())

	assert.Equal(t, "test-model", gen.lastReq.Model)
	assert.Contains(t, gen.lastReq.UserPrompt, "Title: Why Go")

	stored, err := memory.GetByID(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Title, stored.Title)
}

func TestService_GenerateValidation(t *testing.T) {
	tests := []struct {
		name  string
		brief models.ArticleBrief
	}{
		{name: "missing title", brief: models.ArticleBrief{TargetKeywords: []string{"k"}, TargetAudience: "a"}},
		{name: "missing keywords", brief: models.ArticleBrief{Title: "t", TargetAudience: "a"}},
		{name: "missing audience", brief: models.ArticleBrief{Title: "t", TargetKeywords: []string{"k"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{response: "unused"}
			svc, _ := newService(gen)

			_, err := svc.Generate(context.Background(), tt.brief)
			assert.ErrorIs(t, err, articles.ErrInvalidBrief)
			assert.Zero(t, gen.calls, "collaborator must not be called for invalid briefs")
		})
	}
}

func TestService_GenerateFailureNotStored(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model overloaded")}
	svc, memory := newService(gen)

	_, err := svc.Generate(context.Background(), validBrief())
	require.Error(t, err)
	assert.Equal(t, 1, gen.calls, "no retry on generation failure")

	list, err := memory.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_GetNormalizesID(t *testing.T) {
	svc, memory := newService(&stubGenerator{response: "content"})

	article := models.NewArticle(validBrief(), models.GeneratedArticle{Content: "c"})
	require.NoError(t, memory.Create(context.Background(), article))

	got, err := svc.Get(context.Background(), "  "+article.ID+"  ")
	require.NoError(t, err)
	assert.Equal(t, article.ID, got.ID)
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc, memory := newService(&stubGenerator{response: "content"})
	ctx := context.Background()

	article := models.NewArticle(validBrief(), models.GeneratedArticle{Content: "c"})
	require.NoError(t, memory.Create(ctx, article))

	score := 64
	updated, err := svc.Update(ctx, article.ID, models.UpdateFields{SEOScore: &score})
	require.NoError(t, err)
	assert.Equal(t, 64, updated.SEOScore)

	require.NoError(t, svc.Delete(ctx, article.ID))
	_, err = svc.Get(ctx, article.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
