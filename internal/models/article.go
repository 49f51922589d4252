// Package models defines the article record and its request/update shapes.
package models

import "time"

// ArticleType selects the structural outline used when drafting an article.
type ArticleType string

const (
	TypeStandard ArticleType = "standard"
	TypePillar   ArticleType = "pillar"
	TypeCluster  ArticleType = "cluster"
	TypeColumn   ArticleType = "column"
	TypeLanding  ArticleType = "lp"
	TypeQA       ArticleType = "qa"
)

// DefaultWordCount is the target length used when a brief does not specify one.
const DefaultWordCount = 1500

// GeneratedArticle is the drafted content attached to an article record.
// Metadata is open-ended; the meta-generation operation fills metaTitle and
// metaDescription into it.
type GeneratedArticle struct {
	Title    string         `bson:"title"    json:"title"`
	Content  string         `bson:"content"  json:"content"`
	Metadata map[string]any `bson:"metadata" json:"metadata"`
}

// Article is the persisted unit representing one generated article.
//
// ID is always a string at this layer: a decimal counter value for records
// held in the in-process store, a hex ObjectID for records held in Mongo.
// It is assigned by the store at creation and never changes.
type Article struct {
	ID                 string           `bson:"-"                  json:"id"`
	Title              string           `bson:"title"              json:"title"`
	TargetKeywords     []string         `bson:"targetKeywords"     json:"targetKeywords"`
	TargetAudience     string           `bson:"targetAudience"     json:"targetAudience"`
	UserCases          []string         `bson:"userCases"          json:"userCases"`
	AdditionalData     map[string]any   `bson:"additionalData"     json:"additionalData"`
	GeneratedArticle   GeneratedArticle `bson:"generatedArticle"   json:"generatedArticle"`
	SEOScore           int              `bson:"seoScore"           json:"seoScore"`
	SEORecommendations []string         `bson:"seoRecommendations" json:"seoRecommendations"`
	CreatedAt          time.Time        `bson:"createdAt"          json:"createdAt"`
	UpdatedAt          time.Time        `bson:"updatedAt"          json:"updatedAt"`
}

// ArticleBrief is the validated input to article generation.
type ArticleBrief struct {
	Title          string         `json:"title"`
	TargetKeywords []string       `json:"targetKeywords"`
	TargetAudience string         `json:"targetAudience"`
	UserCases      []string       `json:"userCases"`
	AdditionalData map[string]any `json:"additionalData"`
	ArticleType    ArticleType    `json:"articleType"`
	WordCount      int            `json:"wordCount"`
}

// NewArticle builds an unsaved record from a brief and its generated draft.
// SEO fields start zeroed; they are only set by the SEO check operation.
func NewArticle(brief ArticleBrief, generated GeneratedArticle) *Article {
	userCases := brief.UserCases
	if userCases == nil {
		userCases = []string{}
	}
	additional := brief.AdditionalData
	if additional == nil {
		additional = map[string]any{}
	}
	if generated.Metadata == nil {
		generated.Metadata = map[string]any{}
	}

	return &Article{
		Title:              brief.Title,
		TargetKeywords:     brief.TargetKeywords,
		TargetAudience:     brief.TargetAudience,
		UserCases:          userCases,
		AdditionalData:     additional,
		GeneratedArticle:   generated,
		SEOScore:           0,
		SEORecommendations: []string{},
	}
}

// UpdateFields carries a partial update. Nil fields are left untouched; the
// store refreshes updatedAt on every applied update. Identity and brief fields
// are immutable after creation and deliberately absent here.
type UpdateFields struct {
	GeneratedArticle   *GeneratedArticle `json:"generatedArticle"`
	SEOScore           *int              `json:"seoScore"`
	SEORecommendations *[]string         `json:"seoRecommendations"`
}

// Apply merges the set fields over the article and returns whether anything
// changed.
func (u UpdateFields) Apply(a *Article) bool {
	changed := false
	if u.GeneratedArticle != nil {
		a.GeneratedArticle = *u.GeneratedArticle
		if a.GeneratedArticle.Metadata == nil {
			a.GeneratedArticle.Metadata = map[string]any{}
		}
		changed = true
	}
	if u.SEOScore != nil {
		a.SEOScore = *u.SEOScore
		changed = true
	}
	if u.SEORecommendations != nil {
		a.SEORecommendations = *u.SEORecommendations
		changed = true
	}
	return changed
}
