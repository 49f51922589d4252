// Package storage provides the dual-backend persistence layer for article
// records: a MongoDB adapter used when the database is reachable and an
// in-process store the service falls back to when it is not. Both expose the
// same logical operations; the Selector decides per call which one is live.
package storage

import (
	"context"
	"errors"

	"github.com/Asamis999/seo-article-generator/internal/models"
)

// ErrNotFound is returned when no record exists for the given ID.
var ErrNotFound = errors.New("article not found")

// Backend identifies which store served an operation.
type Backend string

const (
	BackendMongo  Backend = "mongo"
	BackendMemory Backend = "memory"
)

// Store is the operation set both backends expose over article records.
//
// Create assigns the ID and timestamps on the passed record. Update applies a
// partial merge, refreshes updatedAt, and returns the merged record. List
// returns records newest first. GetByID, Update, and Delete return ErrNotFound
// for unknown IDs.
type Store interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
	Update(ctx context.Context, id string, fields models.UpdateFields) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Backend() Backend
}
