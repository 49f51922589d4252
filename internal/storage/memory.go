package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Asamis999/seo-article-generator/internal/models"
)

// MemoryStore is the process-lifetime fallback store. Records live in an
// ordered slice guarded by a mutex; IDs come from an atomic counter that
// starts at 1 and is never reused, even after deletes.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []models.Article
	counter  atomic.Int64
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{articles: []models.Article{}}
}

func (s *MemoryStore) Backend() Backend {
	return BackendMemory
}

func (s *MemoryStore) Create(_ context.Context, article *models.Article) error {
	// The increment must be a single atomic step so concurrent creates can
	// never observe the same counter value.
	id := s.counter.Add(1)
	article.ID = strconv.FormatInt(id, 10)

	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	s.mu.Lock()
	s.articles = append(s.articles, *article)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	article := s.articles[idx]
	return &article, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.Article, error) {
	s.mu.RLock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fields models.UpdateFields) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	article := s.articles[idx]
	fields.Apply(&article)
	article.UpdatedAt = time.Now()
	s.articles[idx] = article

	return &article, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	return nil
}

// indexOf locates a record by ID, tolerating re-encoded forms of the integer
// counter value. Callers must hold the lock.
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.articles {
		if MatchesID(s.articles[i].ID, id) {
			return i
		}
	}
	return -1
}
