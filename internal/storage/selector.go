package storage

import (
	"context"

	"github.com/Asamis999/seo-article-generator/internal/logger"
)

// Selector routes each operation to whichever backend is live. Connectivity
// is probed fresh on every call rather than cached: Mongo can come and go
// between requests, and a stale answer would strand records on the wrong
// backend. Any probe failure falls back to the in-process store, trading
// durability for an always-available write path.
type Selector struct {
	mongo  *MongoStore
	memory *MemoryStore
	logger logger.Logger
}

// NewSelector creates a selector. mongo may be nil when no durable store is
// configured; every operation then uses the in-process store.
func NewSelector(mongo *MongoStore, memory *MemoryStore, log logger.Logger) *Selector {
	return &Selector{
		mongo:  mongo,
		memory: memory,
		logger: log,
	}
}

// Live returns the authoritative store for one operation.
func (s *Selector) Live(ctx context.Context) Store {
	if s.mongo.Reachable(ctx) {
		return s.mongo
	}

	s.logger.Debug("Durable store unreachable, using in-process store")
	return s.memory
}

// LiveBackend reports which backend Live would return right now.
func (s *Selector) LiveBackend(ctx context.Context) Backend {
	return s.Live(ctx).Backend()
}
