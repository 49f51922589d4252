package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asamis999/seo-article-generator/internal/logger"
)

func TestSelector_NoMongoConfigured(t *testing.T) {
	memory := NewMemoryStore()
	selector := NewSelector(nil, memory, logger.NewNop())

	live := selector.Live(context.Background())
	assert.Equal(t, BackendMemory, live.Backend())
	assert.Equal(t, BackendMemory, selector.LiveBackend(context.Background()))
}

func TestSelector_UnreachableMongoFallsBack(t *testing.T) {
	// Nothing listens on this port; the probe must fail and fall back
	// instead of erroring.
	mongo, err := Connect("mongodb://127.0.0.1:1", "test", 100*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongo.Close(context.Background()) })

	selector := NewSelector(mongo, NewMemoryStore(), logger.NewNop())

	live := selector.Live(context.Background())
	assert.Equal(t, BackendMemory, live.Backend())
}

func TestSelector_ProbedFreshEachCall(t *testing.T) {
	selector := NewSelector(nil, NewMemoryStore(), logger.NewNop())

	// Two consecutive calls must both evaluate connectivity; with no mongo
	// both land on the in-process store.
	first := selector.Live(context.Background())
	second := selector.Live(context.Background())
	assert.Equal(t, BackendMemory, first.Backend())
	assert.Equal(t, BackendMemory, second.Backend())
}
