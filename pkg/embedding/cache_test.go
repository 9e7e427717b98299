package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	calls int
	fail  bool
}

func (s *stubProvider) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.fail {
		return nil, ErrNoEmbedding
	}
	return []float32{float32(len(text)), float32(s.calls)}, nil
}

func TestCacheHitSkipsProvider(t *testing.T) {
	provider := &stubProvider{}
	cache := NewCache(provider)

	first, err := cache.GetOrCreate(context.Background(), "hello", false)
	assert.NoError(t, err)

	second, err := cache.GetOrCreate(context.Background(), "hello", false)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, cache.Size())
}

func TestCacheForceNewBypassesReadAndWrite(t *testing.T) {
	provider := &stubProvider{}
	cache := NewCache(provider)

	_, err := cache.GetOrCreate(context.Background(), "answer text", true)
	assert.NoError(t, err)
	assert.Equal(t, 0, cache.Size())

	// A forced call never reads a prior entry either.
	_, err = cache.GetOrCreate(context.Background(), "answer text", true)
	assert.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
	assert.Equal(t, 0, cache.Size())
}

func TestCachePropagatesProviderFailure(t *testing.T) {
	provider := &stubProvider{fail: true}
	cache := NewCache(provider)

	_, err := cache.GetOrCreate(context.Background(), "anything", false)
	assert.True(t, errors.Is(err, ErrNoEmbedding))
	assert.Equal(t, 0, cache.Size())
}
