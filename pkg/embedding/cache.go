package embedding

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes provider calls keyed by the exact input text. A hit is
// always bit-identical to a fresh provider call for that text.
type Cache struct {
	provider EmbeddingProvider
	store    *gocache.Cache
}

func NewCache(provider EmbeddingProvider) *Cache {
	return &Cache{
		provider: provider,
		store:    gocache.New(gocache.NoExpiration, 0),
	}
}

// GetOrCreate returns the embedding for text, consulting the cache first.
// With forceNew the cache is bypassed entirely: no read and no write. The
// engine uses this for just-generated answer text, which will not recur
// verbatim as a question.
func (c *Cache) GetOrCreate(ctx context.Context, text string, forceNew bool) ([]float32, error) {
	if !forceNew {
		if cached, found := c.store.Get(text); found {
			return cached.([]float32), nil
		}
	}

	emb, err := c.provider.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}

	if !forceNew {
		c.store.Set(text, emb, gocache.NoExpiration)
	}
	return emb, nil
}

// Size reports the number of cached entries.
func (c *Cache) Size() int {
	return c.store.ItemCount()
}
