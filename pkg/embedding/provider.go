package embedding

import (
	"context"
	"errors"
)

// ErrNoEmbedding is returned when the provider yields no usable vector.
// Callers must treat it as fatal for the current request.
var ErrNoEmbedding = errors.New("embedding provider returned no usable vector")

// EmbeddingProvider converts text into a fixed-dimension vector.
type EmbeddingProvider interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
