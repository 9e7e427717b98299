package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "identical vectors",
			a:        []float32{1, 2, 3},
			b:        []float32{1, 2, 3},
			expected: 1,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0},
			b:        []float32{0, 1},
			expected: 0,
		},
		{
			name:     "opposite vectors",
			a:        []float32{1, 0},
			b:        []float32{-1, 0},
			expected: -1,
		},
		{
			name:     "zero vector left",
			a:        []float32{0, 0, 0},
			b:        []float32{1, 2, 3},
			expected: 0,
		},
		{
			name:     "zero vector right",
			a:        []float32{1, 2, 3},
			b:        []float32{0, 0, 0},
			expected: 0,
		},
		{
			name:     "length mismatch",
			a:        []float32{1, 2},
			b:        []float32{1, 2, 3},
			expected: 0,
		},
		{
			name:     "empty vectors",
			a:        []float32{},
			b:        []float32{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilaritySymmetry(t *testing.T) {
	a := []float32{0.3, -1.2, 4.5, 0.01}
	b := []float32{2.2, 0.9, -0.4, 1.7}

	assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
}

func TestFindTopSimilar(t *testing.T) {
	query := []float32{1, 0}
	pool := []Entry{
		{Content: "exact", Embedding: []float32{1, 0}},
		{Content: "close", Embedding: []float32{1, 0.2}},
		{Content: "orthogonal", Embedding: []float32{0, 1}},
		{Content: "far", Embedding: []float32{-1, 0}},
	}

	results := FindTopSimilar(query, pool, 0.4, 5)

	assert.Len(t, results, 2)
	assert.Equal(t, "exact", results[0].Content)
	assert.Equal(t, "close", results[1].Content)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Similarity, 0.4)
	}
}

func TestFindTopSimilarOrderingAndCap(t *testing.T) {
	query := []float32{1, 0}
	pool := []Entry{
		{Content: "a", Embedding: []float32{1, 1}},
		{Content: "b", Embedding: []float32{1, 0.5}},
		{Content: "c", Embedding: []float32{1, 0.1}},
		{Content: "d", Embedding: []float32{1, 0.01}},
	}

	results := FindTopSimilar(query, pool, 0, 3)

	assert.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
	// Highest similarity first
	assert.Equal(t, "d", results[0].Content)
}

func TestFindTopSimilarStableTies(t *testing.T) {
	query := []float32{1, 0}
	pool := []Entry{
		{Content: "first", Embedding: []float32{2, 0}},
		{Content: "second", Embedding: []float32{3, 0}},
		{Content: "third", Embedding: []float32{0.5, 0}},
	}

	// All three have similarity 1; declaration order must survive the sort.
	results := FindTopSimilar(query, pool, 0.9, 5)

	assert.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Content)
	assert.Equal(t, "second", results[1].Content)
	assert.Equal(t, "third", results[2].Content)
}

func TestFindTopSimilarEmptyPool(t *testing.T) {
	results := FindTopSimilar([]float32{1, 0}, nil, 0.4, 5)
	assert.Empty(t, results)
}

func TestNormalize(t *testing.T) {
	normalized := Normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(normalized[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(normalized[1]), 1e-6)

	zero := Normalize([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}
