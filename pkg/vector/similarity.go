package vector

import (
	"math"
	"sort"
)

// SearchResult is one ranked candidate from a similarity scan.
type SearchResult struct {
	Content    string
	Similarity float64
}

// Entry pairs a piece of content with its embedding for ranking.
type Entry struct {
	Content   string
	Embedding []float32
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|).
// Length mismatch or a zero-magnitude vector yields 0, never a panic.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// FindTopSimilar scores every pool entry against the query embedding,
// drops entries below threshold, and returns at most topK results in
// descending similarity order. Ties keep original pool order.
func FindTopSimilar(query []float32, pool []Entry, threshold float64, topK int) []SearchResult {
	results := make([]SearchResult, 0, len(pool))
	for _, entry := range pool {
		sim := CosineSimilarity(query, entry.Embedding)
		if sim < threshold {
			continue
		}
		results = append(results, SearchResult{
			Content:    entry.Content,
			Similarity: sim,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Normalize returns a unit-length copy of the vector. A zero vector is
// returned unchanged.
func Normalize(v []float32) []float32 {
	var mag float64
	for _, val := range v {
		mag += float64(val) * float64(val)
	}
	mag = math.Sqrt(mag)
	if mag == 0 {
		return v
	}

	out := make([]float32, len(v))
	for i, val := range v {
		out[i] = float32(float64(val) / mag)
	}
	return out
}
