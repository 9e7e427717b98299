package chat

import "time"

// Config carries the answer resolution policy. The bands are tunable
// policy constants: reuse means "same question", adapt means "related
// enough to ground a response without copying verbatim".
type Config struct {
	ReuseThreshold     float64
	AdaptThreshold     float64
	RetrievalThreshold float64
	TopK               int
	GenerateTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		ReuseThreshold:     0.9,
		AdaptThreshold:     0.65,
		RetrievalThreshold: 0.4,
		TopK:               5,
		GenerateTimeout:    10 * time.Second,
	}
}
