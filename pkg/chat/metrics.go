package chat

import (
	"math"
	"sync"
)

// Metrics holds per-engine runtime counters. All counters are
// monotonically non-decreasing for the engine's lifetime and protected
// by a mutex so engines are safe under a multi-threaded runtime.
type Metrics struct {
	mu           sync.Mutex
	total        int
	scopeBlocked int
	reused       int
	adapted      int
	generated    int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
}

func (m *Metrics) IncScopeBlocked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scopeBlocked++
}

func (m *Metrics) IncReused() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reused++
}

func (m *Metrics) IncAdapted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adapted++
}

func (m *Metrics) IncGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated++
}

type ModeStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type Distribution struct {
	Reused    ModeStat `json:"reused"`
	Adapted   ModeStat `json:"adapted"`
	Generated ModeStat `json:"generated"`
}

type Thresholds struct {
	Reuse float64 `json:"reuse"`
	Adapt float64 `json:"adapt"`
}

// Stats is a read-only snapshot of the engine counters.
type Stats struct {
	Total        int          `json:"total"`
	ScopeBlocked int          `json:"scopeBlocked"`
	Answered     int          `json:"answered"`
	Distribution Distribution `json:"distribution"`
	CacheSize    int          `json:"cacheSize"`
	Thresholds   Thresholds   `json:"thresholds"`
}

// Snapshot computes the current stats. Percentages are relative to
// answered questions (total minus scope-blocked), rounded to one decimal.
func (m *Metrics) Snapshot(cacheSize int, thresholds Thresholds) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	answered := m.total - m.scopeBlocked
	pct := func(n int) float64 {
		if answered <= 0 {
			return 0
		}
		return math.Round(1000*float64(n)/float64(answered)) / 10
	}

	return Stats{
		Total:        m.total,
		ScopeBlocked: m.scopeBlocked,
		Answered:     answered,
		Distribution: Distribution{
			Reused:    ModeStat{Count: m.reused, Percent: pct(m.reused)},
			Adapted:   ModeStat{Count: m.adapted, Percent: pct(m.adapted)},
			Generated: ModeStat{Count: m.generated, Percent: pct(m.generated)},
		},
		CacheSize:  cacheSize,
		Thresholds: thresholds,
	}
}
