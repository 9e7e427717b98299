package chat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshotDistribution(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 10; i++ {
		m.IncTotal()
	}
	m.IncScopeBlocked()
	m.IncScopeBlocked()
	for i := 0; i < 4; i++ {
		m.IncReused()
	}
	for i := 0; i < 3; i++ {
		m.IncAdapted()
	}
	m.IncGenerated()

	stats := m.Snapshot(7, Thresholds{Reuse: 0.9, Adapt: 0.65})

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 2, stats.ScopeBlocked)
	assert.Equal(t, 8, stats.Answered)
	assert.Equal(t, 4, stats.Distribution.Reused.Count)
	assert.Equal(t, 50.0, stats.Distribution.Reused.Percent)
	assert.Equal(t, 37.5, stats.Distribution.Adapted.Percent)
	assert.Equal(t, 12.5, stats.Distribution.Generated.Percent)
	assert.Equal(t, 7, stats.CacheSize)
	assert.Equal(t, 0.9, stats.Thresholds.Reuse)
}

func TestMetricsSnapshotZeroAnswered(t *testing.T) {
	m := NewMetrics()
	m.IncTotal()
	m.IncScopeBlocked()

	stats := m.Snapshot(0, Thresholds{})

	assert.Equal(t, 0, stats.Answered)
	assert.Equal(t, 0.0, stats.Distribution.Reused.Percent)
	assert.Equal(t, 0.0, stats.Distribution.Adapted.Percent)
	assert.Equal(t, 0.0, stats.Distribution.Generated.Percent)
}

func TestMetricsPercentRounding(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 3; i++ {
		m.IncTotal()
	}
	m.IncReused()

	stats := m.Snapshot(0, Thresholds{})

	// 1 of 3 answered = 33.333... -> 33.3
	assert.Equal(t, 33.3, stats.Distribution.Reused.Percent)
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncTotal()
			m.IncReused()
		}()
	}
	wg.Wait()

	stats := m.Snapshot(0, Thresholds{})
	assert.Equal(t, 50, stats.Total)
	assert.Equal(t, 50, stats.Distribution.Reused.Count)
}
