package tracker

import (
	"sync"
	"sync/atomic"
)

// Tracker tracks usage statistics per provider.
type Tracker struct {
	mu    sync.RWMutex
	stats map[string]*ProviderStats
}

// ProviderStats holds metrics for a specific provider.
// Fields are accessed atomically.
type ProviderStats struct {
	Attempts  int64
	Successes int64
	Failures  int64
}

// New creates a new Tracker.
func New() *Tracker {
	return &Tracker{
		stats: make(map[string]*ProviderStats),
	}
}

// getStats returns the stats object for a provider, creating it if needed.
func (t *Tracker) getStats(provider string) *ProviderStats {
	t.mu.RLock()
	s, ok := t.stats[provider]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Double check
	if s, ok = t.stats[provider]; ok {
		return s
	}
	s = &ProviderStats{}
	t.stats[provider] = s
	return s
}

// ObserveAttempt records one provider attempt. A nil error counts as a
// success, anything else as a failure. This satisfies the resolver
// observer interfaces.
func (t *Tracker) ObserveAttempt(provider string, err error) {
	s := t.getStats(provider)
	atomic.AddInt64(&s.Attempts, 1)
	if err == nil {
		atomic.AddInt64(&s.Successes, 1)
	} else {
		atomic.AddInt64(&s.Failures, 1)
	}
}

// Snapshot returns a copy of the current stats.
func (t *Tracker) Snapshot() map[string]ProviderStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]ProviderStats)
	for k, v := range t.stats {
		result[k] = ProviderStats{
			Attempts:  atomic.LoadInt64(&v.Attempts),
			Successes: atomic.LoadInt64(&v.Successes),
			Failures:  atomic.LoadInt64(&v.Failures),
		}
	}
	return result
}
