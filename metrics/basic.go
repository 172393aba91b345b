package metrics

import (
	"sync"
	"sync/atomic"
)

// BasicProvider keeps instruments in memory and exposes their values through Snapshot.
// It is meant for tests, examples and programs without a metrics backend.
type BasicProvider struct {
	counters   instrumentSet[*BasicCounter]
	updowns    instrumentSet[*BasicUpDownCounter]
	histograms instrumentSet[*BasicHistogram]

	metaMu sync.Mutex
	meta   map[string]InstrumentConfig
}

// NewBasicProvider constructs an empty BasicProvider.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{meta: make(map[string]InstrumentConfig)}
}

// Counter returns the *BasicCounter for name, creating it on first use.
func (p *BasicProvider) Counter(name string, opts ...InstrumentOption) Counter {
	return p.counters.get(name, func() *BasicCounter {
		p.remember(name, opts)
		return &BasicCounter{}
	})
}

// UpDownCounter returns the *BasicUpDownCounter for name, creating it on first use.
func (p *BasicProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	return p.updowns.get(name, func() *BasicUpDownCounter {
		p.remember(name, opts)
		return &BasicUpDownCounter{}
	})
}

// Histogram returns the *BasicHistogram for name, creating it on first use.
func (p *BasicProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	return p.histograms.get(name, func() *BasicHistogram {
		p.remember(name, opts)
		return &BasicHistogram{}
	})
}

// Config returns the options an instrument was first created with.
func (p *BasicProvider) Config(name string) (InstrumentConfig, bool) {
	p.metaMu.Lock()
	defer p.metaMu.Unlock()
	cfg, ok := p.meta[name]
	return cfg, ok
}

func (p *BasicProvider) remember(name string, opts []InstrumentOption) {
	cfg := applyOptions(opts)
	p.metaMu.Lock()
	if p.meta == nil {
		p.meta = make(map[string]InstrumentConfig)
	}
	p.meta[name] = cfg
	p.metaMu.Unlock()
}

// instrumentSet creates each named instrument once.
type instrumentSet[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func (s *instrumentSet[T]) get(name string, create func() T) T {
	s.mu.RLock()
	it, ok := s.items[name]
	s.mu.RUnlock()
	if ok {
		return it
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok = s.items[name]; ok {
		return it
	}
	if s.items == nil {
		s.items = make(map[string]T)
	}
	it = create()
	s.items[name] = it
	return it
}

// BasicCounter is a concurrency-safe monotonic counter.
type BasicCounter struct {
	val atomic.Int64
}

// Add increments the counter by n.
func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Snapshot returns the current value.
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicUpDownCounter is a concurrency-safe counter that may go negative.
type BasicUpDownCounter struct {
	val atomic.Int64
}

// Add adds n, which may be negative.
func (u *BasicUpDownCounter) Add(n int64) { u.val.Add(n) }

// Snapshot returns the current value.
func (u *BasicUpDownCounter) Snapshot() int64 { return u.val.Load() }

// BasicHistogram aggregates count, sum, min and max. It keeps no buckets.
type BasicHistogram struct {
	mu   sync.Mutex
	snap HistSnapshot
}

// HistSnapshot is a point-in-time copy of a BasicHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Record adds a measurement.
func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &h.snap
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
}

// Snapshot returns a copy of the current aggregates.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	s := h.snap
	h.mu.Unlock()
	if s.Count > 0 {
		s.Mean = s.Sum / float64(s.Count)
	}
	return s
}
