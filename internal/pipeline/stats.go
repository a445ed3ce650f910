package pipeline

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
}

// window keeps latency samples no older than maxAge. Callers hold the
// AnalysisStats lock.
type window struct {
	samples []sample
	maxAge  time.Duration
}

func (w *window) add(now time.Time, durationMs int64) {
	w.prune(now)
	w.samples = append(w.samples, sample{timestamp: now, durationMs: durationMs})
}

func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.maxAge)
	writeIdx := 0
	for _, sm := range w.samples {
		if !sm.timestamp.Before(cutoff) {
			w.samples[writeIdx] = sm
			writeIdx++
		}
	}
	w.samples = w.samples[:writeIdx]
}

func (w *window) aggregate(now time.Time) Aggregate {
	w.prune(now)
	if len(w.samples) == 0 {
		return Aggregate{}
	}

	values := make([]int64, 0, len(w.samples))
	var sum int64
	for _, sm := range w.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return Aggregate{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

// Aggregate summarizes one latency series.
type Aggregate struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// StatsSnapshot is a point-in-time aggregate of end-to-end job latencies
// with a per-phase breakdown.
type StatsSnapshot struct {
	Aggregate
	Phases map[string]Aggregate `json:"phases,omitempty"`
}

// AnalysisStats tracks recent job latencies within a rolling window, both
// end to end and per pipeline phase.
type AnalysisStats struct {
	mu     sync.Mutex
	maxAge time.Duration
	total  window
	phases map[string]*window
}

func NewAnalysisStats(maxAge time.Duration) *AnalysisStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &AnalysisStats{
		maxAge: maxAge,
		total:  window{samples: make([]sample, 0, 256), maxAge: maxAge},
		phases: make(map[string]*window),
	}
}

// Record adds one end-to-end job latency.
func (s *AnalysisStats) Record(durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.total.add(now, durationMs)
}

// RecordPhase adds one latency sample for a single pipeline phase.
func (s *AnalysisStats) RecordPhase(phase string, durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.phases[phase]
	if !ok {
		w = &window{maxAge: s.maxAge}
		s.phases[phase] = w
	}
	w.add(now, durationMs)
}

func (s *AnalysisStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := StatsSnapshot{Aggregate: s.total.aggregate(now)}
	for name, w := range s.phases {
		agg := w.aggregate(now)
		if agg.Count == 0 {
			continue
		}
		if snap.Phases == nil {
			snap.Phases = make(map[string]Aggregate)
		}
		snap.Phases[name] = agg
	}
	return snap
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
