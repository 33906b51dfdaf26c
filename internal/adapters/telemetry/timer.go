// Package telemetry records named performance timers and aggregates them
// for the diagnostics surface.
package telemetry

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Timer is one named measurement. EndTime and Duration are zero until the
// matching End call arrives.
type Timer struct {
	Name      string            `json:"name"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitzero"`
	Duration  time.Duration     `json:"duration,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Summary aggregates all completed measurements sharing a name.
type Summary struct {
	Name    string        `json:"name"`
	Count   uint64        `json:"count"`
	Total   time.Duration `json:"total"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
	Average time.Duration `json:"average"`
}

// Recorder tracks in-flight timers by name and keeps running aggregates
// of completed ones.
//
// A Start without a matching End stays in the active set until Clear is
// called. This is a documented limitation of the start/end pairing model,
// not something the recorder papers over.
type Recorder struct {
	mu     sync.Mutex
	active map[string]Timer
	totals map[string]*Summary
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		active: make(map[string]Timer),
		totals: make(map[string]*Summary),
	}
}

// Start begins a named timer. A second Start with the same name replaces
// the earlier unmatched one.
func (r *Recorder) Start(name string, metadata map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[name] = Timer{
		Name:      name,
		StartTime: time.Now(),
		Metadata:  metadata,
	}
}

// End completes the named timer and folds it into the aggregates. It
// reports false when no matching Start exists.
func (r *Recorder) End(name string) (Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.active[name]
	if !ok {
		return Timer{}, false
	}
	delete(r.active, name)

	timer.EndTime = time.Now()
	timer.Duration = timer.EndTime.Sub(timer.StartTime)
	r.observeLocked(name, timer.Duration)
	return timer, true
}

// Observe folds an externally measured duration into the aggregates
// without the start/end pairing. Used by the span bridge.
func (r *Recorder) Observe(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observeLocked(name, d)
}

// Active returns the number of unmatched starts.
func (r *Recorder) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Clear drops all unmatched starts. Aggregates are kept.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.active)
}

// Summaries returns the per-name aggregates sorted by name.
func (r *Recorder) Summaries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Summary, 0, len(r.totals))
	for _, s := range r.totals {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func (r *Recorder) observeLocked(name string, d time.Duration) {
	s, ok := r.totals[name]
	if !ok {
		s = &Summary{Name: name, Min: d, Max: d}
		r.totals[name] = s
	}
	s.Count++
	s.Total += d
	if d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Average = s.Total / time.Duration(s.Count)
}
