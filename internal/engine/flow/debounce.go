// Package flow provides time-windowed call coalescing and related
// combinators: debounce, throttle, rate limiting, retries, batching and
// one-shot memoization. Everything here is event-loop friendly: no method
// blocks the caller beyond the wrapped function itself.
package flow

import (
	"sync"
	"time"
)

// Option configures a Debounced wrapper.
type Option func(*settings)

type settings struct {
	leading  bool
	trailing bool
	maxWait  time.Duration
}

// WithLeading makes the first call in a quiet window invoke immediately.
func WithLeading() Option {
	return func(s *settings) { s.leading = true }
}

// WithTrailing controls whether the last call before the window closes
// invokes once more with its own arguments. Enabled by default.
func WithTrailing(enabled bool) Option {
	return func(s *settings) { s.trailing = enabled }
}

// WithMaxWait bounds how long invocation can be deferred under continuous
// calling pressure. Once exceeded, a forced invocation occurs at that
// boundary regardless of the leading/trailing configuration.
func WithMaxWait(d time.Duration) Option {
	return func(s *settings) { s.maxWait = d }
}

// Debounced wraps a function so that a burst of calls collapses into at
// most one (or two, with leading+trailing) actual invocations.
type Debounced[A, R any] struct {
	mu         sync.Mutex
	fn         func(A) R
	window     time.Duration
	cfg        settings
	timer      *time.Timer
	maxTimer   *time.Timer
	pendingArg A
	hasPending bool
	lastCall   time.Time
	lastResult R

	// now is replaceable in tests to simulate clock skew.
	now func() time.Time
}

// Debounce wraps fn with the given quiet window. By default only the
// trailing edge invokes; see WithLeading, WithTrailing and WithMaxWait.
func Debounce[A, R any](fn func(A) R, window time.Duration, opts ...Option) *Debounced[A, R] {
	cfg := settings{trailing: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Debounced[A, R]{
		fn:     fn,
		window: window,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Throttle caps invocation frequency to at most once per interval. It is
// the debounce primitive with maxWait equal to the window size and the
// leading edge enabled by default.
func Throttle[A, R any](fn func(A) R, interval time.Duration, opts ...Option) *Debounced[A, R] {
	base := []Option{WithLeading(), WithMaxWait(interval)}
	return Debounce(fn, interval, append(base, opts...)...)
}

// Call records one call to the wrapped function. Depending on the edge
// configuration it invokes fn now, schedules a trailing invocation, or both.
//
// A call arriving before the previous one on the wall clock (clock skew)
// invokes immediately rather than deferring against a clock that may never
// catch up.
func (d *Debounced[A, R]) Call(arg A) {
	d.mu.Lock()

	now := d.now()
	skew := !d.lastCall.IsZero() && now.Before(d.lastCall)
	idle := d.timer == nil && !d.hasPending

	if skew {
		d.stopTimersLocked()
		d.hasPending = false
		d.lastCall = now
		d.invokeLocked(arg)
		return
	}
	d.lastCall = now

	if d.cfg.leading && idle {
		d.armLocked()
		d.invokeLocked(arg)
		return
	}

	d.pendingArg = arg
	d.hasPending = true
	d.armLocked()
	d.mu.Unlock()
}

// Cancel discards any pending invocation and resets the internal timers.
func (d *Debounced[A, R]) Cancel() {
	d.mu.Lock()
	d.stopTimersLocked()
	d.hasPending = false
	var zero A
	d.pendingArg = zero
	d.lastCall = time.Time{}
	d.mu.Unlock()
}

// Flush forces a pending trailing invocation to run now and returns its
// result. The second return is false when nothing was pending.
func (d *Debounced[A, R]) Flush() (R, bool) {
	d.mu.Lock()
	if !d.hasPending {
		var zero R
		d.mu.Unlock()
		return zero, false
	}
	d.stopTimersLocked()
	arg := d.pendingArg
	d.hasPending = false
	d.mu.Unlock()

	result := d.fn(arg)

	d.mu.Lock()
	d.lastResult = result
	d.mu.Unlock()
	return result, true
}

// Pending reports whether a trailing invocation is scheduled.
func (d *Debounced[A, R]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

// LastResult returns the result of the most recent invocation.
func (d *Debounced[A, R]) LastResult() R {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastResult
}

// armLocked restarts the window timer and starts the maxWait timer if one
// is configured and not already running.
func (d *Debounced[A, R]) armLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)

	if d.cfg.maxWait > 0 && d.maxTimer == nil {
		d.maxTimer = time.AfterFunc(d.cfg.maxWait, d.fireMax)
	}
}

func (d *Debounced[A, R]) stopTimersLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.maxTimer != nil {
		d.maxTimer.Stop()
		d.maxTimer = nil
	}
}

// invokeLocked runs fn outside the lock and stores its result.
// The caller must hold the lock; it is released here.
func (d *Debounced[A, R]) invokeLocked(arg A) {
	d.mu.Unlock()
	result := d.fn(arg)
	d.mu.Lock()
	d.lastResult = result
	d.mu.Unlock()
}

// fire runs when the quiet window elapses.
func (d *Debounced[A, R]) fire() {
	d.mu.Lock()
	d.timer = nil
	if d.maxTimer != nil {
		d.maxTimer.Stop()
		d.maxTimer = nil
	}
	if !d.hasPending || !d.cfg.trailing {
		d.hasPending = false
		d.mu.Unlock()
		return
	}
	arg := d.pendingArg
	d.hasPending = false
	d.invokeLocked(arg)
}

// fireMax runs when deferral has lasted maxWait; it forces the pending
// invocation regardless of edge configuration.
func (d *Debounced[A, R]) fireMax() {
	d.mu.Lock()
	d.maxTimer = nil
	if !d.hasPending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	arg := d.pendingArg
	d.hasPending = false
	d.invokeLocked(arg)
}
