package flow

import "time"

// SetNowFunc replaces the wrapper's clock. Test-only seam for simulating
// clock skew, which cannot be produced with a monotonic test clock.
func (d *Debounced[A, R]) SetNowFunc(now func() time.Time) {
	d.mu.Lock()
	d.now = now
	d.mu.Unlock()
}

// SetNowFunc replaces the limiter's clock.
func (l *Limiter) SetNowFunc(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}
