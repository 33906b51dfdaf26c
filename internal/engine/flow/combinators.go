package flow

import (
	"context"
	"sync"
	"time"
)

// Limiter is a sliding time-window call budget. Unlike the debounce
// wrapper it does not drop calls silently: Allow reports whether the call
// fits the budget so the caller can surface a rejection.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	stamps []time.Time
	now    func() time.Time
}

// NewLimiter allows at most limit calls per sliding window.
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow consumes one slot from the budget if available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()
	if len(l.stamps) >= l.limit {
		return false
	}
	l.stamps = append(l.stamps, l.now())
	return true
}

// Remaining returns the number of calls still allowed in the current window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()
	return l.limit - len(l.stamps)
}

func (l *Limiter) pruneLocked() {
	cutoff := l.now().Add(-l.window)
	kept := l.stamps[:0]
	for _, ts := range l.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.stamps = kept
}

// Retry runs fn up to attempts times with a fixed delay between attempts.
// It returns nil on the first success, the last error after exhausting all
// attempts, or the context error if the context is cancelled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var last error
	for i := range attempts {
		if i > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		if last = fn(); last == nil {
			return nil
		}
	}
	return last
}

// Batch accumulates items and flushes them by size or time, whichever
// comes first.
type Batch[T any] struct {
	mu     sync.Mutex
	size   int
	window time.Duration
	flush  func([]T)
	items  []T
	timer  *time.Timer
	closed bool
}

// NewBatch flushes through fn whenever size items accumulate or window
// elapses since the first buffered item.
func NewBatch[T any](size int, window time.Duration, fn func([]T)) *Batch[T] {
	return &Batch[T]{
		size:   size,
		window: window,
		flush:  fn,
	}
}

// Add buffers one item, flushing if the size threshold is reached.
// It reports false when the batch has been closed.
func (b *Batch[T]) Add(item T) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}

	b.items = append(b.items, item)
	if len(b.items) >= b.size {
		b.flushLocked()
		return true
	}

	if b.timer == nil {
		b.timer = time.AfterFunc(b.window, b.onTimer)
	}
	b.mu.Unlock()
	return true
}

// Flush forces any buffered items out now.
func (b *Batch[T]) Flush() {
	b.mu.Lock()
	if len(b.items) == 0 {
		b.stopTimerLocked()
		b.mu.Unlock()
		return
	}
	b.flushLocked()
}

// Close flushes any remaining items and rejects further adds.
func (b *Batch[T]) Close() {
	b.mu.Lock()
	b.closed = true
	if len(b.items) == 0 {
		b.stopTimerLocked()
		b.mu.Unlock()
		return
	}
	b.flushLocked()
}

// Len returns the number of currently buffered items.
func (b *Batch[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

func (b *Batch[T]) onTimer() {
	b.mu.Lock()
	b.timer = nil
	if len(b.items) == 0 {
		b.mu.Unlock()
		return
	}
	b.flushLocked()
}

// flushLocked hands the buffered items to the flush callback.
// The caller must hold the lock; it is released here.
func (b *Batch[T]) flushLocked() {
	items := b.items
	b.items = nil
	b.stopTimerLocked()
	b.mu.Unlock()

	b.flush(items)
}

func (b *Batch[T]) stopTimerLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Once memoizes the first call's result (including its error) for all
// subsequent calls.
func Once[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}
