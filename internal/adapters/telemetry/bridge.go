package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor, folding every finished span
// into the recorder's aggregates. It gives the diagnostics surface span
// timings without a second measurement path.
type Bridge struct {
	recorder *Recorder
}

// NewBridge returns a new Bridge feeding the given recorder.
func NewBridge(recorder *Recorder) *Bridge {
	return &Bridge{recorder: recorder}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd folds the finished span into the recorder.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.recorder == nil {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}
	b.recorder.Observe(s.Name(), s.EndTime().Sub(s.StartTime()))
}

// ForceFlush does nothing; observations are applied synchronously.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// NewProvider builds a tracer provider whose spans feed the recorder.
// Install it with otel.SetTracerProvider at startup.
func NewProvider(recorder *Recorder) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(recorder)),
	)
}
