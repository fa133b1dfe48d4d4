package telemetry

import (
	"context"
	"io"

	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry. It is the default for
// status-line generation, which must stay silent on the console.
type Noop struct{}

// NewNoop creates a new Noop.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (t *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoopVertex{}
}

// Close does nothing.
func (t *Noop) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Stdout discards all writes.
func (v *NoopVertex) Stdout() io.Writer {
	return io.Discard
}

// Log does nothing.
func (v *NoopVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoopVertex) Cached() {}
