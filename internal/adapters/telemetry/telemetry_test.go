package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/statline/statline/internal/adapters/telemetry"
	"github.com/statline/statline/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := telemetry.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_VertexInContext(t *testing.T) {
	recorder := telemetry.New()
	defer recorder.Close()

	ctx, vertex := recorder.Record(context.Background(), "compile script")
	require.NotNil(t, vertex)

	fromCtx := ports.VertexFromContext(ctx)
	require.NotNil(t, fromCtx)
	assert.Equal(t, vertex, fromCtx)

	vertex.Complete(nil)
}

func TestConsole_ReportsCompletions(t *testing.T) {
	buf := new(bytes.Buffer)
	recorder := telemetry.NewConsole(buf)
	defer recorder.Close()

	_, done := recorder.Record(context.Background(), "compile script")
	done.Complete(nil)

	_, cached := recorder.Record(context.Background(), "template lookup")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "refresh usage")
	failed.Complete(errors.New("ccusage exited 1"))

	out := buf.String()
	assert.Contains(t, out, "✓ compile script")
	assert.Contains(t, out, "✓ template lookup (cached)")
	assert.Contains(t, out, "✗ refresh usage: ccusage exited 1")
}

func TestNoop_IsSilent(t *testing.T) {
	noop := telemetry.NewNoop()

	ctx, vertex := noop.Record(context.Background(), "anything")
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, len("discarded"), n)

	vertex.Cached()
	vertex.Complete(nil)
	assert.NoError(t, noop.Close())

	// Noop does not thread a vertex through the context.
	assert.Nil(t, ports.VertexFromContext(ctx))
}
