package telemetry

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// consoleWriter renders vertex completions as plain lines. It keeps none of
// the tape's replay machinery: each completed vertex is reported once.
type consoleWriter struct {
	mu       sync.Mutex
	out      io.Writer
	reported map[string]bool
}

func newConsoleWriter(out io.Writer) *consoleWriter {
	return &consoleWriter{
		out:      out,
		reported: make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (w *consoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.reported[v.Id] {
			continue
		}
		w.reported[v.Id] = true

		switch {
		case v.Error != nil:
			fmt.Fprintf(w.out, "✗ %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			fmt.Fprintf(w.out, "✓ %s (cached)\n", v.Name)
		default:
			fmt.Fprintf(w.out, "✓ %s\n", v.Name)
		}
	}
	return nil
}

// Close implements the optional closer recognized by Recorder.Close.
func (w *consoleWriter) Close() error {
	return nil
}
