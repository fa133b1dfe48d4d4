package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ScriptTuple is the discriminating tuple of the script cache domain: exactly
// the configuration fields that affect the emitted script text. Fields that
// cannot change the text (for example the file-cache TTL) are deliberately
// excluded so that changing them never invalidates compiled scripts.
type ScriptTuple struct {
	Features          []FeatureID
	Theme             Theme
	Colors            bool
	Emoji             bool
	Debug             bool
	UsageIntegration  bool
	UsageCommand      string
	CPUThreshold      int
	MemoryThreshold   int
	MinRenderInterval time.Duration
}

// ScriptTupleOf derives the script tuple from a configuration. Only features
// the generator knows end up in the tuple; unknown identifiers are invisible
// to the cache exactly as they are invisible to the encoders.
func ScriptTupleOf(cfg Config) ScriptTuple {
	known := make([]FeatureID, 0, len(cfg.Features))
	for _, f := range cfg.Features {
		if KnownFeature(f) {
			known = append(known, f)
		}
	}
	return ScriptTuple{
		Features:          known,
		Theme:             cfg.Theme,
		Colors:            cfg.Colors,
		Emoji:             cfg.Emoji,
		Debug:             cfg.Debug,
		UsageIntegration:  cfg.Integrations.Usage,
		UsageCommand:      UsageTupleOf(cfg).Command,
		CPUThreshold:      cfg.Thresholds.CPUPercent,
		MemoryThreshold:   cfg.Thresholds.MemoryPercent,
		MinRenderInterval: cfg.Tunables.MinRenderInterval,
	}
}

// Hash returns the stable cache key for this tuple. Every field is written
// with a NUL separator so distinct tuples cannot collide through
// concatenation ambiguity; list fields are written in their canonical sorted
// order so key derivation is independent of input ordering.
func (t ScriptTuple) Hash() string {
	h := xxhash.New()
	for _, f := range t.Features {
		_, _ = h.WriteString(string(f))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	_, _ = h.WriteString(string(t.Theme))
	_, _ = h.Write([]byte{0})

	writeBool(h, t.Colors)
	writeBool(h, t.Emoji)
	writeBool(h, t.Debug)
	writeBool(h, t.UsageIntegration)
	_, _ = h.WriteString(t.UsageCommand)
	_, _ = h.Write([]byte{0})

	_, _ = h.WriteString(strconv.Itoa(t.CPUThreshold))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(strconv.Itoa(t.MemoryThreshold))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(strconv.FormatInt(int64(t.MinRenderInterval), 10))
	_, _ = h.Write([]byte{0})

	return fmt.Sprintf("%016x", h.Sum64())
}

// UsageTuple is the discriminating tuple of the usage cache domain. The data
// is per-user and depends only on how the external tool is invoked.
type UsageTuple struct {
	Command string
}

// UsageTupleOf derives the usage tuple from a configuration.
func UsageTupleOf(cfg Config) UsageTuple {
	cmd := cfg.Integrations.UsageCommand
	if cmd == "" {
		cmd = DefaultUsageCommand
	}
	return UsageTuple{Command: cmd}
}

// Hash returns the stable cache key for this tuple.
func (t UsageTuple) Hash() string {
	h := xxhash.New()
	_, _ = h.WriteString(t.Command)
	_, _ = h.Write([]byte{0})
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeBool(h *xxhash.Digest, b bool) {
	if b {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{2})
	}
	_, _ = h.Write([]byte{0})
}
