package seqs

import (
	"context"
	"iter"
	"log/slog"
)

type traceConfig struct {
	level  slog.Level
	values bool
}

type TraceOption func(*traceConfig)

// WithTraceLevel sets the level of the records Trace emits. Default is Debug.
func WithTraceLevel(level slog.Level) TraceOption {
	return func(cfg *traceConfig) {
		cfg.level = level
	}
}

// WithTraceValues controls whether element values are attached to records.
// Disable it for large or sensitive elements.
func WithTraceValues(enabled bool) TraceOption {
	return func(cfg *traceConfig) {
		cfg.values = enabled
	}
}

// Trace passes seq through unchanged and logs one record per element
// ("index", "value") plus a final record with the element count and whether
// the sequence was read to the end. A nil logger means slog.Default().
// Nothing is logged until the result is ranged over.
func Trace[T any](seq iter.Seq[T], logger *slog.Logger, msg string, opts ...TraceOption) iter.Seq[T] {
	cfg := traceConfig{level: slog.LevelDebug, values: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(yield func(T) bool) {
		log := logger
		if log == nil {
			log = slog.Default()
		}
		ctx := context.Background()
		if !log.Enabled(ctx, cfg.level) {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
			return
		}

		count := 0
		complete := false
		defer func() {
			log.Log(ctx, cfg.level, msg+" done", "count", count, "complete", complete)
		}()
		for v := range seq {
			if cfg.values {
				log.Log(ctx, cfg.level, msg, "index", count, "value", v)
			} else {
				log.Log(ctx, cfg.level, msg, "index", count)
			}
			count++
			if !yield(v) {
				return
			}
		}
		complete = true
	}
}
