package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelFilter replaces the level check of the core it wraps, so a
// command can log below or above the global level without touching it.
type levelFilter struct {
	zapcore.Core

	// min is the lowest level passed to the wrapped core.
	min zapcore.Level
}

// Enabled ignores the wrapped core's level.
func (f levelFilter) Enabled(l zapcore.Level) bool {
	return l >= f.min
}

// Level reports the filter level to zap.
func (f levelFilter) Level() zapcore.Level {
	return f.min
}

// Check registers the filter itself, so Write skips the wrapped core's check.
//
//nolint:gocritic // zapcore.Core fixes the by-value signature.
func (f levelFilter) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !f.Enabled(entry.Level) {
		return checked
	}

	return checked.AddCore(entry, f)
}

// With attaches fields below the filter.
//
//nolint:ireturn,nolintlint // zapcore.Core is the zap integration point.
func (f levelFilter) With(fields []zapcore.Field) zapcore.Core {
	f.Core = f.Core.With(fields)

	return f
}

// WithLevel is a zap option setting the minimum level of one logger,
// independently of the global level.
//
//nolint:ireturn,nolintlint // zap.Option is the zap integration point.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return levelFilter{Core: core, min: lvl}
	})
}

// WithLevelContext returns ctx carrying the context logger restricted to lvl.
// Names and fields already attached are kept.
func WithLevelContext(ctx context.Context, lvl zapcore.Level) context.Context {
	scoped := FromContext(ctx).Desugar().WithOptions(WithLevel(lvl))

	return ToContext(ctx, scoped.Sugar())
}
