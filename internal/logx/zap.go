package logx

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter adapts a *zap.Logger to the logx.Logger interface.
type ZapAdapter struct {
	l *zap.Logger
}

// NewZapAdapter returns a Logger implementation backed by the provided *zap.Logger.
func NewZapAdapter(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapAdapter{l: l}
}

// NewZap builds a zap logger: JSON production config for "production", colored console otherwise.
func NewZap(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func (z *ZapAdapter) Debug(msg string, fields ...Field) { z.l.Debug(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Info(msg string, fields ...Field)  { z.l.Info(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Warn(msg string, fields ...Field)  { z.l.Warn(msg, toZapFields(fields)...) }
func (z *ZapAdapter) Error(msg string, fields ...Field) { z.l.Error(msg, toZapFields(fields)...) }

// With returns a new logger with the provided fields attached to every subsequent log entry.
func (z *ZapAdapter) With(fields ...Field) Logger {
	return &ZapAdapter{l: z.l.With(toZapFields(fields)...)}
}

// Sync flushes buffered entries. Syncing a terminal stdout fails with EINVAL/ENOTTY, which is ignored.
func (z *ZapAdapter) Sync() error {
	err := z.l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
