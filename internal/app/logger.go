package app

import (
	"fmt"
	"log/slog"
	"os"

	"service-motorizado/internal/config"
	"service-motorizado/internal/logx"
)

// NewLogger builds the logger selected by LOG_BACKEND.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	switch cfg.Log.Backend {
	case "zap":
		z, err := logx.NewZap(cfg.Env, cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("build zap logger: %w", err)
		}
		return logx.NewZapAdapter(z), nil
	case "", "slog":
		base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(cfg.Log.Level),
		}))
		return logx.NewSlogAdapter(base), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Log.Backend)
	}
}

func slogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
