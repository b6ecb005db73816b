package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"moyudiary/internal/config"
)

type options struct {
	level *slog.Level
}

type Option func(*options)

// WithLevel переопределяет уровень окружения. Пустое или неизвестное
// значение игнорируется.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, ok := parseLevel(level); ok {
			o.level = &lvl
		}
	}
}

// New создает логгер под окружение: local - цветной вывод для человека,
// dev - JSON с DEBUG, prod - JSON с INFO.
func New(env string, opts ...Option) *slog.Logger {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(levelOr(o, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(o, slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(o, slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(o, slog.LevelInfo)}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func levelOr(o options, def slog.Level) slog.Level {
	if o.level != nil {
		return *o.level
	}
	return def
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
