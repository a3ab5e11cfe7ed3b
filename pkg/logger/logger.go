// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // LOG_FORMAT=console
	Output  io.Writer
}

const redacted = "[REDACTED]"

// Credentials and signatures that must never reach the log, wherever they appear.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"secret_key":    {},
	"shop_key":      {},
	"checksum":      {},
	"edp_checksum":  {},
	"security_code": {},
	"authorization": {},
}

func Setup(opts Options) {
	slog.SetDefault(New(opts))
}

func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       parseLevel(opts.Level),
		AddSource:   true,
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	return slog.New(NewCorrelationHandler(handler))
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
