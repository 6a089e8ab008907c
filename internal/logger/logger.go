// Package logger configures the process-wide slog logger: a colored
// human-readable handler for terminals, or JSON when LOG_FORMAT=json.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// PrettyHandler renders records as "HH:MM:SS LVL message key=value".
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	mu    sync.Mutex
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	levelColor, levelText := green, "INF"
	switch r.Level {
	case slog.LevelDebug:
		levelColor, levelText = gray, "DBG"
	case slog.LevelWarn:
		levelColor, levelText = yellow, "WRN"
	case slog.LevelError:
		levelColor, levelText = red, "ERR"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, r.Time.Format("15:04:05"), reset,
		levelColor, levelText, reset,
		r.Message,
	)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
		return true
	})
	fmt.Fprintln(h.w)
	return nil
}

func (h *PrettyHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *PrettyHandler) WithGroup(string) slog.Handler      { return h }

var (
	once   sync.Once
	logger *slog.Logger
)

// Init builds the logger from LOG_FORMAT / LOG_LEVEL and installs it as
// the slog default. Safe to call more than once.
func Init() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		switch os.Getenv("LOG_LEVEL") {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		var handler slog.Handler
		if os.Getenv("LOG_FORMAT") == "json" {
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		} else {
			handler = NewPrettyHandler(os.Stdout, level)
		}

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return logger
}
