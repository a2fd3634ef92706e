// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// maxStackFrames bounds the frames attached to an ERROR record.
const maxStackFrames = 32

// exit is swapped out by tests of Fatal.
var exit = os.Exit

// Setup installs a JSON slog handler on stdout as the process default.
func Setup(level string) {
	slog.SetDefault(New(os.Stdout, level))
}

// New returns a JSON logger writing to w at the given LOG_LEVEL. ERROR and
// above carry a "stack" attribute listing the frames that led to the call.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(errorStack{slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	})})
}

// ParseLevel accepts slog level names in any case, plus WARNING.
// Unknown or empty values mean INFO.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Fatal logs msg at ERROR through the default logger and exits with status 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	exit(1)
}

// errorStack decorates ERROR records with the caller's frames.
type errorStack struct {
	slog.Handler
}

func (h errorStack) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		r.AddAttrs(slog.Any("stack", callerFrames(r.PC)))
	}
	return h.Handler.Handle(ctx, r)
}

func (h errorStack) WithAttrs(attrs []slog.Attr) slog.Handler {
	return errorStack{h.Handler.WithAttrs(attrs)}
}

func (h errorStack) WithGroup(name string) slog.Handler {
	return errorStack{h.Handler.WithGroup(name)}
}

// callerFrames renders the goroutine's stack from the logging call site
// outwards as "function file:line" strings. Frames inside slog and this
// handler are skipped by matching the call site recorded in the record.
func callerFrames(logPC uintptr) []string {
	site, _ := runtime.CallersFrames([]uintptr{logPC}).Next()

	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []string
	found := logPC == 0
	for {
		f, more := frames.Next()
		if !found && f.Function == site.Function && f.Line == site.Line {
			found = true
		}
		if found {
			out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		}
		if !more {
			break
		}
	}
	if len(out) == 0 && logPC != 0 {
		// call site not on this goroutine's stack (record built elsewhere)
		out = append(out, fmt.Sprintf("%s %s:%d", site.Function, site.File, site.Line))
	}
	return out
}
