// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// EnvLevel es la variable de entorno que fija el nivel por defecto.
const EnvLevel = "OWASPKIT_LOG_LEVEL"

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the three-letter tag printed for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	default:
		return "ERR"
	}
}

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

// sink is shared by a logger and every child created with With, so that
// SetLevel on the root affects the whole tree.
type sink struct {
	mu  sync.Mutex
	lvl Level
	lg  *log.Logger
	now func() time.Time
}

type kvLogger struct {
	out   *sink
	scope []string // pares key=value fijos
}

// New creates a stderr logger whose level comes from OWASPKIT_LOG_LEVEL.
func New() Logger {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}

// NewWithLevel creates a stderr logger with a specific log level.
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithWriter creates a logger writing to w. Tests use it to capture output.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return &kvLogger{
		out: &sink{
			lvl: lvl,
			lg:  log.New(w, "", 0),
			now: time.Now,
		},
	}
}

// NewSilent creates a logger that only outputs errors (used with --quiet).
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// NewVerbose maps the CLI --verbose switch onto a level, falling back to
// the environment when the switch is off.
func NewVerbose(verbose bool) Logger {
	if verbose {
		return NewWithLevel(LevelDebug)
	}
	return New()
}

func (l *kvLogger) With(kv ...any) Logger {
	return &kvLogger{
		out:   l.out,
		scope: append(append([]string{}, l.scope...), kvPairs(kv...)...),
	}
}

func (l *kvLogger) SetLevel(lvl Level) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.lvl = lvl
}

func (l *kvLogger) Debug(msg string, kv ...any) { l.write(LevelDebug, msg, kv...) }
func (l *kvLogger) Info(msg string, kv ...any)  { l.write(LevelInfo, msg, kv...) }
func (l *kvLogger) Warn(msg string, kv ...any)  { l.write(LevelWarn, msg, kv...) }
func (l *kvLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	l.write(LevelError, "", kv...)
}

func (l *kvLogger) write(lvl Level, msg string, kv ...any) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if lvl < l.out.lvl {
		return
	}

	parts := []string{l.out.now().Format("15:04:05"), lvl.String()}
	if m := strings.TrimSpace(msg); m != "" {
		parts = append(parts, m)
	}
	parts = append(parts, l.scope...)
	parts = append(parts, kvPairs(kv...)...)

	l.out.lg.Println(strings.Join(parts, " "))
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var v any = "(missing)"
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, fmt.Sprintf("%v=%s", kv[i], quoteIfNeeded(fmt.Sprint(v))))
	}
	return out
}

// quoteIfNeeded keeps values with spaces readable as a single field.
func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// ParseLevel maps a textual level to a Level. Unknown values default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "warn", "warning", "wrn":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
