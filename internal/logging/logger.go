package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

// Log levels
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a lowercase level name into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ToSlogLevel converts our LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger wraps slog so lesson diagnostics stay off stdout
type Logger struct {
	Logger *slog.Logger
	writer io.Writer
}

var defaultLogger *Logger

// Init replaces the process-wide logger
func Init(logger *Logger) {
	defaultLogger = logger
}

// Get returns the process-wide logger, falling back to Console
func Get() *Logger {
	if defaultLogger == nil {
		defaultLogger = Console(LevelInfo)
	}
	return defaultLogger
}

// lineHandler writes one line per record: time LEVEL file:line message [k=v, ...]
type lineHandler struct {
	level     slog.Level
	addSource bool
	w         io.Writer
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006-01-02 15:04:05Z07:00"))
	sb.WriteString(" ")
	sb.WriteString(r.Level.String())

	if h.addSource {
		file, line := "???", 0
		if r.PC != 0 {
			frames := runtime.CallersFrames([]uintptr{r.PC})
			frame, _ := frames.Next()
			file = filepath.Base(frame.File)
			line = frame.Line
		}
		fmt.Fprintf(&sb, " %s:%d", file, line)
	}

	sb.WriteString(" ")
	sb.WriteString(r.Message)

	attrs := make([]string, 0, r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != "" && attr.Value.String() != "" {
			attrs = append(attrs, attr.Key+"="+attr.Value.String())
		}
		return true
	})
	if len(attrs) > 0 {
		sb.WriteString(" [" + strings.Join(attrs, ", ") + "]")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs ignores handler-level attributes; callers pass them per record.
func (h *lineHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup ignores groups.
func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

// New creates a logger writing to w at the given level
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		Logger: slog.New(&lineHandler{
			level:     level.ToSlogLevel(),
			addSource: true,
			w:         w,
		}),
		writer: w,
	}
}

// File creates a file logger, falling back to stderr if the file can't be opened
func File(filename string, append bool, level LogLevel) *Logger {
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flag = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	}

	file, err := os.OpenFile(filename, flag, 0666)
	if err != nil {
		return New(os.Stderr, level)
	}
	return New(file, level)
}

// Console creates a logger that writes to stderr
func Console(level LogLevel) *Logger {
	return New(os.Stderr, level)
}

// DevNull creates a logger that discards all output
func DevNull() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: io.Discard,
	}
}

// log builds the record itself so the source is the caller of Debug/Info/Warn/Error
func (l *Logger) log(level slog.Level, msg string, args ...interface{}) {
	ctx := context.Background()
	if !l.Logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip runtime.Callers, log, and the exported level method
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Logger.Handler().Handle(ctx, r)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(slog.LevelError, msg, args...)
}

// Close closes the underlying writer when it is a file
func (l *Logger) Close() error {
	if l.writer == os.Stderr || l.writer == os.Stdout {
		return nil
	}
	if closer, ok := l.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
