// Package log provides structured debug logging for signup.
//
// Entries are written to a file, kept in a bounded in-memory buffer for the
// in-app log overlay, and published to subscribers. Logging is a no-op until
// Init is called, which the CLI only does with --debug or SIGNUP_DEBUG set.
package log

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/signup/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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

// Category groups related log messages.
type Category string

const (
	CatForm   Category = "form"   // Field edits and validation
	CatSubmit Category = "submit" // Registration calls and outcomes
	CatConfig Category = "config" // Configuration loading/saving
	CatUI     Category = "ui"     // Shell and component updates
	CatTrace  Category = "trace"  // Tracing provider lifecycle
)

// DefaultBufferSize is the number of recent entries kept in memory.
const DefaultBufferSize = 500

type logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	buffer   []string
	next     int
	full     bool
	broker   *pubsub.Broker[string]
}

var (
	mu            sync.RWMutex
	defaultLogger *logger
)

// Init opens path for appending and starts logging. bufferSize bounds the
// number of entries kept for GetRecentLogs (DefaultBufferSize if <= 0).
// The returned cleanup closes the file and stops logging.
func Init(path string, bufferSize int) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: user-chosen debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	l := &logger{
		file:     f,
		minLevel: LevelDebug,
		buffer:   make([]string, bufferSize),
		broker:   pubsub.NewBroker[string](),
	}

	mu.Lock()
	defaultLogger = l
	mu.Unlock()

	return func() {
		mu.Lock()
		if defaultLogger == l {
			defaultLogger = nil
		}
		mu.Unlock()
		l.broker.Close()
		l.mu.Lock()
		_ = l.file.Close()
		l.mu.Unlock()
	}, nil
}

// Enabled reports whether Init has been called and not cleaned up.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger != nil
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

// GetRecentLogs returns up to n of the most recent entries, oldest first.
func GetRecentLogs(n int) []string {
	l := current()
	if l == nil || n <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var ordered []string
	if l.full {
		ordered = append(ordered, l.buffer[l.next:]...)
	}
	ordered = append(ordered, l.buffer[:l.next]...)
	if len(ordered) > n {
		ordered = ordered[len(ordered)-n:]
	}
	return ordered
}

// ClearBuffer discards the in-memory entries. The log file is untouched.
func ClearBuffer() {
	l := current()
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.buffer {
		l.buffer[i] = ""
	}
	l.next = 0
	l.full = false
}

// LogEvent is a published log entry.
type LogEvent = pubsub.Event[string]

// NewListener subscribes to log entries for the lifetime of ctx.
// Returns nil when logging is not initialized.
func NewListener(ctx context.Context) *pubsub.ContinuousListener[string] {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, l.broker)
}

func current() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Format: 2026-01-02T15:04:05 [ERROR] [submit] message key=value key2=value2
func format(level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteString("\n")
	return b.String()
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	if level < l.minLevel {
		l.mu.Unlock()
		return
	}
	entry := format(level, cat, msg, fields)
	_, _ = l.file.WriteString(entry)
	l.buffer[l.next] = entry
	l.next = (l.next + 1) % len(l.buffer)
	if l.next == 0 {
		l.full = true
	}
	l.mu.Unlock()

	l.broker.Publish(entry)
}
