package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents the log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unknown names map to FormatText.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
	// WithFields returns a new logger with the given fields.
	WithFields(keysAndValues ...interface{}) Logger
	// Close releases the output opened by New. Loggers derived with
	// WithFields share it.
	Close() error
}

// Config holds the logger configuration.
type Config struct {
	Level  string
	Format string
	Output string
}

// logger is the default implementation of Logger.
type logger struct {
	level  Level
	format Format
	output io.Writer
	fields map[string]interface{}
	mu     *sync.Mutex
	now    func() time.Time
	closer io.Closer
}

// New creates a Logger from cfg. Output is "stdout", "stderr" (the
// default) or a file path opened for appending, which stays open until
// Close is called.
func New(cfg Config) (Logger, error) {
	var output io.Writer
	var closer io.Closer
	switch cfg.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log output %q: %w", cfg.Output, err)
		}
		output, closer = f, f
	}

	l := NewWithWriter(output, cfg).(*logger)
	l.closer = closer
	return l, nil
}

// NewWithWriter creates a Logger writing to w. cfg.Output is ignored and
// Close leaves w open.
func NewWithWriter(w io.Writer, cfg Config) Logger {
	return &logger{
		level:  ParseLevel(cfg.Level),
		format: ParseFormat(cfg.Format),
		output: w,
		fields: make(map[string]interface{}),
		mu:     &sync.Mutex{},
		now:    time.Now,
	}
}

// NewNop creates a no-op logger that discards all output.
func NewNop() Logger {
	return nopLogger{}
}

// Debug logs a debug message.
func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message.
func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message.
func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message.
func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

// WithFields returns a new logger with the given fields.
func (l *logger) WithFields(keysAndValues ...interface{}) Logger {
	child := *l
	child.fields = make(map[string]interface{}, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		child.fields[k] = v
	}
	addPairs(child.fields, keysAndValues)
	return &child
}

// Close closes the log file opened by New, if any.
func (l *logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	fields := make(map[string]interface{}, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	addPairs(fields, keysAndValues)

	ts := l.now().UTC().Format(time.RFC3339)

	var line string
	if l.format == FormatJSON {
		line = formatJSON(ts, level, msg, fields)
	} else {
		line = formatText(ts, level, msg, fields)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

// addPairs copies key-value pairs into fields. Non-string keys and a trailing
// key without value are dropped.
func addPairs(fields map[string]interface{}, keysAndValues []interface{}) {
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = fieldValue(keysAndValues[i+1])
		}
	}
}

// fieldValue turns errors and Stringers into strings so they render the
// same way in both formats.
func fieldValue(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return v
	}
}

func formatJSON(ts string, level Level, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = ts
	entry["level"] = level.String()
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"ts":"%s","level":"error","msg":"failed to marshal log entry"}`, ts)
	}
	return string(data)
}

// formatText renders "ts [level] msg k=v ..." with keys in sorted order.
func formatText(ts string, level Level, msg string, fields map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", ts, level, msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// nopLogger is a no-op logger that discards all output.
type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...interface{}) {}
func (nopLogger) Info(_ string, _ ...interface{}) {}
func (nopLogger) Warn(_ string, _ ...interface{}) {}
func (nopLogger) Error(_ string, _ ...interface{}) {}
func (n nopLogger) WithFields(_ ...interface{}) Logger { return n }
func (nopLogger) Close() error { return nil }
