package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
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

// ParseLevel maps a config value such as "debug" or "WARN" to a Level.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Logger provides structured logging
type Logger struct {
	level  Level
	output io.Writer
	prefix string
}

// NewLogger creates a new logger instance
func NewLogger(level Level, output io.Writer, prefix string) *Logger {
	return &Logger{
		level:  level,
		output: output,
		prefix: formatPrefix(prefix),
	}
}

// NewDefaultLogger creates a logger with the process-wide level and output.
// Logs go to stderr so command output on stdout stays clean.
func NewDefaultLogger(prefix string) *Logger {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return NewLogger(defaultLevel, defaultOutput, prefix)
}

func formatPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + ": "
}

// log writes a log message if the level is appropriate
func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)

	logLine := fmt.Sprintf("[%s] %s %s%s\n",
		timestamp,
		level.String(),
		l.prefix,
		message)

	_, _ = l.output.Write([]byte(logLine))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Level returns the minimum level this logger writes
func (l *Logger) Level() Level {
	return l.level
}

// WithPrefix creates a new logger with an additional prefix
func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := strings.TrimSuffix(l.prefix, ": ")
	if newPrefix != "" {
		newPrefix += " "
	}
	newPrefix += prefix + ": "

	return &Logger{
		level:  l.level,
		output: l.output,
		prefix: newPrefix,
	}
}

var (
	defaultsMu    sync.RWMutex
	defaultLevel  = LevelInfo
	defaultOutput io.Writer = os.Stderr
)

// SetLevel sets the level used by loggers created afterwards
func SetLevel(level Level) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLevel = level
}

// SetOutput sets the output used by loggers created afterwards
func SetOutput(output io.Writer) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultOutput = output
}

// Nop returns a logger that discards everything. Used by tests and by
// components constructed without a logger.
func Nop() *Logger {
	return NewLogger(LevelError+1, io.Discard, "")
}
