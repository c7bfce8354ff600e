package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

// LevelEnvironmentVariable is the environment variable used to configure the
// level of RootLogger.
const LevelEnvironmentVariable = "ENVIRON_LOG_LEVEL"

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Lines are formatted by an
// underlying standard library logger, so it is safe for concurrent usage.
type Logger struct {
	// level is the maximum level that the logger will emit.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// output is the underlying line logger.
	output *log.Logger
}

// RootLogger is the root logger from which all other loggers derive. It writes
// to standard error and its level is taken from ENVIRON_LOG_LEVEL.
var RootLogger = NewLogger(levelFromEnvironment(), os.Stderr)

// levelFromEnvironment computes the root logger level. Unset or unknown level
// names yield LevelInfo.
func levelFromEnvironment() Level {
	if level, ok := NameToLevel(os.Getenv(LevelEnvironmentVariable)); ok {
		return level
	}
	return LevelInfo
}

// NewLogger creates a new logger that emits messages at or below the specified
// level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: log.New(writer, "", log.LstdFlags),
	}
}

// Level returns the logger's level. A nil logger is always disabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		output: l.output,
	}
}

// emit is the internal logging method.
func (l *Logger) emit(level Level, line string) {
	if l == nil || l.level < level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.output.Output(3, line)
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.emit(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.emit(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// debugging is enabled.
func (l *Logger) Debug(v ...interface{}) {
	l.emit(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// debugging is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit(LevelDebug, fmt.Sprintf(format, v...))
}

// Tracef logs low-level information with semantics equivalent to fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.emit(LevelTrace, fmt.Sprintf(format, v...))
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	l.emit(LevelWarn, color.YellowString("Warning: %v", err))
}

// Warnf logs formatted information with a warning prefix and yellow color.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.emit(LevelWarn, color.YellowString("Warning: "+format, v...))
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	l.emit(LevelError, color.RedString("Error: %v", err))
}
