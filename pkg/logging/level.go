package logging

import (
	"github.com/pkg/errors"
)

// Level is the verbosity of a Logger. Higher levels include everything logged
// at lower ones, so levels compare by value.
type Level uint

const (
	// LevelDisabled suppresses all output.
	LevelDisabled Level = iota
	// LevelError emits only errors that abort an operation.
	LevelError
	// LevelWarn adds recoverable problems, such as skipped malformed
	// variable specifications.
	LevelWarn
	// LevelInfo adds general progress messages. It is the default level.
	LevelInfo
	// LevelDebug adds per-operation summaries, such as variable counts.
	LevelDebug
	// LevelTrace adds low-level file activity.
	LevelTrace
)

// NameToLevel looks up a level by the name accepted in ENVIRON_LOG_LEVEL. The
// boolean is false (and the level LevelDisabled) for unknown names.
func NameToLevel(name string) (Level, bool) {
	switch name {
	case "disabled":
		return LevelDisabled, true
	case "error":
		return LevelError, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	case "trace":
		return LevelTrace, true
	default:
		return LevelDisabled, false
	}
}

// String returns the level's ENVIRON_LOG_LEVEL name.
func (l Level) String() string {
	switch l {
	case LevelDisabled:
		return "disabled"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	level, ok := NameToLevel(string(text))
	if !ok {
		return errors.Errorf("unknown log level: %s", text)
	}
	*l = level
	return nil
}
