// Package ports defines the interfaces the editor core depends on.
package ports

// LogLevel is the minimum severity a Logger emits.
type LogLevel int

const (
	// LevelDebug covers per-component internals such as repaints and decodes.
	LevelDebug LogLevel = iota
	// LevelInfo covers user-visible progress such as a finished export.
	LevelInfo
	// LevelWarn covers recovered problems, e.g. a placeholder substituted
	// for a template that failed to decode.
	LevelWarn
	// LevelError covers failures that abort a command.
	LevelError
	// LevelQuiet suppresses everything.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the lowercase name of the level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel maps a level name to a LogLevel. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelInfo
}

// Logger is a leveled logger whose messages are lexicon keys that may be
// translated before printing.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes output with component.
	WithComponent(component string) Logger
}
