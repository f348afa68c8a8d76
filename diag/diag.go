// Package diag carries structured diagnostic events out of the engine.
// The core never writes to files or the console itself; every component
// that has something to report takes a Sink and the host decides where
// the events go.
package diag

import "fmt"

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

type Fields map[string]any

type Event struct {
	Level   Level
	Message string
	Fields  Fields
}

type Sink interface {
	Emit(Event)
}

// Send emits an event to s. A nil sink discards the event, so callers
// never need to guard their diagnostics.
func Send(s Sink, level Level, msg string, fields Fields) {
	if s == nil {
		return
	}
	s.Emit(Event{Level: level, Message: msg, Fields: fields})
}

func Debug(s Sink, msg string, fields Fields)    { Send(s, LevelDebug, msg, fields) }
func Info(s Sink, msg string, fields Fields)     { Send(s, LevelInfo, msg, fields) }
func Warn(s Sink, msg string, fields Fields)     { Send(s, LevelWarning, msg, fields) }
func Error(s Sink, msg string, fields Fields)    { Send(s, LevelError, msg, fields) }
func Critical(s Sink, msg string, fields Fields) { Send(s, LevelCritical, msg, fields) }

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(Event) {}
