package diag

import "github.com/rs/zerolog"

// Zerolog routes events into a zerolog logger.
type Zerolog struct {
	log zerolog.Logger
}

func NewZerolog(log zerolog.Logger) *Zerolog {
	return &Zerolog{log: log}
}

func (z *Zerolog) Emit(e Event) {
	var ev *zerolog.Event
	switch e.Level {
	case LevelDebug:
		ev = z.log.Debug()
	case LevelInfo:
		ev = z.log.Info()
	case LevelWarning:
		ev = z.log.Warn()
	case LevelError:
		ev = z.log.Error()
	case LevelCritical:
		// Fatal would kill the host; nothing in the engine is fatal.
		ev = z.log.Error().Bool("critical", true)
	default:
		ev = z.log.Info()
	}
	for k, v := range e.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(e.Message)
}
