package logging

import (
	"github.com/rs/zerolog"
)

// ContextHook copies the identifiers stored by WithRequestID and
// WithEmployeeID from an event's context onto the event.
type ContextHook struct{}

func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}
	for _, key := range contextFields {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			e.Str(string(key), v)
		}
	}
}
