package logging

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/hrms/pkg/logutils"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Setup builds the process logger, attaches the ContextHook and installs it
// as the global log.Logger. The returned closer releases the log file.
func Setup(level, file string) (func(), error) {
	logger, closer, err := logutils.New(level, file)
	if err != nil {
		return closer, fmt.Errorf("setup logger: %w", err)
	}
	log.Logger = logger.Hook(ContextHook{})
	return closer, nil
}
