package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger derives a child of the global logger tagged with component. The
// global logger is configured by internal/logging.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
