// Telemetry feeds decode external sources and hand rows to the console.
package feed

import (
	"context"

	"manas-planner/internal/telemetry"
)

// Handler consumes each decoded telemetry row. Handlers archive the row and
// route it into the console; they must not block for long.
type Handler func(telemetry.TelemetryRow)

// Source streams telemetry rows until the context is canceled.
type Source interface {
	Run(ctx context.Context, h Handler) error
}

// Commander publishes mission-control commands back over the link. Sources
// without an uplink (serial, replay) do not implement it.
type Commander interface {
	PublishCommand(telemetry.CommandRow) error
}
