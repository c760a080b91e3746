// Archive writers persist every telemetry row the console receives,
// gated or not, plus the mission-control commands it sends.
package archive

import "manas-planner/internal/telemetry"

// TelemetryWriter is an interface to support different archive sinks.
type TelemetryWriter interface {
	Write(telemetry.TelemetryRow) error
}

// CommandWriter records outbound mission-control commands.
type CommandWriter interface {
	WriteCommand(telemetry.CommandRow) error
}

// Optional: writers can also support batch mode.
type batchWriter interface {
	WriteBatch([]telemetry.TelemetryRow) error
}
