// Telemetry structs shared by feeds, the console, and the archive writers.
package telemetry

import (
	"os"
	"time"
)

// TelemetryRow is one status report received from a drone link.
// The *Updated flags mark which groups of fields carry new data; bridges
// that report partial state leave the other groups false.
type TelemetryRow struct {
	Drone     string    `json:"drone"` // TAG
	Lat       float64   `json:"lat"`   // FIELD
	Lon       float64   `json:"lon"`   // FIELD
	Alt       float64   `json:"alt"`   // FIELD
	Live      bool      `json:"live"`
	GPSActive bool      `json:"gps_active"`
	Updated   string    `json:"updated,omitempty"`
	MessageID string    `json:"message_id,omitempty"`
	Timestamp time.Time `json:"ts"` // TIME INDEX

	PositionUpdated bool `json:"position_updated"`
	LiveUpdated     bool `json:"live_updated"`
	GPSUpdated      bool `json:"gps_updated"`
}

// TelemetryTableName is the table name used when archiving to GreptimeDB.
// It defaults to "planner_telemetry" but can be overridden via the
// GREPTIMEDB_TABLE environment variable.
var TelemetryTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "planner_telemetry"
}()

// Position holds latitude, longitude, and altitude in meters.
type Position struct {
	Lat float64
	Lon float64
	Alt float64
}
