package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// Mission control command names understood by the flight-control bridge.
const (
	CommandStartMission = "start_mission"
	CommandKill         = "kill"
)

// CommandRow is a mission-control action published to the drone link.
type CommandRow struct {
	Command   string    `json:"command"`
	Drone     string    `json:"drone,omitempty"` // empty for fleet-wide commands
	MessageID string    `json:"message_id"`
	Timestamp time.Time `json:"ts"`
}

// NewCommand builds a command row with a fresh message id.
func NewCommand(command, drone string) CommandRow {
	return CommandRow{
		Command:   command,
		Drone:     drone,
		MessageID: uuid.New().String(),
		Timestamp: time.Now().UTC(),
	}
}
