package archive

import (
	"context"
	"log/slog"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"

	"manas-planner/internal/telemetry"
)

type mockGreptimeClient struct {
	table *table.Table
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, nil
}

func TestGreptimeWriterTelemetry(t *testing.T) {
	ts := time.Unix(0, 0).UTC()
	rows := []telemetry.TelemetryRow{
		{Drone: "freyja", Lat: 12.9716, Lon: 77.5946, Alt: 45.3, Live: true, GPSActive: true, Timestamp: ts},
	}

	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "planner_telemetry", log: slog.Default()}

	if err := w.WriteBatch(rows); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}
	if got := m.table.GetRows().Rows[0].Values[0].GetStringValue(); got != "freyja" {
		t.Fatalf("drone = %s, want freyja", got)
	}
}

func TestGreptimeWriterCommandDisabled(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "planner_telemetry", log: slog.Default()}
	if err := w.WriteCommand(telemetry.CommandRow{Command: "kill"}); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	if m.table != nil {
		t.Fatalf("command archived despite empty table name")
	}
}

func TestGreptimeWriterCommand(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "planner_telemetry", cmdTable: "planner_commands", log: slog.Default()}
	row := telemetry.CommandRow{Command: telemetry.CommandKill, Drone: "cleo", MessageID: "id1", Timestamp: time.Unix(0, 0).UTC()}
	if err := w.WriteCommand(row); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}
	if got := m.table.GetRows().Rows[0].Values[0].GetStringValue(); got != "kill" {
		t.Fatalf("command = %s, want kill", got)
	}
}
