package archive

import (
	"testing"

	"manas-planner/internal/telemetry"
)

type recordingWriter struct {
	rows    []telemetry.TelemetryRow
	batches int
	cmds    []telemetry.CommandRow
}

func (r *recordingWriter) Write(row telemetry.TelemetryRow) error {
	r.rows = append(r.rows, row)
	return nil
}

func (r *recordingWriter) WriteBatch(rows []telemetry.TelemetryRow) error {
	r.batches++
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *recordingWriter) WriteCommand(row telemetry.CommandRow) error {
	r.cmds = append(r.cmds, row)
	return nil
}

type plainWriter struct{ rows []telemetry.TelemetryRow }

func (p *plainWriter) Write(row telemetry.TelemetryRow) error {
	p.rows = append(p.rows, row)
	return nil
}

func TestMultiWriterFanOut(t *testing.T) {
	a := &recordingWriter{}
	b := &plainWriter{}
	mw := NewMultiWriter([]TelemetryWriter{a, b}, []CommandWriter{a})

	rows := []telemetry.TelemetryRow{{Drone: "freyja"}, {Drone: "cleo"}}
	if err := mw.WriteBatch(rows); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if a.batches != 1 || len(a.rows) != 2 {
		t.Fatalf("batch writer not used: batches=%d rows=%d", a.batches, len(a.rows))
	}
	if len(b.rows) != 2 {
		t.Fatalf("plain writer rows = %d, want 2", len(b.rows))
	}

	if err := mw.WriteCommand(telemetry.CommandRow{Command: "kill", Drone: "cleo"}); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	if len(a.cmds) != 1 || a.cmds[0].Drone != "cleo" {
		t.Fatalf("command not fanned out: %+v", a.cmds)
	}
}
