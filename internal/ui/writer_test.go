package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
)

type fakeProgram struct{ msgs []tea.Msg }

func (f *fakeProgram) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

func TestWindowWriteMessages(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p, console: planner.NewConsole()}
	row := telemetry.TelemetryRow{
		Drone:           "freyja",
		Lat:             12.9716,
		Lon:             77.5946,
		Alt:             45.3,
		PositionUpdated: true,
		Timestamp:       time.Unix(0, 0).UTC(),
	}
	if err := w.Write(row); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(p.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(p.msgs))
	}
	lm, ok := p.msgs[0].(logMsg)
	if !ok {
		t.Fatalf("expected logMsg, got %T", p.msgs[0])
	}
	if !strings.Contains(lm.line, "drone=freyja") {
		t.Fatalf("log line missing drone: %q", lm.line)
	}
	cm, ok := p.msgs[1].(consoleMsg)
	if !ok {
		t.Fatalf("expected consoleMsg, got %T", p.msgs[1])
	}
	if !cm.movedSet || cm.movedID != planner.Freyja || !cm.moved {
		t.Fatalf("expected moved flag for Freyja, got %+v", cm)
	}
}

func TestWindowWriteUnknownDroneDropped(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p, console: planner.NewConsole()}
	row := telemetry.TelemetryRow{Drone: "loki", PositionUpdated: true, Timestamp: time.Unix(0, 0).UTC()}
	if err := w.Write(row); err != nil {
		t.Fatalf("write: %v", err)
	}
	lm := p.msgs[0].(logMsg)
	if !strings.Contains(lm.line, "dropped") {
		t.Fatalf("expected dropped marker in %q", lm.line)
	}
	cm := p.msgs[1].(consoleMsg)
	if cm.movedSet {
		t.Fatalf("unknown drone should not carry movement info")
	}
}

func TestWindowWriteCommand(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p, console: planner.NewConsole()}
	row := telemetry.CommandRow{Command: telemetry.CommandKill, Drone: "cleo", Timestamp: time.Unix(0, 0).UTC()}
	if err := w.WriteCommand(row); err != nil {
		t.Fatalf("command: %v", err)
	}
	lm, ok := p.msgs[0].(logMsg)
	if !ok {
		t.Fatalf("expected logMsg, got %T", p.msgs[0])
	}
	if !strings.Contains(lm.line, "COMMAND") || !strings.Contains(lm.line, "kill") {
		t.Fatalf("unexpected command line %q", lm.line)
	}
}

func TestWindowWriteLogColors(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p, console: planner.NewConsole()}
	row := telemetry.TelemetryRow{Drone: "cleo", Live: true, GPSActive: false, Timestamp: time.Unix(0, 0).UTC()}
	if err := w.Write(row); err != nil {
		t.Fatalf("write: %v", err)
	}
	line := p.msgs[0].(logMsg).line
	if !strings.Contains(line, colorGreen+"live=true") {
		t.Fatalf("live flag not green: %q", line)
	}
	if !strings.Contains(line, colorRed+"gps=false") {
		t.Fatalf("inactive gps flag not red: %q", line)
	}
}

func TestWindowNotify(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p}
	w.Notify("feed stopped: broker unreachable")
	nm, ok := p.msgs[0].(noticeMsg)
	if !ok {
		t.Fatalf("expected noticeMsg, got %T", p.msgs[0])
	}
	if nm.text != "feed stopped: broker unreachable" {
		t.Fatalf("unexpected notice %q", nm.text)
	}
}

func TestWindowSetGlobalLive(t *testing.T) {
	p := &fakeProgram{}
	w := &Window{program: p, console: planner.NewConsole()}
	w.SetGlobalLive(true)
	cm, ok := p.msgs[0].(consoleMsg)
	if !ok {
		t.Fatalf("expected consoleMsg, got %T", p.msgs[0])
	}
	if !cm.snapshot.GlobalLive {
		t.Fatalf("snapshot should report live")
	}
}
