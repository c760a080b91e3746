package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"manas-planner/internal/config"
	"manas-planner/internal/logging"
	"manas-planner/internal/telemetry"
)

func testConfig(source string) *config.PlannerConfig {
	return &config.PlannerConfig{Feed: config.Feed{
		Source: source,
		MQTT:   config.MQTT{Broker: "tcp://localhost:1883", ClientID: "test"},
		Serial: config.Serial{Port: "/dev/ttyUSB0", BaudRate: 9600, Drone: "freyja"},
		Replay: config.Replay{Path: "telemetry.log", Tick: "10ms"},
	}}
}

func TestNewSinksPrintOnly(t *testing.T) {
	log := logging.NewWithWriter(os.Stderr, slog.LevelError)
	sinks, cleanup, err := newSinks(true, "", log)
	if err != nil {
		t.Fatalf("newSinks returned error: %v", err)
	}
	cleanup()
	if sinks == nil {
		t.Fatalf("expected a sink fan-out")
	}
}

func TestNewSinksNoEndpoint(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	log := logging.NewWithWriter(os.Stderr, slog.LevelError)
	sinks, cleanup, err := newSinks(false, "", log)
	if err != nil {
		t.Fatalf("newSinks returned error: %v", err)
	}
	cleanup()
	// No endpoint and no TUI bypass: nothing to archive, writes are no-ops.
	row := telemetry.TelemetryRow{Drone: "freyja", Timestamp: time.Now()}
	if err := sinks.Write(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestNewSinksLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "telemetry.log")
	log := logging.NewWithWriter(os.Stderr, slog.LevelError)
	sinks, cleanup, err := newSinks(false, path, log)
	if err != nil {
		t.Fatalf("newSinks returned error: %v", err)
	}
	defer cleanup()

	row := telemetry.TelemetryRow{Drone: "freyja", Lat: 12.9716, Timestamp: time.Now()}
	if err := sinks.Write(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cmd := telemetry.NewCommand(telemetry.CommandKill, "freyja")
	if err := sinks.WriteCommand(cmd); err != nil {
		t.Fatalf("write command failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected log file to be non-empty")
	}
	cmdInfo, err := os.Stat(path + ".commands")
	if err != nil {
		t.Fatalf("stat commands failed: %v", err)
	}
	if cmdInfo.Size() == 0 {
		t.Fatalf("expected command file to be non-empty")
	}
}

func TestNewSourceUnknown(t *testing.T) {
	cfg := testConfig("carrier-pigeon")
	if _, _, err := newSource(cfg, logging.NewWithWriter(os.Stderr, slog.LevelError)); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestNewSourceSelection(t *testing.T) {
	log := logging.NewWithWriter(os.Stderr, slog.LevelError)
	for _, source := range []string{"mqtt", "serial", "replay"} {
		src, _, err := newSource(testConfig(source), log)
		if err != nil {
			t.Fatalf("source %s: %v", source, err)
		}
		if src == nil {
			t.Fatalf("source %s: expected a feed", source)
		}
	}
}
