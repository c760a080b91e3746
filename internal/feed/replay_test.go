package feed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"manas-planner/internal/telemetry"
)

func TestReplayFeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "telemetry.jsonl")
	lines := `{"drone":"freyja","lat":1,"lon":2,"alt":3,"position_updated":true,"ts":"2026-08-01T10:00:00Z"}
not json
{"drone":"cleo","live":true,"live_updated":true,"ts":"2026-08-01T10:00:01Z"}
`
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatalf("write replay log: %v", err)
	}

	f := NewReplayFeed(path, time.Millisecond, slog.Default())
	var rows []telemetry.TelemetryRow
	err := f.Run(context.Background(), func(row telemetry.TelemetryRow) {
		rows = append(rows, row)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (malformed line skipped)", len(rows))
	}
	if rows[0].Drone != "freyja" || rows[1].Drone != "cleo" {
		t.Fatalf("unexpected order: %+v", rows)
	}
}

func TestReplayFeedCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "telemetry.jsonl")
	if err := os.WriteFile(path, []byte(`{"drone":"freyja"}`+"\n"), 0644); err != nil {
		t.Fatalf("write replay log: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewReplayFeed(path, time.Hour, slog.Default())
	if err := f.Run(ctx, func(telemetry.TelemetryRow) {}); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
