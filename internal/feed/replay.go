package feed

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ReplayFeed replays a JSONL telemetry log at a fixed tick, for demos and
// for driving the console without a live link.
type ReplayFeed struct {
	path string
	tick time.Duration
	log  *slog.Logger
}

// NewReplayFeed builds a feed replaying the given file.
func NewReplayFeed(path string, tick time.Duration, log *slog.Logger) *ReplayFeed {
	if tick <= 0 {
		tick = time.Second
	}
	return &ReplayFeed{path: path, tick: tick, log: log}
}

// Run emits one row per tick until the file is exhausted or ctx is
// canceled. Malformed lines are skipped.
func (f *ReplayFeed) Run(ctx context.Context, h Handler) error {
	file, err := os.Open(f.path)
	if err != nil {
		return errors.Wrapf(err, "open replay log %s", f.path)
	}
	defer file.Close()
	f.log.Info("replay feed running", "path", f.path, "tick", f.tick)

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		row, err := decodeRow(scanner.Bytes())
		if err != nil {
			f.log.Debug("skipping replay line", "err", err)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		h(row)
	}
	return errors.Wrap(scanner.Err(), "read replay log")
}
