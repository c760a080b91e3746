package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"manas-planner/internal/feed"
	"manas-planner/internal/logging"
	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
)

var (
	replayInput string
	replayTick  time.Duration
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an archived telemetry log",
	Long:  "replay feeds telemetry rows from a JSONL log back through the console state and prints them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		log := logging.New(slog.LevelInfo)
		sinks, cleanup, err := newSinks(true, "", log)
		if err != nil {
			return err
		}
		defer cleanup()

		console := planner.NewConsole()
		f := feed.NewReplayFeed(replayInput, replayTick, log)
		return f.Run(context.Background(), func(row telemetry.TelemetryRow) {
			console.Apply(row)
			_ = sinks.Write(row)
		})
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to telemetry log file")
	replayCmd.Flags().DurationVar(&replayTick, "tick", time.Second, "Delay between replayed rows (e.g. 500ms)")
	replayCmd.MarkFlagRequired("input")
}
