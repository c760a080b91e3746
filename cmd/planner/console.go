package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"manas-planner/internal/admin"
	"manas-planner/internal/config"
	"manas-planner/internal/feed"
	"manas-planner/internal/logging"
	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
	"manas-planner/internal/ui"
)

var (
	consoleConfigPath string
	consoleSchemaPath string
	consolePrintOnly  bool
	consoleLogFile    string
	consoleVerbose    bool
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the mission planner console",
	Long:  "console starts the two-drone ground station: telemetry feed, status cards, and mission command keys.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(consoleConfigPath, consoleSchemaPath)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if consoleVerbose {
			level = slog.LevelDebug
		}
		log := logging.New(level)

		logFile := consoleLogFile
		if logFile == "" {
			logFile = cfg.Archive.LogFile
		}
		sinks, cleanup, err := newSinks(consolePrintOnly, logFile, log)
		if err != nil {
			return err
		}
		defer cleanup()

		console := planner.NewConsole()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		source, commander, err := newSource(cfg, log)
		if err != nil {
			return err
		}

		var window *ui.Window
		send := func(row telemetry.CommandRow) {
			if commander != nil {
				if err := commander.PublishCommand(row); err != nil {
					log.Error("publish command", "command", row.Command, "err", err)
				}
			}
			if window != nil {
				_ = window.WriteCommand(row)
			}
			_ = sinks.WriteCommand(row)
		}
		if !consolePrintOnly {
			window = ui.NewWindow(console, ui.LoadAssets(cfg.AssetsDir), send)
			defer window.Close()
		}

		// The mission goes live with the first row off the feed.
		var liveOnce sync.Once
		handler := func(row telemetry.TelemetryRow) {
			liveOnce.Do(func() {
				if window != nil {
					window.SetGlobalLive(true)
				} else {
					console.SetGlobalLive(true)
				}
			})
			if window != nil {
				_ = window.Write(row)
			} else {
				console.Apply(row)
			}
			_ = sinks.Write(row)
		}

		srv := admin.NewServer(console)
		go func() {
			log.Info("admin server listening", "addr", cfg.AdminAddr)
			if err := srv.Start(cfg.AdminAddr); err != nil && err != http.ErrServerClosed {
				log.Error("admin server failed", "err", err)
			}
		}()

		go func() {
			if err := source.Run(ctx, handler); err != nil && ctx.Err() == nil {
				log.Error("feed stopped", "err", err)
				if window != nil {
					window.Notify(fmt.Sprintf("feed stopped: %v", err))
				}
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		cancel()
		log.Info("planner console stopped")
		return nil
	},
}

// newSource builds the telemetry source named by the config.
func newSource(cfg *config.PlannerConfig, log *slog.Logger) (feed.Source, feed.Commander, error) {
	switch cfg.Feed.Source {
	case "mqtt":
		f := feed.NewMQTTFeed(cfg.Feed.MQTT, log)
		return f, f, nil
	case "serial":
		return feed.NewSerialFeed(cfg.Feed.Serial, log), nil, nil
	case "replay":
		return feed.NewReplayFeed(cfg.Feed.Replay.Path, cfg.Feed.Replay.Interval(), log), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown feed source %q", cfg.Feed.Source)
}

func init() {
	consoleCmd.Flags().StringVar(&consoleConfigPath, "config", "config/planner.yaml", "Path to planner configuration YAML")
	consoleCmd.Flags().StringVar(&consoleSchemaPath, "schema", "schemas/planner.cue", "Path to CUE schema file")
	consoleCmd.Flags().BoolVar(&consolePrintOnly, "print-only", false, "Print telemetry to STDOUT instead of starting the TUI")
	consoleCmd.Flags().StringVar(&consoleLogFile, "log-file", "", "Path to export telemetry/command logs (JSONL)")
	consoleCmd.Flags().BoolVar(&consoleVerbose, "verbose", false, "Enable debug logging")
}
