package main

import (
	"log/slog"
	"os"

	"manas-planner/internal/archive"
)

// newSinks assembles the archive writers behind the console based on flags
// and env vars. It returns a fan-out writer and a cleanup function to close
// any resources.
func newSinks(printOnly bool, logFile string, log *slog.Logger) (*archive.MultiWriter, func(), error) {
	cleanup := func() {}

	var tws []archive.TelemetryWriter
	var cws []archive.CommandWriter

	base, err := baseSink(printOnly, log)
	if err != nil {
		return nil, nil, err
	}
	if base != nil {
		tws = append(tws, base)
		if cw, ok := base.(archive.CommandWriter); ok {
			cws = append(cws, cw)
		}
	}

	if logFile != "" {
		fw, err := archive.NewFileWriter(logFile, logFile+".commands")
		if err != nil {
			return nil, nil, err
		}
		tws = append(tws, fw)
		cws = append(cws, fw)
		cleanup = func() { fw.Close() }
	}

	return archive.NewMultiWriter(tws, cws), cleanup, nil
}

// baseSink chooses the underlying sink based on printOnly and env vars.
// Without a GreptimeDB endpoint the TUI is the only live view, so there is
// no base sink at all.
func baseSink(printOnly bool, log *slog.Logger) (archive.TelemetryWriter, error) {
	if printOnly {
		return archive.NewStdoutWriter(), nil
	}
	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}
	cmdTable := os.Getenv("PLANNER_COMMAND_TABLE")
	return archive.NewGreptimeDBWriter(endpoint, "public", cmdTable, log)
}
