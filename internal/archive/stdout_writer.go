package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"manas-planner/internal/telemetry"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// StdoutWriter prints rows to STDOUT: colorized key=value lines on a
// terminal, JSON lines otherwise.
type StdoutWriter struct {
	out      io.Writer
	colorize bool
}

// NewStdoutWriter creates a StdoutWriter, colorizing when STDOUT is a
// terminal.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{
		out:      os.Stdout,
		colorize: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Write outputs a single telemetry row.
func (w *StdoutWriter) Write(row telemetry.TelemetryRow) error {
	if !w.colorize {
		data, _ := json.Marshal(row)
		fmt.Fprintln(w.out, string(data))
		return nil
	}

	liveColor := colorRed
	if row.Live {
		liveColor = colorGreen
	}
	gpsColor := colorRed
	if row.GPSActive {
		gpsColor = colorGreen
	}
	fmt.Fprintf(w.out, "%s[%s]%s ", colorGray, row.Timestamp.Format(time.RFC3339), colorReset)
	fmt.Fprintf(w.out, "%sdrone=%s%s ", colorBlue, row.Drone, colorReset)
	fmt.Fprintf(w.out, "%slat=%.6f%s ", colorGreen, row.Lat, colorReset)
	fmt.Fprintf(w.out, "%slon=%.6f%s ", colorYellow, row.Lon, colorReset)
	fmt.Fprintf(w.out, "%salt=%.1f%s ", colorMagenta, row.Alt, colorReset)
	fmt.Fprintf(w.out, "%slive=%t%s ", liveColor, row.Live, colorReset)
	fmt.Fprintf(w.out, "%sgps=%t%s", gpsColor, row.GPSActive, colorReset)
	if row.Updated != "" {
		fmt.Fprintf(w.out, " %supdated=%s%s", colorCyan, row.Updated, colorReset)
	}
	fmt.Fprintln(w.out)
	return nil
}

// WriteBatch outputs multiple telemetry rows.
func (w *StdoutWriter) WriteBatch(rows []telemetry.TelemetryRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteCommand outputs a mission-control command.
func (w *StdoutWriter) WriteCommand(row telemetry.CommandRow) error {
	if !w.colorize {
		data, _ := json.Marshal(row)
		fmt.Fprintln(w.out, string(data))
		return nil
	}
	fmt.Fprintf(w.out, "%s[%s]%s %sCOMMAND%s cmd=%s", colorGray, row.Timestamp.Format(time.RFC3339), colorReset, colorRed, colorReset, row.Command)
	if row.Drone != "" {
		fmt.Fprintf(w.out, " drone=%s", row.Drone)
	}
	fmt.Fprintln(w.out)
	return nil
}
