package ui

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
)

// Window renders the planner console using a bubbletea TUI. It implements
// the telemetry writer interfaces so it joins the sink fan-out like any
// other archive writer.
type Window struct {
	program    teaProgram
	console    *planner.Console
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewWindow starts a bubbletea program and returns a Window. Commands
// triggered by key bindings are dispatched through send.
func NewWindow(console *planner.Console, assets Assets, send func(telemetry.CommandRow)) *Window {
	w := &Window{console: console, done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newModel(assets, console.Snapshot(), send)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_ = p.Start()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// Write applies a telemetry row to the console and refreshes the view.
func (w *Window) Write(row telemetry.TelemetryRow) error {
	moved, ok := w.console.Apply(row)

	liveColor := colorRed
	if row.Live {
		liveColor = colorGreen
	}
	gpsColor := colorRed
	if row.GPSActive {
		gpsColor = colorGreen
	}
	line := fmt.Sprintf("%s[%s]%s %sdrone=%s%s %slat=%.6f%s %slon=%.6f%s %salt=%.1f%s %slive=%t%s %sgps=%t%s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.Drone, colorReset,
		colorGreen, row.Lat, colorReset,
		colorYellow, row.Lon, colorReset,
		colorGreen, row.Alt, colorReset,
		liveColor, row.Live, colorReset,
		gpsColor, row.GPSActive, colorReset)
	if !ok {
		line += fmt.Sprintf(" %sdropped%s", colorRed, colorReset)
	}
	w.program.Send(logMsg{line: line})

	msg := consoleMsg{snapshot: w.console.Snapshot()}
	if ok && row.PositionUpdated {
		if id, found := planner.ParseDroneID(row.Drone); found {
			msg.movedID = id
			msg.movedSet = true
			msg.moved = moved
		}
	}
	w.program.Send(msg)
	return nil
}

// WriteBatch applies multiple telemetry rows.
func (w *Window) WriteBatch(rows []telemetry.TelemetryRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteCommand echoes an outgoing command to the event log.
func (w *Window) WriteCommand(row telemetry.CommandRow) error {
	line := fmt.Sprintf("%s[%s]%s %sCOMMAND%s %s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorRed, colorReset,
		row.Command)
	if row.Drone != "" {
		line += fmt.Sprintf(" %sdrone=%s%s", colorBlue, row.Drone, colorReset)
	}
	w.program.Send(logMsg{line: line})
	return nil
}

// SetGlobalLive updates the mission status shown in the header.
func (w *Window) SetGlobalLive(live bool) {
	w.console.SetGlobalLive(live)
	w.program.Send(consoleMsg{snapshot: w.console.Snapshot()})
}

// Notify puts a message on the footer notice line.
func (w *Window) Notify(text string) {
	w.program.Send(noticeMsg{text: text})
}

// Close shuts down the TUI program and waits for cleanup.
func (w *Window) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}
