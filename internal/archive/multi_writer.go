package archive

import "manas-planner/internal/telemetry"

// MultiWriter fans telemetry and command rows out to multiple writers.
type MultiWriter struct {
	telewriters []TelemetryWriter
	cmdwriters  []CommandWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(tws []TelemetryWriter, cws []CommandWriter) *MultiWriter {
	return &MultiWriter{telewriters: tws, cmdwriters: cws}
}

// Write sends a telemetry row to all writers.
func (mw *MultiWriter) Write(row telemetry.TelemetryRow) error {
	for _, w := range mw.telewriters {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple telemetry rows to all writers, using batch mode
// where supported.
func (mw *MultiWriter) WriteBatch(rows []telemetry.TelemetryRow) error {
	for _, w := range mw.telewriters {
		if bw, ok := w.(batchWriter); ok {
			if err := bw.WriteBatch(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.Write(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteCommand sends a command row to all command writers.
func (mw *MultiWriter) WriteCommand(row telemetry.CommandRow) error {
	for _, w := range mw.cmdwriters {
		if err := w.WriteCommand(row); err != nil {
			return err
		}
	}
	return nil
}
