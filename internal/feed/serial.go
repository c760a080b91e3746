package feed

import (
	"bufio"
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"manas-planner/internal/config"
	"manas-planner/internal/telemetry"
)

// SerialFeed reads NMEA sentences from a GPS bridge on a serial port and
// attributes every fix to the configured drone.
type SerialFeed struct {
	cfg config.Serial
	log *slog.Logger

	// lastAlt carries altitude across RMC sentences, which have none.
	lastAlt float64

	open func(port string, mode *serial.Mode) (serial.Port, error)
}

// NewSerialFeed builds a feed for the configured port.
func NewSerialFeed(cfg config.Serial, log *slog.Logger) *SerialFeed {
	return &SerialFeed{cfg: cfg, log: log, open: serial.Open}
}

// Run opens the port and streams rows until ctx is canceled or the port
// fails.
func (f *SerialFeed) Run(ctx context.Context, h Handler) error {
	port, err := f.open(f.cfg.Port, &serial.Mode{BaudRate: f.cfg.BaudRate})
	if err != nil {
		return errors.Wrapf(err, "open %s", f.cfg.Port)
	}
	defer port.Close()
	go func() {
		<-ctx.Done()
		port.Close()
	}()
	f.log.Info("serial feed running", "port", f.cfg.Port, "baud", f.cfg.BaudRate, "drone", f.cfg.Drone)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		row, ok := f.rowFromSentence(scanner.Text())
		if !ok {
			continue
		}
		h(row)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return errors.Wrap(scanner.Err(), "serial read")
}

// rowFromSentence converts one NMEA line into a telemetry row. Sentences of
// unsupported types or with bad checksums are skipped.
func (f *SerialFeed) rowFromSentence(line string) (telemetry.TelemetryRow, bool) {
	fix, err := ParseSentence(line)
	if err != nil {
		f.log.Debug("skipping NMEA sentence", "err", err)
		return telemetry.TelemetryRow{}, false
	}
	row := telemetry.TelemetryRow{
		Drone:      f.cfg.Drone,
		GPSActive:  fix.Valid,
		GPSUpdated: true,
		Timestamp:  time.Now().UTC(),
	}
	if fix.Valid {
		row.Lat = fix.Lat
		row.Lon = fix.Lon
		if fix.HasAlt {
			f.lastAlt = fix.Alt
		}
		row.Alt = f.lastAlt
		row.Updated = fix.Time
		row.PositionUpdated = true
	}
	return row, true
}
