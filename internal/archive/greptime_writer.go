package archive

import (
	"context"
	"log/slog"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"manas-planner/internal/telemetry"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter archives telemetry to GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client   greptimeClient
	table    string
	cmdTable string
	log      *slog.Logger
}

// NewGreptimeDBWriter connects to GreptimeDB. cmdTable may be empty to skip
// command archiving.
func NewGreptimeDBWriter(host, database, cmdTable string, log *slog.Logger) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{
		client:   client,
		table:    telemetry.TelemetryTableName,
		cmdTable: cmdTable,
		log:      log,
	}, nil
}

// Write inserts a single telemetry row.
func (w *GreptimeDBWriter) Write(row telemetry.TelemetryRow) error {
	return w.WriteBatch([]telemetry.TelemetryRow{row})
}

// WriteBatch inserts multiple telemetry rows.
func (w *GreptimeDBWriter) WriteBatch(rows []telemetry.TelemetryRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("drone", types.STRING); err != nil {
		return err
	}
	tbl.AddFieldColumn("lat", types.FLOAT64)
	tbl.AddFieldColumn("lon", types.FLOAT64)
	tbl.AddFieldColumn("alt", types.FLOAT64)
	tbl.AddFieldColumn("live", types.BOOLEAN)
	tbl.AddFieldColumn("gps_active", types.BOOLEAN)
	tbl.AddFieldColumn("updated", types.STRING)
	tbl.AddFieldColumn("message_id", types.STRING)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, r := range rows {
		if err := tbl.AddRow(r.Drone, r.Lat, r.Lon, r.Alt, r.Live, r.GPSActive, r.Updated, r.MessageID, r.Timestamp); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		w.log.Error("greptime write failed", "table", w.table, "err", err)
		return err
	}
	w.log.Debug("greptime wrote rows", "table", w.table, "count", len(rows))
	return nil
}

// WriteCommand inserts an outbound command row, if command archiving is
// enabled.
func (w *GreptimeDBWriter) WriteCommand(row telemetry.CommandRow) error {
	if w.cmdTable == "" {
		return nil
	}
	tbl, err := table.New(w.cmdTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("command", types.STRING); err != nil {
		return err
	}
	tbl.AddFieldColumn("drone", types.STRING)
	tbl.AddFieldColumn("message_id", types.STRING)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)
	if err := tbl.AddRow(row.Command, row.Drone, row.MessageID, row.Timestamp); err != nil {
		return err
	}
	_, err = w.client.Write(context.Background(), tbl)
	return err
}
