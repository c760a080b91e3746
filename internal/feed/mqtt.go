package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"manas-planner/internal/config"
	"manas-planner/internal/telemetry"
)

const connectTimeout = 10 * time.Second

// MQTTFeed subscribes to the telemetry topic of the flight-control bridge
// and publishes mission-control commands on the command topic.
type MQTTFeed struct {
	client  mqtt.Client
	cfg     config.MQTT
	log     *slog.Logger
	limiter *rate.Limiter
}

// NewMQTTFeed builds a feed for the configured broker. The connection is
// established in Run.
func NewMQTTFeed(cfg config.MQTT, log *slog.Logger) *MQTTFeed {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true)
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn("mqtt connection lost", "err", err)
	}
	return &MQTTFeed{
		client: mqtt.NewClient(opts),
		cfg:    cfg,
		log:    log,
		// one connect attempt per 5s keeps a flapping broker from
		// turning into a busy loop
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

// Run connects, subscribes, and blocks until ctx is canceled.
func (f *MQTTFeed) Run(ctx context.Context, h Handler) error {
	for {
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}
		tok := f.client.Connect()
		if !tok.WaitTimeout(connectTimeout) {
			f.log.Warn("mqtt connect timed out", "broker", f.cfg.Broker)
			continue
		}
		if tok.Error() != nil {
			f.log.Warn("mqtt connect failed", "broker", f.cfg.Broker, "err", tok.Error())
			continue
		}
		break
	}

	sub := f.client.Subscribe(f.cfg.TelemetryTopic, f.cfg.QoS, func(_ mqtt.Client, msg mqtt.Message) {
		row, err := decodeRow(msg.Payload())
		if err != nil {
			f.log.Debug("dropping malformed telemetry", "topic", msg.Topic(), "err", err)
			return
		}
		h(row)
	})
	if !sub.WaitTimeout(connectTimeout) {
		return errors.Errorf("subscribe %s timed out", f.cfg.TelemetryTopic)
	}
	if sub.Error() != nil {
		return errors.Wrapf(sub.Error(), "subscribe %s", f.cfg.TelemetryTopic)
	}
	f.log.Info("mqtt feed running", "broker", f.cfg.Broker, "topic", f.cfg.TelemetryTopic)

	<-ctx.Done()
	f.client.Disconnect(250)
	return ctx.Err()
}

// PublishCommand sends a mission-control command on the command topic.
func (f *MQTTFeed) PublishCommand(row telemetry.CommandRow) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return errors.Wrap(err, "marshal command")
	}
	tok := f.client.Publish(f.cfg.CommandTopic, f.cfg.QoS, false, payload)
	if !tok.WaitTimeout(connectTimeout) {
		return errors.Errorf("publish %s timed out", row.Command)
	}
	return errors.Wrapf(tok.Error(), "publish %s", row.Command)
}

// decodeRow parses one telemetry payload. Rows without a drone name are
// rejected here; name resolution against the pair happens in the console.
func decodeRow(payload []byte) (telemetry.TelemetryRow, error) {
	var row telemetry.TelemetryRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return telemetry.TelemetryRow{}, err
	}
	if row.Drone == "" {
		return telemetry.TelemetryRow{}, errors.New("missing drone name")
	}
	if row.Timestamp.IsZero() {
		row.Timestamp = time.Now().UTC()
	}
	return row, nil
}
