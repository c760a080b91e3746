// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"manas-planner/internal/planner"
)

// MQTT configures the broker link used for telemetry and commands.
type MQTT struct {
	Broker         string `yaml:"broker"`
	ClientID       string `yaml:"client_id"`
	TelemetryTopic string `yaml:"telemetry_topic"`
	CommandTopic   string `yaml:"command_topic"`
	QoS            byte   `yaml:"qos"`
}

// Serial configures the NMEA bridge port. Sentences read from the port are
// attributed to the configured drone.
type Serial struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
	Drone    string `yaml:"drone"`
}

// Replay configures JSONL telemetry playback.
type Replay struct {
	Path string `yaml:"path"`
	Tick string `yaml:"tick"` // duration string, e.g. "500ms"
}

// Interval parses the replay tick, falling back to one second.
func (r Replay) Interval() time.Duration {
	d, err := time.ParseDuration(r.Tick)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// Feed selects and configures the telemetry source.
type Feed struct {
	Source string `yaml:"source"` // "mqtt", "serial", or "replay"
	MQTT   MQTT   `yaml:"mqtt"`
	Serial Serial `yaml:"serial"`
	Replay Replay `yaml:"replay"`
}

// Archive configures where received telemetry rows are persisted.
type Archive struct {
	LogFile string `yaml:"log_file"` // JSONL export, empty to disable
}

// PlannerConfig is the root configuration for the console.
type PlannerConfig struct {
	Feed      Feed    `yaml:"feed"`
	Archive   Archive `yaml:"archive"`
	AssetsDir string  `yaml:"assets_dir"`
	AdminAddr string  `yaml:"admin_addr"`
}

// Load loads YAML config and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*PlannerConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg PlannerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.Feed.Source == "serial" && cfg.Feed.Serial.Drone != "" {
		// Fail early instead of silently dropping every sentence later.
		if _, ok := planner.ParseDroneID(cfg.Feed.Serial.Drone); !ok {
			return nil, fmt.Errorf("serial feed drone %q is not part of the pair", cfg.Feed.Serial.Drone)
		}
	}

	return &cfg, nil
}

func (c *PlannerConfig) applyDefaults() {
	if c.Feed.Source == "" {
		c.Feed.Source = "mqtt"
	}
	if c.Feed.MQTT.ClientID == "" {
		c.Feed.MQTT.ClientID = "manas-planner"
	}
	if c.Feed.MQTT.TelemetryTopic == "" {
		c.Feed.MQTT.TelemetryTopic = "planner/telemetry"
	}
	if c.Feed.MQTT.CommandTopic == "" {
		c.Feed.MQTT.CommandTopic = "planner/commands"
	}
	if c.Feed.Serial.BaudRate == 0 {
		c.Feed.Serial.BaudRate = 9600
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	if c.AdminAddr == "" {
		c.AdminAddr = ":8080"
	}
}
