package planner

import "fmt"

// Placeholder shown in tiles that have never received a value.
const Placeholder = "--"

// GPSIndicator is the three-valued GPS badge state on a card.
type GPSIndicator int

const (
	GPSUnknown GPSIndicator = iota
	GPSInactive
	GPSActive
)

// StatusCard holds the rendered display state for one drone: status badge,
// GPS indicator, and the four key/value tiles. All values are stored as the
// strings the UI shows; formatting happens exactly once, on update.
type StatusCard struct {
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Live      bool         `json:"live"`
	GPS       string       `json:"gps"`
	GPSState  GPSIndicator `json:"gps_state"`
	Latitude  string       `json:"latitude"`
	Longitude string       `json:"longitude"`
	Altitude  string       `json:"altitude"`
	Updated   string       `json:"updated"`
}

// PositionUpdate carries tile updates for SetPosition. Nil fields leave the
// matching tile untouched; there is deliberately no way to clear a tile back
// to the placeholder.
type PositionUpdate struct {
	Latitude  *float64
	Longitude *float64
	AltitudeM *float64
	Updated   *string
}

// NewStatusCard returns a card with the offline/unknown defaults: every tile
// reads "--", the status badge reads offline, and the GPS badge is unknown
// until the first explicit SetGPSActive.
func NewStatusCard(name string) *StatusCard {
	return &StatusCard{
		Name:      name,
		Status:    "Status: Offline",
		GPS:       "GPS: --",
		GPSState:  GPSUnknown,
		Latitude:  Placeholder,
		Longitude: Placeholder,
		Altitude:  Placeholder,
		Updated:   Placeholder,
	}
}

// SetPosition overwrites only the tiles whose update field is present.
// Latitude and longitude render with 6 decimal places, altitude with 1
// decimal place and a meter suffix. Values are not range-checked; whatever
// the link reports is displayed verbatim.
func (c *StatusCard) SetPosition(u PositionUpdate) {
	if u.Latitude != nil {
		c.Latitude = fmt.Sprintf("%.6f", *u.Latitude)
	}
	if u.Longitude != nil {
		c.Longitude = fmt.Sprintf("%.6f", *u.Longitude)
	}
	if u.AltitudeM != nil {
		c.Altitude = fmt.Sprintf("%.1f m", *u.AltitudeM)
	}
	if u.Updated != nil {
		c.Updated = *u.Updated
	}
}

// SetGPSActive updates the GPS badge. nil renders the unknown state. The
// badge is cosmetic only; position gating is the console's job.
func (c *StatusCard) SetGPSActive(active *bool) {
	switch {
	case active == nil:
		c.GPS = "GPS: --"
		c.GPSState = GPSUnknown
	case *active:
		c.GPS = "GPS: Active"
		c.GPSState = GPSActive
	default:
		c.GPS = "GPS: Inactive"
		c.GPSState = GPSInactive
	}
}

// SetLive updates the status badge. Every call overwrites the label; there
// is no debounce.
func (c *StatusCard) SetLive(live bool) {
	if live {
		c.Status = "Status: Live"
	} else {
		c.Status = "Status: Offline"
	}
	c.Live = live
}
