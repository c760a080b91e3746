package planner

import (
	"math"
	"sync"

	"manas-planner/internal/telemetry"
)

// movedEpsilon is the per-coordinate delta above which a drone counts as
// having moved between two position reports.
const movedEpsilon = 1e-9

// Console owns the global status banner and the per-drone display state.
// It is the only component with cross-cutting logic: it decides, per
// incoming position report, whether the matching card may show it.
//
// Feeds run on their own goroutines, so the console serializes access with
// a mutex; snapshot accessors return copies.
type Console struct {
	mu         sync.Mutex
	globalLive bool
	cards      [droneCount]*StatusCard

	// gpsActive gates position updates per drone. It starts false, while
	// the card's own GPS badge starts unknown; the two diverge until the
	// first explicit SetDroneGPSActive. Kept that way on purpose.
	gpsActive [droneCount]bool

	// lastSeen caches every position received, gated or not.
	lastSeen [droneCount]*telemetry.Position
}

// NewConsole builds a console with both drones offline and all tiles at
// their placeholder values.
func NewConsole() *Console {
	c := &Console{}
	for _, id := range Drones() {
		c.cards[id] = NewStatusCard(id.String())
	}
	return c
}

// SetGlobalLive sets the header status banner. Independent of the per-drone
// flags; no derivation rule ties them together.
func (c *Console) SetGlobalLive(live bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.globalLive = live
}

// SetDroneLive forwards the live flag to the drone's card.
func (c *Console) SetDroneLive(id DroneID, live bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards[id].SetLive(live)
}

// SetDroneGPSActive moves the drone's gate to active or inactive and
// forwards the flag to the card's GPS badge. There is no transition back to
// the unknown badge state after construction.
func (c *Console) SetDroneGPSActive(id DroneID, active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gpsActive[id] = active
	c.cards[id].SetGPSActive(&active)
}

// UpdateDronePosition records a position report. The last-seen cache is
// updated unconditionally; the card's tiles only change while the drone's
// GPS gate is active, so stale coordinates persist on screen until the gate
// reopens and a fresh report arrives.
//
// The returned flag reports whether the drone moved more than movedEpsilon
// in any coordinate since the previous report; the UI uses it to mark a
// drone as in motion.
func (c *Console) UpdateDronePosition(id DroneID, lat, lon, alt float64, updated *string) (moved bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gpsActive[id] {
		c.cards[id].SetPosition(PositionUpdate{
			Latitude:  &lat,
			Longitude: &lon,
			AltitudeM: &alt,
			Updated:   updated,
		})
	}

	prev := c.lastSeen[id]
	moved = prev == nil ||
		math.Abs(prev.Lat-lat) > movedEpsilon ||
		math.Abs(prev.Lon-lon) > movedEpsilon ||
		math.Abs(prev.Alt-alt) > movedEpsilon
	c.lastSeen[id] = &telemetry.Position{Lat: lat, Lon: lon, Alt: alt}
	return moved
}

// SetDroneLiveByName is the string-keyed entry point for feeds. Unrecognized
// names are dropped and reported with ok=false.
func (c *Console) SetDroneLiveByName(name string, live bool) (ok bool) {
	id, ok := ParseDroneID(name)
	if !ok {
		return false
	}
	c.SetDroneLive(id, live)
	return true
}

// SetDroneGPSActiveByName is the string-keyed entry point for feeds.
func (c *Console) SetDroneGPSActiveByName(name string, active bool) (ok bool) {
	id, ok := ParseDroneID(name)
	if !ok {
		return false
	}
	c.SetDroneGPSActive(id, active)
	return true
}

// UpdateDronePositionByName is the string-keyed entry point for feeds.
func (c *Console) UpdateDronePositionByName(name string, lat, lon, alt float64, updated *string) (moved, ok bool) {
	id, ok := ParseDroneID(name)
	if !ok {
		return false, false
	}
	return c.UpdateDronePosition(id, lat, lon, alt, updated), true
}

// Apply routes one telemetry row into the console, honoring the row's
// update flags. Rows for unknown drones are dropped (ok=false); the archive
// still records them upstream of this call.
func (c *Console) Apply(row telemetry.TelemetryRow) (moved, ok bool) {
	id, ok := ParseDroneID(row.Drone)
	if !ok {
		return false, false
	}
	if row.LiveUpdated {
		c.SetDroneLive(id, row.Live)
	}
	if row.GPSUpdated {
		c.SetDroneGPSActive(id, row.GPSActive)
	}
	if row.PositionUpdated {
		var updated *string
		if row.Updated != "" {
			updated = &row.Updated
		}
		moved = c.UpdateDronePosition(id, row.Lat, row.Lon, row.Alt, updated)
	}
	return moved, true
}

// GlobalLive reports the header banner state.
func (c *Console) GlobalLive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalLive
}

// Card returns a copy of the drone's card.
func (c *Console) Card(id DroneID) StatusCard {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.cards[id]
}

// LastSeen returns the most recent position received for the drone,
// regardless of GPS gating.
func (c *Console) LastSeen(id DroneID) (telemetry.Position, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastSeen[id] == nil {
		return telemetry.Position{}, false
	}
	return *c.lastSeen[id], true
}

// DroneSnapshot is one drone's state in a console snapshot.
type DroneSnapshot struct {
	Card     StatusCard          `json:"card"`
	GPSGate  bool                `json:"gps_gate"`
	LastSeen *telemetry.Position `json:"last_seen,omitempty"`
}

// Snapshot is a copy of the entire console state, in sidebar order.
type Snapshot struct {
	GlobalLive bool                      `json:"global_live"`
	Drones     [droneCount]DroneSnapshot `json:"drones"`
}

// Snapshot returns a copy of all display and cache state for the admin
// server and the UI.
func (c *Console) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{GlobalLive: c.globalLive}
	for _, id := range Drones() {
		ds := DroneSnapshot{Card: *c.cards[id], GPSGate: c.gpsActive[id]}
		if p := c.lastSeen[id]; p != nil {
			cp := *p
			ds.LastSeen = &cp
		}
		s.Drones[id] = ds
	}
	return s
}
