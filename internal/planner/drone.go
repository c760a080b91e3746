// Display-state core for the two-drone planner console.
package planner

import "strings"

// DroneID identifies one of the two mission drones. The pair is closed at
// compile time; config and feeds cannot grow it.
type DroneID int

const (
	Freyja DroneID = iota
	Cleo

	droneCount
)

var droneNames = [droneCount]string{"Freyja", "Cleo"}

func (d DroneID) String() string {
	if d < 0 || d >= droneCount {
		return "unknown"
	}
	return droneNames[d]
}

// ParseDroneID resolves a free-form drone name against the fixed pair.
// Matching is case-insensitive and whitespace-trimmed. This is the single
// place identity strings are interpreted; callers receiving ok=false are
// expected to drop the update.
func ParseDroneID(name string) (DroneID, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "freyja":
		return Freyja, true
	case "cleo":
		return Cleo, true
	}
	return 0, false
}

// Drones lists both drones in sidebar display order.
func Drones() [droneCount]DroneID {
	return [droneCount]DroneID{Freyja, Cleo}
}
