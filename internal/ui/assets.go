package ui

import (
	"os"
	"path/filepath"
	"strings"

	"manas-planner/internal/planner"
)

// Fallback text shown when no banner file is found.
const (
	fallbackLogo  = "PROJECT MANAS"
	fallbackDrone = "[drone]"
)

// Assets holds the text banners shown in the header and on the cards.
type Assets struct {
	Logo  string
	Drone [2]string
}

// loadBanner returns the first readable, non-empty file among paths.
func loadBanner(paths ...string) (string, bool) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		text := strings.TrimRight(string(data), "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, true
	}
	return "", false
}

// LoadAssets resolves banner art from dir, falling back per drone to the
// generic banner and finally to plain text.
func LoadAssets(dir string) Assets {
	a := Assets{}
	if logo, ok := loadBanner(filepath.Join(dir, "manas-logo.txt"), filepath.Join(dir, "logo.txt")); ok {
		a.Logo = logo
	} else {
		a.Logo = fallbackLogo
	}
	for _, id := range planner.Drones() {
		name := strings.ToLower(id.String())
		if art, ok := loadBanner(filepath.Join(dir, name+".txt"), filepath.Join(dir, "drone.txt")); ok {
			a.Drone[id] = art
		} else {
			a.Drone[id] = fallbackDrone
		}
	}
	return a
}
