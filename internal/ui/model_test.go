package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyDispatchesCommands(t *testing.T) {
	cases := []struct {
		key     rune
		command string
		drone   string
	}{
		{'m', telemetry.CommandStartMission, ""},
		{'f', telemetry.CommandKill, "freyja"},
		{'c', telemetry.CommandKill, "cleo"},
	}
	for _, tc := range cases {
		ch := make(chan telemetry.CommandRow, 1)
		m := newModel(Assets{}, planner.NewConsole().Snapshot(), func(row telemetry.CommandRow) { ch <- row })
		mi, _ := m.Update(keyRune(tc.key))
		m = mi.(model)
		select {
		case row := <-ch:
			if row.Command != tc.command || row.Drone != tc.drone {
				t.Fatalf("key %q: got command=%q drone=%q", tc.key, row.Command, row.Drone)
			}
			if row.MessageID == "" {
				t.Fatalf("key %q: missing message id", tc.key)
			}
		case <-time.After(time.Second):
			t.Fatalf("key %q: no command dispatched", tc.key)
		}
		if m.notice == "" {
			t.Fatalf("key %q: expected notice", tc.key)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := newModel(Assets{}, planner.NewConsole().Snapshot(), nil)
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestConsoleMsgUpdatesMovingMarker(t *testing.T) {
	console := planner.NewConsole()
	console.SetDroneGPSActive(planner.Freyja, true)
	moved := console.UpdateDronePosition(planner.Freyja, 12.9716, 77.5946, 45.3, nil)

	m := newModel(Assets{Drone: [2]string{"[drone]", "[drone]"}}, planner.NewConsole().Snapshot(), nil)
	mi, _ := m.Update(consoleMsg{snapshot: console.Snapshot(), movedID: planner.Freyja, movedSet: true, moved: moved})
	m = mi.(model)
	if !m.moving[planner.Freyja] {
		t.Fatalf("expected moving marker set")
	}
	card := m.renderCard(planner.Freyja)
	if !strings.Contains(card, "▲") {
		t.Fatalf("expected marker in card:\n%s", card)
	}
	if !strings.Contains(card, "12.971600") || !strings.Contains(card, "45.3 m") {
		t.Fatalf("expected formatted position in card:\n%s", card)
	}
}

func TestLogToggleAndAppend(t *testing.T) {
	m := newModel(Assets{}, planner.NewConsole().Snapshot(), nil)
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	m = mi.(model)
	if m.showLog {
		t.Fatalf("log should start hidden")
	}
	mi, _ = m.Update(keyRune('l'))
	m = mi.(model)
	if !m.showLog || m.vp.Height == 0 {
		t.Fatalf("expected visible log viewport")
	}
	mi, _ = m.Update(logMsg{line: "row one"})
	m = mi.(model)
	if !strings.Contains(m.vp.View(), "row one") {
		t.Fatalf("expected log line in viewport")
	}
	mi, _ = m.Update(keyRune('l'))
	m = mi.(model)
	if m.showLog {
		t.Fatalf("expected log hidden after toggle")
	}
}

func TestMapPlaceholderWithoutPositions(t *testing.T) {
	m := newModel(Assets{}, planner.NewConsole().Snapshot(), nil)
	out := m.renderMap(40, 10)
	if !strings.Contains(out, "Map") {
		t.Fatalf("expected placeholder, got:\n%s", out)
	}
}

func TestMapPlotsKnownPositions(t *testing.T) {
	console := planner.NewConsole()
	console.SetDroneGPSActive(planner.Freyja, true)
	console.UpdateDronePosition(planner.Freyja, 12.9716, 77.5946, 45.3, nil)
	console.UpdateDronePosition(planner.Cleo, 12.9800, 77.6000, 50.0, nil)

	m := newModel(Assets{}, console.Snapshot(), nil)
	out := m.renderMap(40, 12)
	if !strings.Contains(out, "F") || !strings.Contains(out, "C") {
		t.Fatalf("expected both drone markers, got:\n%s", out)
	}
	if !strings.Contains(out, "lat ") {
		t.Fatalf("expected bounds header, got:\n%s", out)
	}
}
