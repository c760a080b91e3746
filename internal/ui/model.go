package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"manas-planner/internal/planner"
	"manas-planner/internal/telemetry"
)

const (
	sidebarWidth = 34
	maxLogLines  = 500
)

// logMsg carries a log line for the event viewport.
type logMsg struct{ line string }

// consoleMsg carries a fresh console snapshot, with movement info when the
// triggering row was a position update.
type consoleMsg struct {
	snapshot planner.Snapshot
	movedID  planner.DroneID
	movedSet bool
	moved    bool
}

// noticeMsg updates the footer notice line.
type noticeMsg struct{ text string }

type model struct {
	assets   Assets
	snapshot planner.Snapshot
	moving   [2]bool
	send     func(telemetry.CommandRow)

	logs    []string
	vp      viewport.Model
	showLog bool
	notice  string

	width  int
	height int
}

func newModel(assets Assets, snapshot planner.Snapshot, send func(telemetry.CommandRow)) model {
	return model{
		assets:   assets,
		snapshot: snapshot,
		send:     send,
		vp:       viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.updateViewportHeight()
		m.refreshViewport()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.dispatch(telemetry.NewCommand(telemetry.CommandStartMission, ""))
			m.notice = "start mission sent"
		case "f":
			m.dispatch(telemetry.NewCommand(telemetry.CommandKill, "freyja"))
			m.notice = "kill sent to Freyja"
		case "c":
			m.dispatch(telemetry.NewCommand(telemetry.CommandKill, "cleo"))
			m.notice = "kill sent to Cleo"
		case "l":
			m.showLog = !m.showLog
			m.updateViewportHeight()
			m.refreshViewport()
		case "j", "down":
			if m.showLog {
				m.vp.LineDown(1)
			}
		case "k", "up":
			if m.showLog {
				m.vp.LineUp(1)
			}
		}
	case logMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		m.refreshViewport()
	case consoleMsg:
		m.snapshot = msg.snapshot
		if msg.movedSet {
			m.moving[msg.movedID] = msg.moved
		}
	case noticeMsg:
		m.notice = msg.text
	}
	return m, nil
}

func (m model) dispatch(row telemetry.CommandRow) {
	if m.send != nil {
		go m.send(row)
	}
}

func (m *model) updateViewportHeight() {
	h := 0
	if m.showLog {
		h = m.height / 4
		if h < 3 {
			h = 3
		}
	}
	m.vp.Height = h
}

func (m *model) refreshViewport() {
	var lines []string
	for _, l := range m.logs {
		lines = append(lines, wordwrap.String(l, m.vp.Width))
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.GotoBottom()
}

func (m model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if m.showLog {
		bodyHeight -= m.vp.Height + 1
	}
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := m.renderBody(bodyHeight)

	sections := []string{header, body}
	if m.showLog {
		sections = append(sections, "Events:", m.vp.View())
	}
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (m model) renderHeader() string {
	status := offlineStyle.Render("Status: Offline")
	if m.snapshot.GlobalLive {
		status = liveStyle.Render("Status: Live")
	}
	logo := logoStyle.Render(m.assets.Logo)
	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", gap), status)
	return headerStyle.Width(max(m.width, lipgloss.Width(line))).Render(line)
}

func (m model) renderBody(height int) string {
	sidebar := m.renderSidebar()
	mapWidth := m.width - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapPane := mapStyle.Height(height).Render(m.renderMap(mapWidth, height))
	return lipgloss.JoinHorizontal(lipgloss.Top, mapPane, sidebar)
}

func (m model) renderSidebar() string {
	var cards []string
	for _, id := range planner.Drones() {
		cards = append(cards, m.renderCard(id))
	}
	buttons := hintStyle.Render("[m] start mission\n[f] kill Freyja   [c] kill Cleo")
	cards = append(cards, buttons)
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(cards, "\n"))
}

func (m model) renderCard(id planner.DroneID) string {
	card := m.snapshot.Drones[id].Card
	inner := sidebarWidth - 4

	name := cardNameStyle.Render(card.Name)
	if m.moving[id] {
		name += " " + movingStyle.Render("▲")
	}

	status := offlineStyle.Render(card.Status)
	if card.Live {
		status = liveStyle.Render(card.Status)
	}

	var gps string
	switch card.GPSState {
	case planner.GPSActive:
		gps = liveStyle.Render(card.GPS)
	case planner.GPSInactive:
		gps = offlineStyle.Render(card.GPS)
	default:
		gps = unknownStyle.Render(card.GPS)
	}

	lines := []string{
		center(name, inner),
		center(droneArtStyle.Render(m.assets.Drone[id]), inner),
		center(status, inner),
		kvRow("Latitude", card.Latitude, "Longitude", card.Longitude, inner),
		kvRow("Altitude", card.Altitude, "Updated", card.Updated, inner),
		center(gps, inner),
	}
	return cardStyle.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

// kvRow renders two key/value tiles side by side.
func kvRow(k1, v1, k2, v2 string, width int) string {
	half := width / 2
	left := kvKeyStyle.Render(k1) + "\n" + kvValueStyle.Render(v1)
	right := kvKeyStyle.Render(k2) + "\n" + kvValueStyle.Render(v2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		lipgloss.NewStyle().Width(width-half).Render(right))
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func (m model) renderFooter() string {
	hints := hintStyle.Render("q quit · m mission · f/c kill · l log · j/k scroll")
	if m.notice == "" {
		return hints
	}
	return fmt.Sprintf("%s  %s", hints, noticeStyle.Render(m.notice))
}
