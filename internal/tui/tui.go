// Package tui renders the lineage viewport in the terminal.
//
// The terminal is treated as a pixel surface at a fixed cell size, so the
// same engine that drives the web UI drives the terminal view: panning and
// zooming go through the engine and the view projects the resulting scene
// onto the character grid.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/internal/viewport"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Terminal cells approximate this many content pixels.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	panStep = 40.0 // pixels per arrow key press

	chromeRows = 2 // status + help line
)

var (
	styleSource    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleTransform = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleTarget    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleEdge      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleFocused   = lipgloss.NewStyle().Bold(true).Underline(true)
	styleStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleHelp      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model wrapping a viewport engine.
type Model struct {
	eng    *viewport.Engine
	snap   *lineage.Snapshot
	width  int
	height int
	focus  int // index into the snapshot's nodes, toggle target
}

// NewModel creates a terminal viewer over the given snapshot. The model
// owns the engine and closes it on quit.
func NewModel(snap *lineage.Snapshot) Model {
	eng := viewport.New(viewport.Config{})
	eng.Load(snap)
	return Model{eng: eng, snap: snap}
}

// Run starts the interactive viewer and blocks until it exits.
func Run(snap *lineage.Snapshot) error {
	m := NewModel(snap)
	defer m.eng.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eng.SetViewport(m.surfaceSize())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.pan(0, panStep)
		case "down", "j":
			m.pan(0, -panStep)
		case "left", "h":
			m.pan(panStep, 0)
		case "right", "l":
			m.pan(-panStep, 0)
		case "+", "=":
			m.eng.ZoomIn()
		case "-", "_":
			m.eng.ZoomOut()
		case "f":
			m.eng.Fit()
		case "r", "0":
			m.eng.Reset()
		case "tab", "n":
			if len(m.snap.Nodes) > 0 {
				m.focus = (m.focus + 1) % len(m.snap.Nodes)
			}
		case "shift+tab", "p":
			if len(m.snap.Nodes) > 0 {
				m.focus = (m.focus + len(m.snap.Nodes) - 1) % len(m.snap.Nodes)
			}
		case "enter", " ":
			if len(m.snap.Nodes) > 0 {
				m.eng.Toggle(m.snap.Nodes[m.focus].ID)
			}
		case "c":
			m.cycleColumn()
		}
	}
	return m, nil
}

// pan drags the canvas by the given screen delta through the engine's
// state machine, so the terminal and web surfaces share one code path.
func (m Model) pan(dx, dy float64) {
	origin := geo.Point{X: 0, Y: 0}
	m.eng.PointerDown(origin)
	m.eng.PointerMove(geo.Point{X: dx, Y: dy})
	m.eng.PointerUp()
}

// cycleColumn advances the selection through the focused node's columns,
// wrapping back to the first.
func (m Model) cycleColumn() {
	if len(m.snap.Nodes) == 0 {
		return
	}
	cols := m.snap.Nodes[m.focus].Columns
	if len(cols) == 0 {
		return
	}

	current := m.eng.Selected()
	next := cols[0]
	for i, c := range cols {
		if c == current && i+1 < len(cols) {
			next = cols[i+1]
			break
		}
	}
	m.eng.SelectColumn(next)
}

func (m Model) surfaceSize() viewport.Size {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return viewport.Size{
		Width:  float64(m.width) * cellWidth,
		Height: float64(rows) * cellHeight,
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	scene := m.eng.Scene(m.surfaceSize())
	canvas := newCanvas(m.width, m.height-chromeRows)

	for _, e := range scene.Edges {
		canvas.drawEdge(scene.Transform, e)
	}
	for _, n := range scene.Nodes {
		focused := len(m.snap.Nodes) > 0 && n.ID == m.snap.Nodes[m.focus].ID
		canvas.drawNode(scene.Transform, n, focused)
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString("\n")

	focusName := "-"
	if len(m.snap.Nodes) > 0 {
		focusName = m.snap.Nodes[m.focus].ID
	}
	selected := scene.SelectedColumn
	if selected == "" {
		selected = "-"
	}
	b.WriteString(styleStatus.Render(fmt.Sprintf(
		" %s  zoom %.0f%%  focus %s  column %s",
		scene.Mode, scene.Transform.Scale*100, focusName, selected)))
	b.WriteString("\n")
	b.WriteString(styleHelp.Render(" ←↑↓→ pan  +/- zoom  f fit  r reset  tab focus  ⏎ toggle  c column  q quit"))

	return b.String()
}
