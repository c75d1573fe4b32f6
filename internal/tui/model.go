// Package tui implements the interactive drive mode: a live grid view
// driven one keystroke at a time.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
)

// maxLogLines bounds the scrolling event log.
const maxLogLines = 8

// Model is the bubbletea model for drive mode. All rover mutation happens
// in Update, so execution stays single-threaded.
type Model struct {
	runner   *sim.Runner
	sc       *scenario.Scenario
	events   []string
	width    int
	quitting bool
}

// NewModel builds the drive model for a scenario. A nil logger silences
// the rover diagnostics.
func NewModel(sc *scenario.Scenario, log *zap.Logger) (Model, error) {
	rn, err := sim.NewRunner(sc, log)
	if err != nil {
		return Model{}, err
	}
	return Model{runner: rn, sc: sc}, nil
}

// Report returns the rover report for the caller to print after quit.
func (m Model) Report() string {
	return m.runner.Rover().Report()
}

// Trace returns the run record accumulated so far.
func (m Model) Trace() *sim.Trace {
	return m.runner.Trace()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		runes := []rune(msg.String())
		if len(runes) != 1 {
			// Arrow keys and other chords are not rover input.
			return m, nil
		}

		v, ok := rover.ParseVerb(runes[0])
		if !ok {
			m.runner.RecordSkipped(1)
			m.pushEvent(fmt.Sprintf("ignored input %q", string(runes)))
			return m, nil
		}

		step := m.runner.Exec(v)
		m.pushEvent(describe(step))
		return m, nil
	}
	return m, nil
}

func (m *Model) pushEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > maxLogLines {
		m.events = m.events[len(m.events)-maxLogLines:]
	}
}

func describe(step sim.TraceStep) string {
	switch step.Verb {
	case "L":
		return fmt.Sprintf("turned left, facing %s", step.Heading)
	case "R":
		return fmt.Sprintf("turned right, facing %s", step.Heading)
	default:
		if step.Blocked {
			return fmt.Sprintf("movement blocked, still at (%d, %d)", step.X, step.Y)
		}
		return fmt.Sprintf("moved to (%d, %d)", step.X, step.Y)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("marsrover drive · "+m.sc.Name) + "\n\n")
	b.WriteString(gridStyle.Render(m.renderGrid()) + "\n\n")

	r := m.runner.Rover()
	x, y := r.Position()
	met := m.runner.Trace().Metrics
	status := fmt.Sprintf("at (%d, %d) facing %s   moves %d   turns %d   blocked %d   ignored %d",
		x, y, r.Heading(), met.Moves, met.Turns, met.Blocked, met.Skipped)
	b.WriteString(statusStyle.Render(status) + "\n")

	for _, ev := range m.events {
		style := logLineStyle
		if strings.HasPrefix(ev, "movement blocked") {
			style = blockedStyle
		}
		b.WriteString(style.Render("  "+ev) + "\n")
	}

	b.WriteString(helpStyle.Render("\nm move · l turn left · r turn right · q quit"))
	return b.String()
}

// renderGrid draws the plateau top row first, so north points up.
func (m Model) renderGrid() string {
	r := m.runner.Rover()
	g := r.Grid()
	rx, ry := r.Position()

	var rows []string
	for y := g.Height() - 1; y >= 0; y-- {
		var cells []string
		for x := 0; x < g.Width(); x++ {
			switch {
			case x == rx && y == ry:
				cells = append(cells, roverStyle.Render(headingGlyphs[r.Heading().String()]))
			case g.Blocked(x, y):
				cells = append(cells, obstacleStyle.Render("#"))
			default:
				cells = append(cells, emptyCellStyle.Render("·"))
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// Run starts the interactive session and returns the final model.
func Run(sc *scenario.Scenario, log *zap.Logger) (Model, error) {
	m, err := NewModel(sc, log)
	if err != nil {
		return Model{}, err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}
