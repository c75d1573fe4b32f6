// Package vis implements the Gio playback window for recorded missions.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
	"github.com/elektrokombinacija/mars-rover/internal/vis/interact"
	"github.com/elektrokombinacija/mars-rover/internal/vis/state"
	"github.com/elektrokombinacija/mars-rover/internal/vis/widgets"
)

// App is the playback application.
type App struct {
	state    *state.State
	theme    *material.Theme
	board    *widgets.Board
	timeline *widgets.Timeline
	toolbar  *widgets.Toolbar
}

// NewApp runs the command sequence against the scenario and prepares
// the playback of the recorded trace.
func NewApp(sc *scenario.Scenario, verbs []rover.Verb, log *zap.Logger) (*App, error) {
	runner, err := sim.NewRunner(sc, log)
	if err != nil {
		return nil, err
	}
	runner.Run(verbs)

	st := state.NewState(sc, runner.Trace())
	camera := interact.NewCamera()
	board := widgets.NewBoard(st, camera)

	return &App{
		state:    st,
		theme:    material.NewTheme(),
		board:    board,
		timeline: widgets.NewTimeline(st),
		toolbar:  widgets.NewToolbar(st, board),
	}, nil
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filter tag for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			// Request continuous redraws during playback
			if a.state.Playback.Playing {
				a.state.Playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.state.Playback.TogglePlay()
	case key.NameLeftArrow:
		a.state.Playback.StepBack()
	case key.NameRightArrow:
		a.state.Playback.StepForward()
	case key.NameHome:
		a.state.Playback.Reset()
	case "R":
		a.board.RequestFit()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Board in the middle
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.board.Layout(gtx, a.theme)
		}),
		// Timeline at bottom
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.timeline.Layout(gtx, a.theme)
		}),
	)
}
