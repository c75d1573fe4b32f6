// Package widgets provides the Gio UI widgets for the playback window.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/mars-rover/internal/vis/draw"
	"github.com/elektrokombinacija/mars-rover/internal/vis/interact"
	"github.com/elektrokombinacija/mars-rover/internal/vis/state"
)

// Board is the main 2D view of the grid and the rover.
type Board struct {
	state  *state.State
	camera *interact.Camera

	fitPending bool
}

// NewBoard creates a new board widget. The first frame fits the camera
// to the grid.
func NewBoard(st *state.State, camera *interact.Camera) *Board {
	return &Board{
		state:      st,
		camera:     camera,
		fitPending: true,
	}
}

// RequestFit refits the camera to the grid on the next frame.
func (b *Board) RequestFit() {
	b.fitPending = true
}

// Layout renders the board.
func (b *Board) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	// Clip to bounds
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	if b.fitPending && bounds.X > 0 && bounds.Y > 0 {
		minX, minY, maxX, maxY := b.state.Bounds()
		b.camera.FitBounds(minX, minY, maxX, maxY, float32(bounds.X), float32(bounds.Y), 60)
		b.fitPending = false
	}

	// Handle pointer events
	b.handlePointerEvents(gtx)

	b.drawGrid(gtx)
	b.drawObstacles(gtx)

	draw.DrawTrail(gtx, b.state.Trail(), b.camera, draw.ColorTrail, 3)

	if wx, wy, ok := b.state.BlockedTarget(); ok {
		draw.DrawBlockedMarker(gtx, wx, wy, b.camera)
	}

	wx, wy, heading := b.state.CurrentPosition()
	draw.DrawRover(gtx, wx, wy, heading, b.camera, draw.ColorRover)

	return layout.Dimensions{Size: bounds}
}

func (b *Board) drawGrid(gtx layout.Context) {
	width := b.state.Scenario.Grid.Width
	height := b.state.Scenario.Grid.Height
	worldW := float64(width) * state.CellSize
	worldH := float64(height) * state.CellSize

	// Board surface
	x0, y0 := b.camera.WorldToScreen(0, 0)
	x1, y1 := b.camera.WorldToScreen(worldW, worldH)
	surface := image.Rect(int(x0), int(y0), int(x1), int(y1))
	paint.FillShape(gtx.Ops, color.NRGBA{R: 38, G: 42, B: 48, A: 255}, clip.Rect(surface).Op())

	// Cell lines
	lineCol := color.NRGBA{R: 55, G: 60, B: 66, A: 255}
	for i := 0; i <= width; i++ {
		wx := float64(i) * state.CellSize
		sx0, sy0 := b.camera.WorldToScreen(wx, 0)
		sx1, sy1 := b.camera.WorldToScreen(wx, worldH)
		draw.DrawLine(gtx, sx0, sy0, sx1, sy1, 1, lineCol)
	}
	for j := 0; j <= height; j++ {
		wy := float64(j) * state.CellSize
		sx0, sy0 := b.camera.WorldToScreen(0, wy)
		sx1, sy1 := b.camera.WorldToScreen(worldW, wy)
		draw.DrawLine(gtx, sx0, sy0, sx1, sy1, 1, lineCol)
	}
}

func (b *Board) drawObstacles(gtx layout.Context) {
	col := color.NRGBA{R: 150, G: 110, B: 70, A: 255}
	size := float32(state.CellSize) * 0.7 * b.camera.Zoom

	for _, p := range b.state.Scenario.Obstacles {
		wx, wy := b.state.WorldPos(p.X, p.Y)
		sx, sy := b.camera.WorldToScreen(wx, wy)
		draw.FillSquare(gtx, sx, sy, size, col)
	}
}

func (b *Board) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, b)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: b,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			b.camera.HandleEvent(gtx, pe)
		}
	}
}
