package rover

import (
	"fmt"

	"go.uber.org/zap"
)

// Rover is the vehicle state machine: a cell position, a heading, and the
// grid it consults before every move. All operations are total; a move
// that cannot be taken leaves the rover where it is.
type Rover struct {
	x, y    int
	heading Direction
	grid    *Grid
	log     *zap.Logger
}

// NewRover places a rover on the grid. A nil logger silences the
// blocked-move diagnostics.
func NewRover(g *Grid, x, y int, heading Direction, log *zap.Logger) *Rover {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rover{x: x, y: y, heading: heading, grid: g, log: log}
}

// Position returns the current cell.
func (r *Rover) Position() (int, int) {
	return r.x, r.y
}

// Heading returns the current heading.
func (r *Rover) Heading() Direction {
	return r.heading
}

// Grid returns the grid the rover drives on.
func (r *Rover) Grid() *Grid {
	return r.grid
}

// TurnLeft rotates the rover 90 degrees counter-clockwise in place.
func (r *Rover) TurnLeft() {
	r.heading = r.heading.Left()
}

// TurnRight rotates the rover 90 degrees clockwise in place.
func (r *Rover) TurnRight() {
	r.heading = r.heading.Right()
}

// MoveForward advances one cell along the current heading. The move is
// rejected when the target cell is off the grid or holds an obstacle: the
// rover stays put and the rejected target is logged. Reports whether the
// rover moved.
func (r *Rover) MoveForward() bool {
	nx, ny := r.heading.Move(r.x, r.y)
	if !r.grid.WithinBounds(nx, ny) || r.grid.Blocked(nx, ny) {
		r.log.Warn("movement blocked",
			zap.Int("x", nx),
			zap.Int("y", ny),
			zap.String("heading", r.heading.String()))
		return false
	}
	r.x, r.y = nx, ny
	return true
}

// Report describes the rover state, e.g. "Rover is at (1, 3) facing N".
func (r *Rover) Report() string {
	return fmt.Sprintf("Rover is at (%d, %d) facing %s", r.x, r.y, r.heading)
}
