// Package state manages playback state for a recorded rover trace.
package state

import (
	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
)

// CellSize is the world-unit edge length of one grid cell.
const CellSize = 50.0

// Pose is the rover position and heading at a step boundary.
type Pose struct {
	X, Y    int
	Heading rover.Direction
}

// State holds everything the playback widgets render: the scenario, the
// finished trace and the pose timeline derived from it.
type State struct {
	Scenario *scenario.Scenario
	Trace    *sim.Trace
	Playback *PlaybackState

	poses []Pose // poses[k] is the rover state after k committed steps
}

// NewState precomputes the pose timeline of a finished trace. The
// scenario is expected to be validated.
func NewState(sc *scenario.Scenario, trace *sim.Trace) *State {
	start, _ := rover.ParseDirection(sc.Rover.Heading)
	poses := make([]Pose, 0, len(trace.Steps)+1)
	poses = append(poses, Pose{X: sc.Rover.X, Y: sc.Rover.Y, Heading: start})
	for _, st := range trace.Steps {
		h, _ := rover.ParseDirection(st.Heading)
		poses = append(poses, Pose{X: st.X, Y: st.Y, Heading: h})
	}

	return &State{
		Scenario: sc,
		Trace:    trace,
		Playback: NewPlaybackState(len(trace.Steps)),
		poses:    poses,
	}
}

// PoseAt returns the pose after k committed steps, clamping k to the
// timeline.
func (s *State) PoseAt(k int) Pose {
	if k < 0 {
		k = 0
	}
	if k > len(s.poses)-1 {
		k = len(s.poses) - 1
	}
	return s.poses[k]
}

// WorldPos maps a cell to the world coordinates of its center. Rows are
// flipped so north points up on screen.
func (s *State) WorldPos(x, y int) (float64, float64) {
	wx := (float64(x) + 0.5) * CellSize
	wy := (float64(s.Scenario.Grid.Height-1-y) + 0.5) * CellSize
	return wx, wy
}

// Bounds returns the world rectangle covered by the grid.
func (s *State) Bounds() (minX, minY, maxX, maxY float64) {
	return 0, 0, float64(s.Scenario.Grid.Width) * CellSize, float64(s.Scenario.Grid.Height) * CellSize
}

// CurrentPosition returns the interpolated world position and the heading
// at the current playback time. The heading snaps when a step commits.
func (s *State) CurrentPosition() (wx, wy float64, heading rover.Direction) {
	t := s.Playback.CurrentTime
	k := int(t)
	frac := t - float64(k)

	from := s.PoseAt(k)
	fx, fy := s.WorldPos(from.X, from.Y)
	if frac == 0 || k >= len(s.poses)-1 {
		return fx, fy, from.Heading
	}

	to := s.PoseAt(k + 1)
	tx, ty := s.WorldPos(to.X, to.Y)
	return fx + frac*(tx-fx), fy + frac*(ty-fy), from.Heading
}

// StepInProgress returns the trace step being animated at the current
// playback time. On exact step boundaries nothing is mid-flight.
func (s *State) StepInProgress() (sim.TraceStep, bool) {
	t := s.Playback.CurrentTime
	k := int(t)
	if t == float64(k) || k >= len(s.Trace.Steps) {
		return sim.TraceStep{}, false
	}
	return s.Trace.Steps[k], true
}

// BlockedTarget returns the world position of the cell a blocked move was
// rejected at, while that step is in progress.
func (s *State) BlockedTarget() (wx, wy float64, ok bool) {
	step, ok := s.StepInProgress()
	if !ok || !step.Blocked {
		return 0, 0, false
	}
	from := s.PoseAt(int(s.Playback.CurrentTime))
	tx, ty := from.Heading.Move(from.X, from.Y)
	wx, wy = s.WorldPos(tx, ty)
	return wx, wy, true
}

// Trail returns the world positions visited up to the current time,
// ending with the interpolated current position.
func (s *State) Trail() [][2]float64 {
	k := int(s.Playback.CurrentTime)
	if k > len(s.poses)-1 {
		k = len(s.poses) - 1
	}

	trail := make([][2]float64, 0, k+2)
	for i := 0; i <= k; i++ {
		wx, wy := s.WorldPos(s.poses[i].X, s.poses[i].Y)
		trail = append(trail, [2]float64{wx, wy})
	}
	wx, wy, _ := s.CurrentPosition()
	return append(trail, [2]float64{wx, wy})
}
