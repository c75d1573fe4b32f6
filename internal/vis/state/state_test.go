package state

import (
	"testing"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
)

func referenceState(t *testing.T) *State {
	t.Helper()
	sc := scenario.Reference()
	rn, err := sim.NewRunner(sc, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	verbs := []rover.Verb{
		rover.VerbMove, rover.VerbMove, rover.VerbTurnRight,
		rover.VerbMove, rover.VerbTurnLeft, rover.VerbMove,
	}
	return NewState(sc, rn.Run(verbs))
}

func TestPoseTimeline(t *testing.T) {
	s := referenceState(t)

	tests := []struct {
		k       int
		x, y    int
		heading rover.Direction
	}{
		{0, 0, 0, rover.North},
		{1, 0, 1, rover.North},
		{2, 0, 2, rover.North},
		{3, 0, 2, rover.East},
		{4, 1, 2, rover.East},
		{5, 1, 2, rover.North},
		{6, 1, 3, rover.North},
	}

	for _, tt := range tests {
		got := s.PoseAt(tt.k)
		if got.X != tt.x || got.Y != tt.y || got.Heading != tt.heading {
			t.Errorf("PoseAt(%d) = %+v, want (%d, %d) %v", tt.k, got, tt.x, tt.y, tt.heading)
		}
	}

	// Clamped outside the timeline.
	if got := s.PoseAt(-1); got != s.PoseAt(0) {
		t.Errorf("PoseAt(-1) = %+v, want start pose", got)
	}
	if got := s.PoseAt(99); got != s.PoseAt(6) {
		t.Errorf("PoseAt(99) = %+v, want final pose", got)
	}
}

func TestWorldPosFlipsRows(t *testing.T) {
	s := referenceState(t)

	// Cell (0, 0) sits at the bottom-left of a 10x10 grid.
	wx, wy := s.WorldPos(0, 0)
	if wx != 25 || wy != 475 {
		t.Errorf("WorldPos(0, 0) = (%v, %v), want (25, 475)", wx, wy)
	}
	// Moving north decreases screen y.
	_, wy1 := s.WorldPos(0, 1)
	if wy1 >= wy {
		t.Errorf("WorldPos(0, 1).y = %v, want < %v", wy1, wy)
	}
}

func TestCurrentPositionInterpolates(t *testing.T) {
	s := referenceState(t)

	s.Playback.SetTime(0.5)
	wx, wy, heading := s.CurrentPosition()
	if wx != 25 || wy != 450 {
		t.Errorf("position at t=0.5 = (%v, %v), want (25, 450)", wx, wy)
	}
	if heading != rover.North {
		t.Errorf("heading at t=0.5 = %v, want North", heading)
	}

	// On a boundary the pose is exact.
	s.Playback.SetTime(6)
	wx, wy, _ = s.CurrentPosition()
	ex, ey := s.WorldPos(1, 3)
	if wx != ex || wy != ey {
		t.Errorf("position at t=6 = (%v, %v), want (%v, %v)", wx, wy, ex, ey)
	}
}

func TestStepInProgress(t *testing.T) {
	s := referenceState(t)

	s.Playback.SetTime(0)
	if _, ok := s.StepInProgress(); ok {
		t.Error("step in progress at t=0")
	}

	s.Playback.SetTime(2.5)
	step, ok := s.StepInProgress()
	if !ok {
		t.Fatal("no step in progress at t=2.5")
	}
	if step.Verb != "R" {
		t.Errorf("step at t=2.5 = %q, want R", step.Verb)
	}

	s.Playback.SetTime(6)
	if _, ok := s.StepInProgress(); ok {
		t.Error("step in progress at t=6")
	}
}

func TestBlockedTarget(t *testing.T) {
	sc := &scenario.Scenario{
		Name:      "walled",
		Grid:      scenario.GridSpec{Width: 3, Height: 3},
		Obstacles: []scenario.Point{{X: 0, Y: 1}},
		Rover:     scenario.RoverSpec{X: 0, Y: 0, Heading: "N"},
	}
	rn, err := sim.NewRunner(sc, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	s := NewState(sc, rn.Run([]rover.Verb{rover.VerbMove}))

	s.Playback.SetTime(0.5)
	wx, wy, ok := s.BlockedTarget()
	if !ok {
		t.Fatal("no blocked target mid-step")
	}
	ex, ey := s.WorldPos(0, 1)
	if wx != ex || wy != ey {
		t.Errorf("blocked target = (%v, %v), want (%v, %v)", wx, wy, ex, ey)
	}

	s.Playback.SetTime(1)
	if _, _, ok := s.BlockedTarget(); ok {
		t.Error("blocked target reported on boundary")
	}
}

func TestTrail(t *testing.T) {
	s := referenceState(t)

	s.Playback.SetTime(0)
	if got := len(s.Trail()); got != 2 {
		t.Errorf("trail at t=0 has %d points, want 2", got)
	}

	s.Playback.SetTime(6)
	trail := s.Trail()
	if got := len(trail); got != 8 {
		t.Errorf("trail at t=6 has %d points, want 8", got)
	}
	wx, wy := s.WorldPos(1, 3)
	last := trail[len(trail)-1]
	if last[0] != wx || last[1] != wy {
		t.Errorf("trail ends at (%v, %v), want (%v, %v)", last[0], last[1], wx, wy)
	}
}
