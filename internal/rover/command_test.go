package rover

import "testing"

func TestParseVerb(t *testing.T) {
	tests := []struct {
		in   rune
		want Verb
		ok   bool
	}{
		{'M', VerbMove, true},
		{'m', VerbMove, true},
		{'L', VerbTurnLeft, true},
		{'l', VerbTurnLeft, true},
		{'R', VerbTurnRight, true},
		{'r', VerbTurnRight, true},
		{'X', 0, false},
		{'1', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseVerb(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseVerb(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseVerb(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCommandFor(t *testing.T) {
	r := NewRover(NewGrid(5, 5), 2, 2, North, nil)

	CommandFor(VerbTurnRight, r).Execute()
	if r.Heading() != East {
		t.Errorf("turn right command left heading %v, want East", r.Heading())
	}
	CommandFor(VerbTurnLeft, r).Execute()
	if r.Heading() != North {
		t.Errorf("turn left command left heading %v, want North", r.Heading())
	}
	CommandFor(VerbMove, r).Execute()
	if x, y := r.Position(); x != 2 || y != 3 {
		t.Errorf("move command ended at (%d, %d), want (2, 3)", x, y)
	}
}

func TestCommandsAreReusable(t *testing.T) {
	r := NewRover(NewGrid(5, 5), 0, 0, North, nil)
	move := CommandFor(VerbMove, r)

	move.Execute()
	move.Execute()
	if x, y := r.Position(); x != 0 || y != 2 {
		t.Errorf("two executes ended at (%d, %d), want (0, 2)", x, y)
	}
}

// TestReferenceMission drives the 10x10 reference setup through MMRMLM and
// checks the rover state after every command.
func TestReferenceMission(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddObstacle(2, 2)
	g.AddObstacle(3, 5)
	r := NewRover(g, 0, 0, North, nil)

	steps := []struct {
		verb    Verb
		wantX   int
		wantY   int
		wantDir Direction
	}{
		{VerbMove, 0, 1, North},
		{VerbMove, 0, 2, North},
		{VerbTurnRight, 0, 2, East},
		{VerbMove, 1, 2, East},
		{VerbTurnLeft, 1, 2, North},
		{VerbMove, 1, 3, North},
	}

	for i, st := range steps {
		CommandFor(st.verb, r).Execute()
		x, y := r.Position()
		if x != st.wantX || y != st.wantY || r.Heading() != st.wantDir {
			t.Fatalf("step %d (%v): at (%d, %d) facing %v, want (%d, %d) facing %v",
				i, st.verb, x, y, r.Heading(), st.wantX, st.wantY, st.wantDir)
		}
	}

	want := "Rover is at (1, 3) facing N"
	if got := r.Report(); got != want {
		t.Errorf("Report() = %q, want %q", got, want)
	}
}
