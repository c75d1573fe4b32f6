package rover

import "testing"

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		dir   Direction
		left  Direction
		right Direction
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}

	for _, tt := range tests {
		if got := tt.dir.Left(); got != tt.left {
			t.Errorf("%v.Left() = %v, want %v", tt.dir, got, tt.left)
		}
		if got := tt.dir.Right(); got != tt.right {
			t.Errorf("%v.Right() = %v, want %v", tt.dir, got, tt.right)
		}
	}
}

func TestTurnsAreInverse(t *testing.T) {
	for _, d := range Directions() {
		if got := d.Left().Right(); got != d {
			t.Errorf("%v.Left().Right() = %v, want %v", d, got, d)
		}
		if got := d.Right().Left(); got != d {
			t.Errorf("%v.Right().Left() = %v, want %v", d, got, d)
		}
	}
}

func TestFourTurnsIdentity(t *testing.T) {
	for _, d := range Directions() {
		l, r := d, d
		for i := 0; i < 4; i++ {
			l = l.Left()
			r = r.Right()
		}
		if l != d {
			t.Errorf("four left turns from %v ended at %v", d, l)
		}
		if r != d {
			t.Errorf("four right turns from %v ended at %v", d, r)
		}
	}
}

func TestDirectionMove(t *testing.T) {
	tests := []struct {
		dir   Direction
		wantX int
		wantY int
	}{
		{North, 5, 6},
		{South, 5, 4},
		{East, 6, 5},
		{West, 4, 5},
	}

	for _, tt := range tests {
		x, y := tt.dir.Move(5, 5)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%v.Move(5, 5) = (%d, %d), want (%d, %d)",
				tt.dir, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestOppositeMovesCancel(t *testing.T) {
	for _, d := range Directions() {
		x, y := d.Move(3, 3)
		x, y = d.Opposite().Move(x, y)
		if x != 3 || y != 3 {
			t.Errorf("%v then %v from (3, 3) ended at (%d, %d)", d, d.Opposite(), x, y)
		}
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{North: "N", East: "E", South: "S", West: "W"}
	for d, s := range want {
		if d.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(d), d.String(), s)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"N", North, false},
		{"e", East, false},
		{" S ", South, false},
		{"w", West, false},
		{"Q", North, true},
		{"", North, true},
		{"NE", North, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
