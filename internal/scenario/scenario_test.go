package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: demo
grid:
  width: 10
  height: 10
obstacles:
  - {x: 2, y: 2}
  - {x: 3, y: 5}
rover:
  x: 0
  y: 0
  heading: N
script: MMRMLM
`)

	sc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, 10, sc.Grid.Width)
	assert.Equal(t, []Point{{X: 2, Y: 2}, {X: 3, Y: 5}}, sc.Obstacles)
	assert.Equal(t, "N", sc.Rover.Heading)
	assert.Equal(t, "MMRMLM", sc.Script)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty document", ""},
		{"unknown field", "name: x\ngrid: {width: 5, height: 5}\nrover: {x: 0, y: 0, heading: N}\nspeed: 3\n"},
		{"zero width", "grid: {width: 0, height: 5}\nrover: {x: 0, y: 0, heading: N}\n"},
		{"bad heading", "grid: {width: 5, height: 5}\nrover: {x: 0, y: 0, heading: Q}\n"},
		{"rover outside grid", "grid: {width: 5, height: 5}\nrover: {x: 5, y: 0, heading: N}\n"},
		{"obstacle outside grid", "grid: {width: 5, height: 5}\nobstacles: [{x: 9, y: 9}]\nrover: {x: 0, y: 0, heading: N}\n"},
		{"duplicate obstacle", "grid: {width: 5, height: 5}\nobstacles: [{x: 1, y: 1}, {x: 1, y: 1}]\nrover: {x: 0, y: 0, heading: N}\n"},
		{"rover on obstacle", "grid: {width: 5, height: 5}\nobstacles: [{x: 0, y: 0}]\nrover: {x: 0, y: 0, heading: N}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, Reference().Save(path))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Reference(), sc)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReferenceBuild(t *testing.T) {
	sc := Reference()
	require.NoError(t, sc.Validate())

	g, r, err := sc.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.True(t, g.Blocked(2, 2))
	assert.True(t, g.Blocked(3, 5))

	x, y := r.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, rover.North, r.Heading())
}

func TestRandom(t *testing.T) {
	p := Params{Seed: 42, Width: 8, Height: 6, Obstacles: 10}

	sc := Random(p)
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Obstacles, 10)

	// Same seed reproduces the same scenario.
	assert.Equal(t, sc, Random(p))

	// Different seed diverges.
	other := Random(Params{Seed: 43, Width: 8, Height: 6, Obstacles: 10})
	assert.NotEqual(t, sc, other)
}

func TestRandomCapsObstacles(t *testing.T) {
	sc := Random(Params{Seed: 1, Width: 2, Height: 2, Obstacles: 99})
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Obstacles, 3) // one cell reserved for the rover
}
