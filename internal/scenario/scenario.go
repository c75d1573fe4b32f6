// Package scenario loads, validates and generates rover mission setups.
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
)

// Point is a cell coordinate in a scenario file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GridSpec describes the plateau dimensions.
type GridSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoverSpec describes the rover start state.
type RoverSpec struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"`
}

// Scenario is a complete mission setup: the grid, its obstacles, the rover
// start state and an optional inline command script.
type Scenario struct {
	Name      string    `yaml:"name"`
	Grid      GridSpec  `yaml:"grid"`
	Obstacles []Point   `yaml:"obstacles,omitempty"`
	Rover     RoverSpec `yaml:"rover"`
	Script    string    `yaml:"script,omitempty"`
}

// Parse decodes a YAML scenario and validates it. Unknown fields are an
// error so typos in setup files surface immediately.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse scenario: empty document")
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Save writes the scenario as YAML.
func (sc *Scenario) Save(path string) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks scenario consistency.
func (sc *Scenario) Validate() error {
	if sc.Grid.Width <= 0 || sc.Grid.Height <= 0 {
		return fmt.Errorf("scenario %q: grid must have positive dimensions, got %dx%d",
			sc.Name, sc.Grid.Width, sc.Grid.Height)
	}
	if _, err := rover.ParseDirection(sc.Rover.Heading); err != nil {
		return fmt.Errorf("scenario %q: rover heading: %w", sc.Name, err)
	}
	if !sc.inBounds(sc.Rover.X, sc.Rover.Y) {
		return fmt.Errorf("scenario %q: rover start (%d, %d) outside %dx%d grid",
			sc.Name, sc.Rover.X, sc.Rover.Y, sc.Grid.Width, sc.Grid.Height)
	}

	seen := make(map[Point]bool)
	for _, ob := range sc.Obstacles {
		if !sc.inBounds(ob.X, ob.Y) {
			return fmt.Errorf("scenario %q: obstacle (%d, %d) outside %dx%d grid",
				sc.Name, ob.X, ob.Y, sc.Grid.Width, sc.Grid.Height)
		}
		if seen[ob] {
			return fmt.Errorf("scenario %q: duplicate obstacle (%d, %d)", sc.Name, ob.X, ob.Y)
		}
		seen[ob] = true
		if ob.X == sc.Rover.X && ob.Y == sc.Rover.Y {
			return fmt.Errorf("scenario %q: rover starts on obstacle (%d, %d)", sc.Name, ob.X, ob.Y)
		}
	}
	return nil
}

func (sc *Scenario) inBounds(x, y int) bool {
	return x >= 0 && x < sc.Grid.Width && y >= 0 && y < sc.Grid.Height
}

// Build materializes the grid and rover described by the scenario. A nil
// logger silences the rover diagnostics.
func (sc *Scenario) Build(log *zap.Logger) (*rover.Grid, *rover.Rover, error) {
	heading, err := rover.ParseDirection(sc.Rover.Heading)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: rover heading: %w", sc.Name, err)
	}
	g := rover.NewGrid(sc.Grid.Width, sc.Grid.Height)
	for _, ob := range sc.Obstacles {
		g.AddObstacle(ob.X, ob.Y)
	}
	return g, rover.NewRover(g, sc.Rover.X, sc.Rover.Y, heading, log), nil
}

// Reference returns the built-in demo setup: a 10x10 plateau with
// obstacles at (2, 2) and (3, 5) and the rover at the origin facing north.
func Reference() *Scenario {
	return &Scenario{
		Name:      "reference",
		Grid:      GridSpec{Width: 10, Height: 10},
		Obstacles: []Point{{X: 2, Y: 2}, {X: 3, Y: 5}},
		Rover:     RoverSpec{X: 0, Y: 0, Heading: "N"},
		Script:    "MMRMLM",
	}
}

// Params configures random scenario generation.
type Params struct {
	Seed      int64
	Width     int
	Height    int
	Obstacles int
}

// Random generates a deterministic random scenario from the parameters.
// The rover start cell is never blocked; the obstacle count is capped at
// one less than the cell count.
func Random(p Params) *Scenario {
	rng := rand.New(rand.NewSource(p.Seed))

	sc := &Scenario{
		Name: fmt.Sprintf("rover_%dx%d_%d", p.Width, p.Height, p.Seed),
		Grid: GridSpec{Width: p.Width, Height: p.Height},
	}
	sc.Rover = RoverSpec{
		X:       rng.Intn(p.Width),
		Y:       rng.Intn(p.Height),
		Heading: rover.Directions()[rng.Intn(4)].String(),
	}

	used := map[Point]bool{{X: sc.Rover.X, Y: sc.Rover.Y}: true}
	count := p.Obstacles
	if free := p.Width*p.Height - 1; count > free {
		count = free
	}
	for len(sc.Obstacles) < count {
		pt := Point{X: rng.Intn(p.Width), Y: rng.Intn(p.Height)}
		if used[pt] {
			continue
		}
		used[pt] = true
		sc.Obstacles = append(sc.Obstacles, pt)
	}
	return sc
}
