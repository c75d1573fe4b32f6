package rover

// Coord is a cell coordinate on the grid.
type Coord struct {
	X, Y int
}

// Grid is the bounded plateau the rover drives on. Dimensions are fixed at
// construction; obstacle cells are held in a set and every other cell is
// traversable.
type Grid struct {
	width, height int
	obstacles     map[Coord]bool
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Coord]bool),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// AddObstacle marks (x, y) as impassable. Adding the same cell twice is a
// no-op; cells outside the bounds are still recorded but never reachable.
func (g *Grid) AddObstacle(x, y int) {
	g.obstacles[Coord{X: x, Y: y}] = true
}

// WithinBounds reports whether (x, y) lies on the grid.
func (g *Grid) WithinBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked reports whether an obstacle occupies (x, y).
func (g *Grid) Blocked(x, y int) bool {
	return g.obstacles[Coord{X: x, Y: y}]
}

// Obstacles returns the obstacle cells in no particular order.
func (g *Grid) Obstacles() []Coord {
	out := make([]Coord, 0, len(g.obstacles))
	for c := range g.obstacles {
		out = append(out, c)
	}
	return out
}
