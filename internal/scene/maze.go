package scene

import (
	"math/rand/v2"

	"chosenoffset.com/raymaze/internal/core/geometry"
)

// Maze is the set of wall segments on a width x height map: a run of
// interior walls followed by the four boundary walls. The boundary is fixed
// at construction; the interior is only ever replaced as a whole.
type Maze struct {
	width, height int
	walls         []geometry.Segment
	interior      int
}

// BoundaryWalls returns the four walls enclosing a width x height map,
// clockwise from the top-left corner
func BoundaryWalls(width, height int) [4]geometry.Segment {
	return [4]geometry.Segment{
		geometry.Seg(0, 0, width, 0),
		geometry.Seg(width, 0, width, height),
		geometry.Seg(width, height, 0, height),
		geometry.Seg(0, height, 0, 0),
	}
}

// NewMaze creates a maze with interior random walls
func NewMaze(width, height, interior int, rng *rand.Rand) *Maze {
	m := &Maze{
		width:    width,
		height:   height,
		walls:    make([]geometry.Segment, interior, interior+4),
		interior: interior,
	}
	boundary := BoundaryWalls(width, height)
	m.walls = append(m.walls, boundary[:]...)
	m.Regenerate(rng)
	return m
}

// Regenerate replaces every interior wall. Each endpoint is drawn uniformly
// from the map rectangle, edges included; walls may be zero length or
// overlap.
func (m *Maze) Regenerate(rng *rand.Rand) {
	for i := 0; i < m.interior; i++ {
		m.walls[i] = geometry.Segment{
			Start: m.randomPoint(rng),
			End:   m.randomPoint(rng),
		}
	}
}

func (m *Maze) randomPoint(rng *rand.Rand) geometry.Point {
	return geometry.Point{
		X: rng.IntN(m.width + 1),
		Y: rng.IntN(m.height + 1),
	}
}

// Walls returns every wall, interior first and boundary last. The slice is
// owned by the maze and its interior changes on Regenerate.
func (m *Maze) Walls() []geometry.Segment {
	return m.walls
}

// Interior returns the interior walls
func (m *Maze) Interior() []geometry.Segment {
	return m.walls[:m.interior]
}

// Boundary returns the four boundary walls
func (m *Maze) Boundary() []geometry.Segment {
	return m.walls[m.interior:]
}

// Size returns the map dimensions
func (m *Maze) Size() (width, height int) {
	return m.width, m.height
}
