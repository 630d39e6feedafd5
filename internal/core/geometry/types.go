package geometry

import "fmt"

// Point represents an integer 2D point on the map
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Segment represents a wall or a ray between two points.
// Direction only matters to callers that care (rays start at the viewer);
// intersection treats segments as undirected.
type Segment struct {
	Start, End Point
}

// Seg is shorthand for a segment between (x0,y0) and (x1,y1)
func Seg(x0, y0, x1, y1 int) Segment {
	return Segment{Start: Point{X: x0, Y: y0}, End: Point{X: x1, Y: y1}}
}

// Reversed returns the segment with its endpoints swapped
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// SquaredLength returns the squared Euclidean length of the segment
func (s Segment) SquaredLength() int {
	return SquaredDistance(s.Start, s.End)
}

// Length returns the Euclidean length of the segment
func (s Segment) Length() float64 {
	return Length(s)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}
