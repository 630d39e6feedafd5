// Package geometry holds the integer segment math used by the ray caster:
// segment/segment intersection and distance helpers.
package geometry

import "math"

// Intersect returns the point where segments a and b cross.
//
// Both segments are treated as closed: touching at an endpoint counts as a
// hit. Parallel and collinear segments (determinant exactly zero) never
// intersect. The returned point is the exact rational intersection rounded
// half away from zero, so Intersect(a, b) and Intersect(b, a) always agree.
func Intersect(a, b Segment) (Point, bool) {
	x1, y1 := int64(a.Start.X), int64(a.Start.Y)
	x2, y2 := int64(a.End.X), int64(a.End.Y)
	x3, y3 := int64(b.Start.X), int64(b.Start.Y)
	x4, y4 := int64(b.End.X), int64(b.End.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	// t parameterizes a, u parameterizes b
	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3))

	if denom < 0 {
		denom, tNum, uNum = -denom, -tNum, -uNum
	}
	if tNum < 0 || tNum > denom || uNum < 0 || uNum > denom {
		return Point{}, false
	}

	x := roundDiv(x1*denom+tNum*(x2-x1), denom)
	y := roundDiv(y1*denom+tNum*(y2-y1), denom)
	return Point{X: int(x), Y: int(y)}, true
}

// roundDiv divides n by a positive d, rounding half away from zero
func roundDiv(n, d int64) int64 {
	if n >= 0 {
		return (2*n + d) / (2 * d)
	}
	return -((-2*n + d) / (2 * d))
}

// SquaredDistance returns the squared Euclidean distance between two points
func SquaredDistance(p, q Point) int {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Length returns the Euclidean length of a segment
func Length(s Segment) float64 {
	return math.Sqrt(float64(SquaredDistance(s.Start, s.End)))
}

// Offset returns the displacement of dist units along angle (radians), each
// component rounded to the nearest integer. Angle 0 points along +X, and
// since the map's Y axis grows downward, positive angles turn clockwise on
// screen.
func Offset(angle, dist float64) Point {
	return Point{
		X: int(math.Round(math.Cos(angle) * dist)),
		Y: int(math.Round(math.Sin(angle) * dist)),
	}
}

// PointAt returns origin moved dist units along angle
func PointAt(origin Point, angle, dist float64) Point {
	return origin.Add(Offset(angle, dist))
}
