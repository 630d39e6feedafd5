// Package raycast casts rays from a viewer against a fixed set of wall
// segments and reports, per ray, the segment from the viewer to the nearest
// wall it hits.
package raycast

import (
	"math"

	"chosenoffset.com/raymaze/internal/core/geometry"
)

// Pose is the viewer's position and facing. Rotation is in radians and is
// never normalized; trig functions take care of wrapping.
type Pose struct {
	Position geometry.Point
	Rotation float64
}

// MaxRange returns a ray length long enough to cross the whole width x height
// map region from any point inside it.
func MaxRange(width, height int) int {
	return int(math.Ceil(math.Hypot(float64(width), float64(height))))
}

// Caster casts rays up to a fixed maximum range
type Caster struct {
	maxRange int
}

// NewCaster creates a caster whose rays extend maxRange units when they hit
// nothing.
func NewCaster(maxRange int) *Caster {
	return &Caster{maxRange: maxRange}
}

// MaxRange returns the length of a ray that hits nothing
func (c *Caster) MaxRange() int {
	return c.maxRange
}

// CastRay casts a single ray at relAngle from the viewer's facing. The
// returned segment starts at the viewer and ends at the closest wall hit, or
// at the full max-range point when no wall is hit. Equidistant hits keep the
// wall that comes first in walls.
func (c *Caster) CastRay(walls []geometry.Segment, pose Pose, relAngle float64) geometry.Segment {
	origin := pose.Position
	end := geometry.PointAt(origin, pose.Rotation+relAngle, float64(c.maxRange))
	ray := geometry.Segment{Start: origin, End: end}

	closestDist := -1
	for _, wall := range walls {
		hit, ok := geometry.Intersect(ray, wall)
		if !ok {
			continue
		}
		if dist := geometry.SquaredDistance(origin, hit); closestDist < 0 || dist < closestDist {
			closestDist = dist
			ray.End = hit
		}
	}

	return ray
}

// CastFan casts count rays spread evenly over fov radians, centered on the
// viewer's facing. The first ray is at -fov/2 and each following ray is
// fov/count further, so the result is ordered left to right. Rays are
// appended to dst[:0]; pass the previous frame's slice to reuse it.
func (c *Caster) CastFan(dst []geometry.Segment, walls []geometry.Segment, pose Pose, count int, fov float64) []geometry.Segment {
	dst = dst[:0]
	if count <= 0 {
		return dst
	}

	step := fov / float64(count)
	start := -fov / 2
	for i := 0; i < count; i++ {
		dst = append(dst, c.CastRay(walls, pose, start+float64(i)*step))
	}

	return dst
}
