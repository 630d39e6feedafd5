// Package compositor draws one frame: the top-down map with walls, rays and
// the viewer on the left half of the canvas, and the projected first-person
// wall view on the right half.
package compositor

import (
	"fmt"
	"math"

	"chosenoffset.com/raymaze/internal/canvas"
	"chosenoffset.com/raymaze/internal/config"
	"chosenoffset.com/raymaze/internal/core/geometry"
	"chosenoffset.com/raymaze/internal/core/raycast"
	"chosenoffset.com/raymaze/internal/scene"
)

// Palette holds the colors of a frame
type Palette struct {
	MapBackground  canvas.RGB
	Wall           canvas.RGB
	Ray            canvas.RGB
	Marker         canvas.RGB
	ViewBackground canvas.RGB
}

// Options configures a Compositor
type Options struct {
	RayCount             int
	ProjectionDistance   float64
	VisibleRangeFraction float64
	MarkerRadius         int
	Palette              Palette
}

// OptionsFromConfig maps the loaded settings onto compositor options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RayCount:             cfg.View.RayCount,
		ProjectionDistance:   cfg.View.ProjectionDistance,
		VisibleRangeFraction: cfg.View.VisibleRangeFraction,
		MarkerRadius:         cfg.View.MarkerRadius,
		Palette: Palette{
			MapBackground:  cfg.Palette.MapBackground,
			Wall:           cfg.Palette.Wall,
			Ray:            cfg.Palette.Ray,
			Marker:         cfg.Palette.Marker,
			ViewBackground: cfg.Palette.ViewBackground,
		},
	}
}

// Compositor renders scenes onto a canvas. The ray buffer is kept between
// frames.
type Compositor struct {
	opts   Options
	caster *raycast.Caster
	rays   []geometry.Segment
}

// New creates a compositor for a map of mapWidth x mapHeight
func New(opts Options, mapWidth, mapHeight int) (*Compositor, error) {
	if opts.RayCount <= 0 {
		return nil, fmt.Errorf("ray count must be positive, got %d", opts.RayCount)
	}
	if opts.ProjectionDistance <= 0 {
		return nil, fmt.Errorf("projection distance must be positive, got %v", opts.ProjectionDistance)
	}
	if opts.VisibleRangeFraction <= 0 || opts.VisibleRangeFraction > 1 {
		return nil, fmt.Errorf("visible range fraction must be in (0, 1], got %v", opts.VisibleRangeFraction)
	}
	if mapWidth <= 0 || mapHeight <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", mapWidth, mapHeight)
	}

	return &Compositor{
		opts:   opts,
		caster: raycast.NewCaster(raycast.MaxRange(mapWidth, mapHeight)),
		rays:   make([]geometry.Segment, 0, opts.RayCount),
	}, nil
}

// Caster returns the ray caster used for the fan
func (c *Compositor) Caster() *raycast.Caster {
	return c.caster
}

// Rays returns the fan cast by the last Render. It is overwritten by the
// next call.
func (c *Compositor) Rays() []geometry.Segment {
	return c.rays
}

// Render draws one frame of s onto dst. The left half of dst is the map view
// and the right half the perspective view.
func (c *Compositor) Render(dst *canvas.Canvas, s *scene.Scene) {
	mapWidth := dst.Width() / 2
	height := dst.Height()
	pal := c.opts.Palette

	// Map view
	dst.PlotRect(pal.MapBackground, 0, 0, mapWidth, height)
	for _, wall := range s.Walls() {
		dst.PlotSegment(pal.Wall, wall)
	}

	pose := s.Pose()
	c.rays = c.caster.CastFan(c.rays, s.Walls(), pose, c.opts.RayCount, s.FOV())
	for _, ray := range c.rays {
		dst.PlotSegment(pal.Ray, ray)
	}

	r := c.opts.MarkerRadius
	dst.PlotRect(pal.Marker, pose.Position.X-r, pose.Position.Y-r, 2*r, 2*r)

	// Perspective view
	dst.PlotRect(pal.ViewBackground, mapWidth, 0, dst.Width()-mapWidth, height)
	c.drawColumns(dst, mapWidth, dst.Width()-mapWidth)
}

// drawColumns projects each ray, left to right, into a vertically centered
// column of the perspective view starting at x.
func (c *Compositor) drawColumns(dst *canvas.Canvas, x, width int) {
	if len(c.rays) == 0 {
		return
	}

	colWidth := int(math.Ceil(float64(width) / float64(len(c.rays))))
	height := dst.Height()
	visible := float64(c.caster.MaxRange()) * c.opts.VisibleRangeFraction

	for i, ray := range c.rays {
		length := ray.Length()
		colHeight := ColumnHeight(length, height, c.opts.ProjectionDistance)
		gray := Shade(length, visible)
		dst.PlotRect(canvas.Gray(gray), x+i*colWidth, (height-colHeight)/2, colWidth, colHeight)
	}
}

// ColumnHeight returns the projected height of a wall length units away on
// a screen screenHeight pixels tall. Walls closer than one unit are not
// drawn.
func ColumnHeight(length float64, screenHeight int, projectionDistance float64) int {
	if length < 1 {
		return 0
	}
	return int(float64(screenHeight) * projectionDistance / length)
}

// Shade maps a hit distance to a gray level: 255 at the viewer, falling off
// with squared distance to 0 at visible and beyond.
func Shade(length, visible float64) uint8 {
	t := 1 - (length*length)/(visible*visible)
	t = math.Max(0, math.Min(1, t))
	return uint8(255 * t)
}
