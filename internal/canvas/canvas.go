// Package canvas provides a bounds-checked 32-bit pixel surface and the
// primitive drawing operations the frame compositor is built on.
package canvas

import (
	"fmt"
	"image"

	"chosenoffset.com/raymaze/internal/core/geometry"
)

// Canvas is a row-major surface of 0x00RRGGBB pixels. Stride is measured in
// pixels and may be larger than Width.
type Canvas struct {
	width  int
	height int
	stride int
	pix    []uint32
}

// New creates a black canvas with stride equal to width
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]uint32, width*height),
	}
}

// Wrap uses pix as the backing store of a width x height canvas with the
// given stride in pixels. The buffer is written in place and not copied.
func Wrap(pix []uint32, width, height, stride int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("stride %d is smaller than width %d", stride, width)
	}
	if height > 0 && len(pix) < stride*(height-1)+width {
		return nil, fmt.Errorf("pixel buffer holds %d pixels, need %d", len(pix), stride*(height-1)+width)
	}
	return &Canvas{width: width, height: height, stride: stride, pix: pix}, nil
}

// Width returns the width of the canvas in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas rectangle
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Pixel returns the packed pixel at (x, y), or 0 outside the canvas
func (c *Canvas) Pixel(x, y int) uint32 {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.pix[y*c.stride+x]
}

// ColorAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) ColorAt(x, y int) RGB {
	return Unpack(c.Pixel(x, y))
}

// Plot sets a single pixel. Coordinates outside the canvas are ignored:
// projected rays routinely produce them.
func (c *Canvas) Plot(clr RGB, x, y int) {
	if !c.inBounds(x, y) {
		return
	}
	c.pix[y*c.stride+x] = clr.Pack()
}

// PlotPoint sets the pixel at p
func (c *Canvas) PlotPoint(clr RGB, p geometry.Point) {
	c.Plot(clr, p.X, p.Y)
}

// PlotLine draws a straight line from p0 to p1 inclusive. The endpoints are
// ordered before rasterizing so the same pixels are drawn whichever way
// round they are passed.
func (c *Canvas) PlotLine(clr RGB, p0, p1 geometry.Point) {
	if abs(p1.Y-p0.Y) < abs(p1.X-p0.X) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		c.lineLow(clr, p0, p1)
		return
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	c.lineHigh(clr, p0, p1)
}

// PlotSegment draws a segment
func (c *Canvas) PlotSegment(clr RGB, s geometry.Segment) {
	c.PlotLine(clr, s.Start, s.End)
}

// lineLow rasterizes lines whose x delta dominates, stepping x from p0 to p1
func (c *Canvas) lineLow(clr RGB, p0, p1 geometry.Point) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		c.Plot(clr, x, y)
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// lineHigh rasterizes lines whose y delta dominates, stepping y from p0 to p1
func (c *Canvas) lineHigh(clr RGB, p0, p1 geometry.Point) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := p0.X
	for y := p0.Y; y <= p1.Y; y++ {
		c.Plot(clr, x, y)
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// PlotRect fills the width x height rectangle whose top-left corner is
// (x, y). The rectangle is clipped to the canvas; nothing is drawn if the
// clipped rectangle is empty.
func (c *Canvas) PlotRect(clr RGB, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r := image.Rect(x, y, x+width, y+height).Intersect(c.Bounds())
	if r.Empty() {
		return
	}

	v := clr.Pack()
	for yi := r.Min.Y; yi < r.Max.Y; yi++ {
		row := c.pix[yi*c.stride+r.Min.X : yi*c.stride+r.Max.X]
		for i := range row {
			row[i] = v
		}
	}
}

// Fill sets every pixel of the canvas to clr
func (c *Canvas) Fill(clr RGB) {
	c.PlotRect(clr, 0, 0, c.width, c.height)
}

// CopyRGBA writes the canvas into dst as 4-byte R, G, B, 0xff pixels with no
// row padding, the layout ebiten's WritePixels expects. dst is grown if it
// is too small and returned.
func (c *Canvas) CopyRGBA(dst []byte) []byte {
	n := c.width * c.height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	i := 0
	for y := 0; y < c.height; y++ {
		for _, v := range c.pix[y*c.stride : y*c.stride+c.width] {
			dst[i+0] = uint8(v >> 16)
			dst[i+1] = uint8(v >> 8)
			dst[i+2] = uint8(v)
			dst[i+3] = 0xff
			i += 4
		}
	}
	return dst
}

// ToRGBA returns an opaque copy of the canvas for image encoders
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	c.CopyRGBA(img.Pix)
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
