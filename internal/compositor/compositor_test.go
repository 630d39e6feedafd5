package compositor

import (
	"math"
	"testing"

	"chosenoffset.com/raymaze/internal/canvas"
	"chosenoffset.com/raymaze/internal/config"
	"chosenoffset.com/raymaze/internal/core/geometry"
	"chosenoffset.com/raymaze/internal/core/raycast"
	"chosenoffset.com/raymaze/internal/scene"
)

var testPalette = Palette{
	MapBackground:  canvas.Gray(50),
	Wall:           canvas.White,
	Ray:            canvas.RGB{R: 240, G: 220, B: 120},
	Marker:         canvas.Red,
	ViewBackground: canvas.Black,
}

// newBoundaryScene returns a 100x100 map with only the boundary walls
func newBoundaryScene(t *testing.T, pos geometry.Point) *scene.Scene {
	t.Helper()
	s, err := scene.New(scene.Options{
		MapWidth:  100,
		MapHeight: 100,
		Seed:      1,
		Start:     raycast.Pose{Position: pos},
		FOV:       math.Pi / 4,
		FOVMin:    0.05,
		FOVMax:    math.Pi,
	})
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return s
}

func newCompositor(t *testing.T, rays int) *Compositor {
	t.Helper()
	c, err := New(Options{
		RayCount:             rays,
		ProjectionDistance:   25,
		VisibleRangeFraction: 0.8,
		MarkerRadius:         3,
		Palette:              testPalette,
	}, 100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsBadOptions(t *testing.T) {
	good := Options{RayCount: 10, ProjectionDistance: 25, VisibleRangeFraction: 0.8}
	tests := []struct {
		name   string
		mutate func(*Options)
		w, h   int
	}{
		{"no rays", func(o *Options) { o.RayCount = 0 }, 100, 100},
		{"no projection distance", func(o *Options) { o.ProjectionDistance = 0 }, 100, 100},
		{"visible fraction", func(o *Options) { o.VisibleRangeFraction = 0 }, 100, 100},
		{"empty map", func(o *Options) {}, 0, 100},
	}
	for _, tt := range tests {
		opts := good
		tt.mutate(&opts)
		if _, err := New(opts, tt.w, tt.h); err == nil {
			t.Errorf("%s: New succeeded, want error", tt.name)
		}
	}
}

func TestColumnHeight(t *testing.T) {
	tests := []struct {
		length float64
		want   int
	}{
		{0, 0},
		{0.99, 0},
		{1, 2500},
		{50, 50},
		{100, 25},
		{3000, 0},
	}
	for _, tt := range tests {
		if got := ColumnHeight(tt.length, 100, 25); got != tt.want {
			t.Errorf("ColumnHeight(%v) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		length float64
		want   uint8
	}{
		{0, 255},
		{50, 191},
		{100, 0},
		{250, 0},
	}
	for _, tt := range tests {
		if got := Shade(tt.length, 100); got != tt.want {
			t.Errorf("Shade(%v, 100) = %d, want %d", tt.length, got, tt.want)
		}
	}
	if Shade(10, 100) <= Shade(20, 100) {
		t.Error("nearer walls should be brighter")
	}
}

func TestRenderMapView(t *testing.T) {
	s := newBoundaryScene(t, geometry.Pt(50, 50))
	c := newCompositor(t, 10)
	dst := canvas.New(200, 100)

	c.Render(dst, s)

	checks := []struct {
		name string
		x, y int
		want canvas.RGB
	}{
		{"background", 10, 50, testPalette.MapBackground},
		{"top wall", 10, 0, testPalette.Wall},
		{"left wall", 0, 80, testPalette.Wall},
		{"center ray", 70, 50, testPalette.Ray},
		{"marker center", 50, 50, testPalette.Marker},
		{"marker corner", 47, 47, testPalette.Marker},
		{"past marker", 46, 46, testPalette.MapBackground},
	}
	for _, ck := range checks {
		if got := dst.ColorAt(ck.x, ck.y); got != ck.want {
			t.Errorf("%s (%d,%d) = %v, want %v", ck.name, ck.x, ck.y, got, ck.want)
		}
	}

	rays := c.Rays()
	if len(rays) != 10 {
		t.Fatalf("cast %d rays, want 10", len(rays))
	}
	for i, r := range rays {
		if r.Start != geometry.Pt(50, 50) {
			t.Errorf("ray %d starts at %v", i, r.Start)
		}
		if r.End.X != 100 {
			t.Errorf("ray %d ends at %v, want on the right wall", i, r.End)
		}
	}
	if rays[5].End != geometry.Pt(100, 50) {
		t.Errorf("center ray ends at %v, want (100,50)", rays[5].End)
	}
}

func TestRenderPerspectiveView(t *testing.T) {
	s := newBoundaryScene(t, geometry.Pt(50, 50))
	c := newCompositor(t, 10)
	dst := canvas.New(200, 100)

	c.Render(dst, s)

	// ray 5 points straight at the right wall, 50 units away: a 50 pixel
	// column centered vertically, 10 pixels wide at x=150
	visible := float64(c.Caster().MaxRange()) * 0.8
	want := canvas.Gray(Shade(50, visible))
	for y := 25; y < 75; y++ {
		if got := dst.ColorAt(155, y); got != want {
			t.Fatalf("column pixel (155,%d) = %v, want %v", y, got, want)
		}
	}
	for _, y := range []int{0, 24, 75, 99} {
		if got := dst.ColorAt(155, y); got != testPalette.ViewBackground {
			t.Errorf("pixel (155,%d) = %v, want view background", y, got)
		}
	}
	if want == testPalette.ViewBackground {
		t.Fatal("test column is indistinguishable from the background")
	}

	// the edge rays are longer than the center one so their columns are shorter
	if dst.ColorAt(105, 26) != testPalette.ViewBackground {
		t.Error("leftmost column is not shorter than the center column")
	}
}

func TestRenderClipsTallColumns(t *testing.T) {
	s := newBoundaryScene(t, geometry.Pt(99, 50))
	c := newCompositor(t, 10)
	dst := canvas.New(200, 100)

	c.Render(dst, s)

	for _, y := range []int{0, 50, 99} {
		if got := dst.ColorAt(155, y); got == testPalette.ViewBackground {
			t.Errorf("pixel (155,%d) not covered by a wall one unit away", y)
		}
	}
}

func TestRenderColumnsCoverWidth(t *testing.T) {
	s := newBoundaryScene(t, geometry.Pt(50, 50))
	c := newCompositor(t, 7) // 100/7 does not divide evenly
	dst := canvas.New(200, 100)

	c.Render(dst, s)

	for x := 100; x < 200; x++ {
		if dst.ColorAt(x, 50) == testPalette.ViewBackground {
			t.Fatalf("column gap at x=%d", x)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	s := newBoundaryScene(t, geometry.Pt(30, 60))
	c := newCompositor(t, 25)
	a, b := canvas.New(200, 100), canvas.New(200, 100)

	c.Render(a, s)
	c.Render(b, s)
	// rendering over a dirty canvas gives the same frame
	c.Render(b, s)

	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				t.Fatalf("frames differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := OptionsFromConfig(cfg)
	if opts.RayCount != 150 || opts.ProjectionDistance != 25 || opts.MarkerRadius != 3 {
		t.Errorf("options = %+v", opts)
	}
	if opts.Palette.Ray != (canvas.RGB{R: 240, G: 220, B: 120}) {
		t.Errorf("ray color = %v", opts.Palette.Ray)
	}
	if _, err := New(opts, cfg.MapWidth(), cfg.MapHeight()); err != nil {
		t.Errorf("New with defaults: %v", err)
	}
}
