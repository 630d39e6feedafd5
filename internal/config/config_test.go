package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/raymaze/internal/canvas"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.MapWidth() != 640 || cfg.MapHeight() != 720 {
		t.Errorf("map size = %dx%d, want 640x720", cfg.MapWidth(), cfg.MapHeight())
	}
	if cfg.View.FOV != math.Pi/4 {
		t.Errorf("default fov = %v, want pi/4", cfg.View.FOV)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.View.RayCount != 150 || cfg.Maze.InteriorWalls != 5 {
		t.Errorf("expected defaults, got ray_count %d, interior_walls %d", cfg.View.RayCount, cfg.Maze.InteriorWalls)
	}

	cfg, err = LoadConfig("")
	if err != nil || cfg.Window.Width != 1280 {
		t.Errorf("LoadConfig(\"\") = %+v, %v", cfg.Window, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raymaze.json")
	data := `{
		"window": {"width": 800, "height": 400},
		"maze": {"interior_walls": 12, "seed": 42},
		"view": {"ray_count": 80},
		"palette": {"wall": "#00ff00"}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 400 {
		t.Errorf("window = %dx%d, want 800x400", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Maze.InteriorWalls != 12 || cfg.Maze.Seed != 42 {
		t.Errorf("maze = %+v", cfg.Maze)
	}
	if cfg.View.RayCount != 80 {
		t.Errorf("ray_count = %d, want 80", cfg.View.RayCount)
	}
	if cfg.Palette.Wall != (canvas.RGB{G: 255}) {
		t.Errorf("wall color = %v, want #00ff00", cfg.Palette.Wall)
	}
	// untouched fields keep their defaults
	if cfg.View.ProjectionDistance != 25 || cfg.Palette.Marker != canvas.Red {
		t.Errorf("defaults lost: projection %v, marker %v", cfg.View.ProjectionDistance, cfg.Palette.Marker)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"window": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}

	if err := os.WriteFile(path, []byte(`{"palette": {"ray": "yellow"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for a malformed color")
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raymaze.json")
	if err := os.WriteFile(path, []byte(`{"view": {"ray_count": 80}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RAYMAZE_VIEW_RAY_COUNT", "32")
	t.Setenv("RAYMAZE_MAZE_SEED", "7")
	t.Setenv("RAYMAZE_VIEW_FOV_MAX", "2.5")
	t.Setenv("RAYMAZE_PALETTE_MAP_BACKGROUND", "#101010")
	t.Setenv("RAYMAZE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.View.RayCount != 32 {
		t.Errorf("ray_count = %d, want the environment's 32", cfg.View.RayCount)
	}
	if cfg.Maze.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Maze.Seed)
	}
	if cfg.View.FOVMax != 2.5 {
		t.Errorf("fov_max = %v, want 2.5", cfg.View.FOVMax)
	}
	if cfg.Palette.MapBackground != canvas.Gray(16) {
		t.Errorf("map background = %v, want #101010", cfg.Palette.MapBackground)
	}
	if level, err := cfg.SlogLevel(); err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v", level, err)
	}

	t.Setenv("RAYMAZE_VIEW_RAY_COUNT", "many")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for a non-numeric override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero rays", func(c *Config) { c.View.RayCount = 0 }, "ray_count"},
		{"negative rays", func(c *Config) { c.View.RayCount = -3 }, "ray_count"},
		{"zero fov", func(c *Config) { c.View.FOV = 0 }, "fov"},
		{"fov above max", func(c *Config) { c.View.FOV = 4 }, "fov"},
		{"fov min not positive", func(c *Config) { c.View.FOVMin = 0 }, "fov_min"},
		{"fov max beyond full turn", func(c *Config) { c.View.FOVMax = 7 }, "full turn"},
		{"tiny window", func(c *Config) { c.Window.Width = 1 }, "window"},
		{"negative walls", func(c *Config) { c.Maze.InteriorWalls = -1 }, "interior_walls"},
		{"start outside map", func(c *Config) { c.Viewer.StartX = 900 }, "start position"},
		{"no projection", func(c *Config) { c.View.ProjectionDistance = 0 }, "projection_distance"},
		{"visible fraction", func(c *Config) { c.View.VisibleRangeFraction = 1.5 }, "visible_range_fraction"},
		{"marker", func(c *Config) { c.View.MarkerRadius = -1 }, "marker_radius"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.View.RayCount = 0
	cfg.Window.Height = 0
	if err := cfg.Validate(); err == nil || strings.Count(err.Error(), "\n") < 1 {
		t.Errorf("Validate() = %v, want every problem reported", err)
	}
}
