// Package config provides the settings for the maze renderer.
// Settings start from built-in defaults, are overlaid by an optional JSON
// file and then by RAYMAZE_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"

	"chosenoffset.com/raymaze/internal/canvas"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "RAYMAZE"

// Config holds all settings
type Config struct {
	Window  WindowConfig  `json:"window"`
	Maze    MazeConfig    `json:"maze"`
	Viewer  ViewerConfig  `json:"viewer"`
	View    ViewConfig    `json:"view"`
	Palette PaletteConfig `json:"palette"`

	SnapshotDir string `json:"snapshot_dir" split_words:"true"`
	LogLevel    string `json:"log_level" split_words:"true"` // debug, info, warn, error
}

// WindowConfig defines the canvas. The left half is the map view and the
// right half the perspective view.
type WindowConfig struct {
	Width  int    `json:"width" split_words:"true"`
	Height int    `json:"height" split_words:"true"`
	Title  string `json:"title" split_words:"true"`
}

// MazeConfig defines how interior walls are generated
type MazeConfig struct {
	InteriorWalls int    `json:"interior_walls" split_words:"true"`
	Seed          uint64 `json:"seed" split_words:"true"` // 0 picks a seed from the clock
}

// ViewerConfig defines the starting pose and movement steps. Angles are in
// radians; MoveStep is in map units per key event.
type ViewerConfig struct {
	StartX        int     `json:"start_x" split_words:"true"`
	StartY        int     `json:"start_y" split_words:"true"`
	StartRotation float64 `json:"start_rotation" split_words:"true"`
	MoveStep      float64 `json:"move_step" split_words:"true"`
	TurnStep      float64 `json:"turn_step" split_words:"true"`
}

// ViewConfig defines the ray fan and the perspective projection
type ViewConfig struct {
	RayCount int     `json:"ray_count" split_words:"true"`
	FOV      float64 `json:"fov" split_words:"true"` // radians
	FOVStep  float64 `json:"fov_step" split_words:"true"`
	FOVMin   float64 `json:"fov_min" split_words:"true"`
	FOVMax   float64 `json:"fov_max" split_words:"true"`

	ProjectionDistance   float64 `json:"projection_distance" split_words:"true"`
	VisibleRangeFraction float64 `json:"visible_range_fraction" split_words:"true"` // of the max ray range; hits beyond it are black
	MarkerRadius         int     `json:"marker_radius" split_words:"true"`
}

// PaletteConfig holds the frame colors as #rrggbb
type PaletteConfig struct {
	MapBackground  canvas.RGB `json:"map_background" split_words:"true"`
	Wall           canvas.RGB `json:"wall" split_words:"true"`
	Ray            canvas.RGB `json:"ray" split_words:"true"`
	Marker         canvas.RGB `json:"marker" split_words:"true"`
	ViewBackground canvas.RGB `json:"view_background" split_words:"true"`
}

// DefaultConfig returns the standard 1280x720 layout with five interior walls
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Raytrace Maze",
		},
		Maze: MazeConfig{
			InteriorWalls: 5,
		},
		Viewer: ViewerConfig{
			StartX:   100,
			StartY:   300,
			MoveStep: 5,
			TurnStep: 0.05,
		},
		View: ViewConfig{
			RayCount:             150,
			FOV:                  math.Pi / 4,
			FOVStep:              0.05,
			FOVMin:               0.05,
			FOVMax:               math.Pi,
			ProjectionDistance:   25,
			VisibleRangeFraction: 0.8,
			MarkerRadius:         3,
		},
		Palette: PaletteConfig{
			MapBackground:  canvas.Gray(50),
			Wall:           canvas.White,
			Ray:            canvas.RGB{R: 240, G: 220, B: 120},
			Marker:         canvas.Red,
			ViewBackground: canvas.Black,
		},
		SnapshotDir: ".",
		LogLevel:    "info",
	}
}

// LoadConfig loads settings from a JSON file, then applies environment
// overrides. A missing file is not an error; the defaults are used. An
// empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return config, nil
}

// MapWidth returns the width of the map view, the left half of the window
func (c *Config) MapWidth() int {
	return c.Window.Width / 2
}

// MapHeight returns the height of the map view
func (c *Config) MapHeight() int {
	return c.Window.Height
}

// SlogLevel converts LogLevel to a slog level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate reports every setting that would make the renderer degenerate
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width >= 2 && c.Window.Height >= 1,
		"window must be at least 2x1, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Maze.InteriorWalls >= 0, "interior_walls must not be negative, got %d", c.Maze.InteriorWalls)

	check(c.Viewer.StartX >= 0 && c.Viewer.StartX <= c.MapWidth() &&
		c.Viewer.StartY >= 0 && c.Viewer.StartY <= c.MapHeight(),
		"start position (%d,%d) is outside the %dx%d map", c.Viewer.StartX, c.Viewer.StartY, c.MapWidth(), c.MapHeight())
	check(c.Viewer.MoveStep >= 0, "move_step must not be negative, got %v", c.Viewer.MoveStep)
	check(c.Viewer.TurnStep >= 0, "turn_step must not be negative, got %v", c.Viewer.TurnStep)

	check(c.View.RayCount > 0, "ray_count must be positive, got %d", c.View.RayCount)
	check(c.View.FOVMin > 0, "fov_min must be positive, got %v", c.View.FOVMin)
	check(c.View.FOVMax >= c.View.FOVMin, "fov_max %v is below fov_min %v", c.View.FOVMax, c.View.FOVMin)
	check(c.View.FOVMax <= 2*math.Pi, "fov_max %v exceeds a full turn", c.View.FOVMax)
	check(c.View.FOV >= c.View.FOVMin && c.View.FOV <= c.View.FOVMax,
		"fov %v is outside [%v, %v]", c.View.FOV, c.View.FOVMin, c.View.FOVMax)
	check(c.View.FOVStep >= 0, "fov_step must not be negative, got %v", c.View.FOVStep)
	check(c.View.ProjectionDistance > 0, "projection_distance must be positive, got %v", c.View.ProjectionDistance)
	check(c.View.VisibleRangeFraction > 0 && c.View.VisibleRangeFraction <= 1,
		"visible_range_fraction must be in (0, 1], got %v", c.View.VisibleRangeFraction)
	check(c.View.MarkerRadius >= 0, "marker_radius must not be negative, got %d", c.View.MarkerRadius)

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
