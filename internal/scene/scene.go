// Package scene owns the state being rendered: the maze walls, the viewer's
// pose and field of view. It also interprets key events into changes to
// that state.
package scene

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"chosenoffset.com/raymaze/internal/config"
	"chosenoffset.com/raymaze/internal/core/geometry"
	"chosenoffset.com/raymaze/internal/core/raycast"
)

// Options configures a new Scene
type Options struct {
	MapWidth      int
	MapHeight     int
	InteriorWalls int
	Seed          uint64 // 0 seeds from the clock

	Start    raycast.Pose
	MoveStep float64
	TurnStep float64

	FOV     float64
	FOVStep float64
	FOVMin  float64
	FOVMax  float64

	Logger *slog.Logger
}

// OptionsFromConfig maps the loaded settings onto scene options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MapWidth:      cfg.MapWidth(),
		MapHeight:     cfg.MapHeight(),
		InteriorWalls: cfg.Maze.InteriorWalls,
		Seed:          cfg.Maze.Seed,
		Start: raycast.Pose{
			Position: geometry.Pt(cfg.Viewer.StartX, cfg.Viewer.StartY),
			Rotation: cfg.Viewer.StartRotation,
		},
		MoveStep: cfg.Viewer.MoveStep,
		TurnStep: cfg.Viewer.TurnStep,
		FOV:      cfg.View.FOV,
		FOVStep:  cfg.View.FOVStep,
		FOVMin:   cfg.View.FOVMin,
		FOVMax:   cfg.View.FOVMax,
	}
}

// Scene is the maze, the viewer and the field of view. It is not safe for
// concurrent use; input handling and rendering must be serialized.
type Scene struct {
	maze *Maze
	pose raycast.Pose
	fov  float64

	moveStep float64
	turnStep float64
	fovStep  float64
	fovMin   float64
	fovMax   float64

	seed uint64
	rng  *rand.Rand
	log  *slog.Logger
}

// New creates a scene with a freshly generated maze
func New(opts Options) (*Scene, error) {
	if opts.MapWidth <= 0 || opts.MapHeight <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", opts.MapWidth, opts.MapHeight)
	}
	if opts.InteriorWalls < 0 {
		return nil, fmt.Errorf("invalid interior wall count %d", opts.InteriorWalls)
	}
	if opts.FOVMin <= 0 || opts.FOVMax < opts.FOVMin {
		return nil, fmt.Errorf("invalid fov range [%v, %v]", opts.FOVMin, opts.FOVMax)
	}
	if opts.FOV < opts.FOVMin || opts.FOV > opts.FOVMax {
		return nil, fmt.Errorf("fov %v is outside [%v, %v]", opts.FOV, opts.FOVMin, opts.FOVMax)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Scene{
		maze:     NewMaze(opts.MapWidth, opts.MapHeight, opts.InteriorWalls, rng),
		pose:     opts.Start,
		fov:      opts.FOV,
		moveStep: opts.MoveStep,
		turnStep: opts.TurnStep,
		fovStep:  opts.FOVStep,
		fovMin:   opts.FOVMin,
		fovMax:   opts.FOVMax,
		seed:     seed,
		rng:      rng,
		log:      logger,
	}
	return s, nil
}

// Maze returns the scene's maze
func (s *Scene) Maze() *Maze {
	return s.maze
}

// Walls returns every wall, interior first and boundary last
func (s *Scene) Walls() []geometry.Segment {
	return s.maze.Walls()
}

// Interior returns the regenerable walls
func (s *Scene) Interior() []geometry.Segment {
	return s.maze.Interior()
}

// Boundary returns the four walls enclosing the map
func (s *Scene) Boundary() []geometry.Segment {
	return s.maze.Boundary()
}

// Pose returns the viewer's position and facing
func (s *Scene) Pose() raycast.Pose {
	return s.pose
}

// FOV returns the field of view in radians
func (s *Scene) FOV() float64 {
	return s.fov
}

// MapSize returns the size of the map region
func (s *Scene) MapSize() (width, height int) {
	return s.maze.Size()
}

// Seed returns the seed of the maze generator
func (s *Scene) Seed() uint64 {
	return s.seed
}

// RegenerateMaze replaces every interior wall
func (s *Scene) RegenerateMaze() {
	s.maze.Regenerate(s.rng)
	s.log.Debug("maze regenerated", "interior_walls", len(s.maze.Interior()))
}

func (s *Scene) move(sign int) {
	d := geometry.Offset(s.pose.Rotation, s.moveStep)
	s.pose.Position.X += sign * d.X
	s.pose.Position.Y += sign * d.Y
}

func (s *Scene) setFOV(fov float64) {
	s.fov = math.Max(s.fovMin, math.Min(s.fovMax, fov))
}
