// Package game glues the scene and compositor to a render backend: it polls
// keys each tick, renders the scene into a canvas each frame and presents the
// canvas through the backend.
package game

import (
	"fmt"
	"log/slog"

	"chosenoffset.com/raymaze/internal/canvas"
	"chosenoffset.com/raymaze/internal/compositor"
	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/scene"
	"chosenoffset.com/raymaze/internal/snapshot"
)

// Options configures a Game
type Options struct {
	ScreenWidth  int
	ScreenHeight int

	// Bindings defaults to DefaultBindings
	Bindings []Binding

	// Snapshots may be nil, which disables the snapshot key
	Snapshots *snapshot.Writer

	ShowHUD bool
	Logger  *slog.Logger
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Scene      *scene.Scene
	Compositor *compositor.Compositor
	Renderer   render.Renderer
	InputMgr   render.InputManager

	canvas   *canvas.Canvas
	frame    render.Image
	hudPanel render.Image
	pixels   []byte

	bindings []Binding
	commands []scene.Command // distinct bound commands in binding order
	down     map[scene.Command]bool

	snapshots *snapshot.Writer
	showHUD   bool
	log       *slog.Logger
}

// New creates a game presenting s through r. The scene's map must be the left
// half of the screen.
func New(s *scene.Scene, c *compositor.Compositor, r render.Renderer, input render.InputManager, opts Options) (*Game, error) {
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", opts.ScreenWidth, opts.ScreenHeight)
	}
	if w, h := s.MapSize(); w != opts.ScreenWidth/2 || h != opts.ScreenHeight {
		return nil, fmt.Errorf("map size %dx%d does not match the left half of a %dx%d screen",
			w, h, opts.ScreenWidth, opts.ScreenHeight)
	}

	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Scene:        s,
		Compositor:   c,
		Renderer:     r,
		InputMgr:     input,
		canvas:       canvas.New(opts.ScreenWidth, opts.ScreenHeight),
		bindings:     bindings,
		down:         make(map[scene.Command]bool),
		snapshots:    opts.Snapshots,
		showHUD:      opts.ShowHUD,
		log:          logger,
	}
	for _, b := range bindings {
		logger.Debug("key bound", "key", b.Key, "command", b.Command)
		if _, seen := g.down[b.Command]; !seen {
			g.down[b.Command] = false
			g.commands = append(g.commands, b.Command)
		}
	}
	return g, nil
}

// Canvas returns the frame buffer the scene is rendered into
func (g *Game) Canvas() *canvas.Canvas {
	return g.canvas
}

// HUDVisible reports whether the text overlay is drawn
func (g *Game) HUDVisible() bool {
	return g.showHUD
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(KeyQuit) {
		g.log.Info("quit requested")
		return render.ErrTerminated
	}

	if g.InputMgr.IsKeyJustPressed(KeyHUD) {
		g.showHUD = !g.showHUD
		g.log.Debug("hud toggled", "visible", g.showHUD)
	}

	g.pollCommands()

	if g.InputMgr.IsKeyJustPressed(KeySnapshot) {
		g.saveSnapshot()
	}
	return nil
}

// pollCommands reports every bound command that is down now or was down on
// the previous tick, so the scene sees both presses and releases.
func (g *Game) pollCommands() {
	for _, cmd := range g.commands {
		isDown := false
		for _, b := range g.bindings {
			if b.Command == cmd && g.InputMgr.IsKeyPressed(b.Key) {
				isDown = true
				break
			}
		}

		wasDown := g.down[cmd]
		if isDown || wasDown {
			g.Scene.HandleKey(scene.KeyEvent{Command: cmd, WasDown: wasDown, IsDown: isDown})
		}
		g.down[cmd] = isDown
	}
}

// saveSnapshot renders the current scene and writes it out. Failures are
// logged and play continues.
func (g *Game) saveSnapshot() {
	if g.snapshots == nil {
		return
	}
	g.Compositor.Render(g.canvas, g.Scene)
	path, err := g.snapshots.Save(g.canvas)
	if err != nil {
		g.log.Error("snapshot failed", "error", err)
		return
	}
	g.log.Info("snapshot written", "path", path)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
