package game

import (
	"chosenoffset.com/raymaze/internal/render"
	"chosenoffset.com/raymaze/internal/scene"
)

// Binding maps a physical key to a scene command. Several keys may share a
// command; the command is down while any of them is.
type Binding struct {
	Key     render.Key
	Command scene.Command
}

// DefaultBindings returns the standard layout: WASD to move and turn, Q and E
// to narrow and widen the view, R to rebuild the maze. The arrow keys mirror
// WASD.
func DefaultBindings() []Binding {
	return []Binding{
		{render.KeyW, scene.CommandForward},
		{render.KeyS, scene.CommandBackward},
		{render.KeyA, scene.CommandTurnLeft},
		{render.KeyD, scene.CommandTurnRight},
		{render.KeyQ, scene.CommandNarrowFOV},
		{render.KeyE, scene.CommandWidenFOV},
		{render.KeyR, scene.CommandRegenerate},
		{render.KeyUp, scene.CommandForward},
		{render.KeyDown, scene.CommandBackward},
		{render.KeyLeft, scene.CommandTurnLeft},
		{render.KeyRight, scene.CommandTurnRight},
	}
}

// Keys outside the scene bindings, handled by the game itself
const (
	KeySnapshot = render.KeyP
	KeyHUD      = render.KeyH
	KeyQuit     = render.KeyEscape
)
