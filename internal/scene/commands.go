package scene

// Command is an action the viewer can take. Physical keys are bound to
// commands by the input layer.
type Command int

const (
	CommandNone Command = iota
	CommandForward
	CommandBackward
	CommandTurnLeft
	CommandTurnRight
	CommandNarrowFOV
	CommandWidenFOV
	CommandRegenerate
)

var commandNames = map[Command]string{
	CommandNone:       "none",
	CommandForward:    "forward",
	CommandBackward:   "backward",
	CommandTurnLeft:   "turn-left",
	CommandTurnRight:  "turn-right",
	CommandNarrowFOV:  "narrow-fov",
	CommandWidenFOV:   "widen-fov",
	CommandRegenerate: "regenerate",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// KeyEvent is one key state report: the command bound to the key, whether
// it was down at the previous report and whether it is down now.
type KeyEvent struct {
	Command Command
	WasDown bool
	IsDown  bool
}

// Pressed reports whether the key went down with this event
func (e KeyEvent) Pressed() bool {
	return e.IsDown && !e.WasDown
}

// HandleKey applies a key event to the scene and reports whether the event
// was acted on. Movement, turning and FOV commands act on every event with the
// key down, so holding the key repeats them. Regenerate acts only on the
// event where the key goes down.
func (s *Scene) HandleKey(ev KeyEvent) bool {
	if ev.Command == CommandRegenerate {
		if !ev.Pressed() {
			return false
		}
		s.RegenerateMaze()
		return true
	}

	if !ev.IsDown {
		return false
	}

	switch ev.Command {
	case CommandForward:
		s.move(1)
	case CommandBackward:
		s.move(-1)
	case CommandTurnLeft:
		s.pose.Rotation -= s.turnStep
	case CommandTurnRight:
		s.pose.Rotation += s.turnStep
	case CommandNarrowFOV:
		s.setFOV(s.fov - s.fovStep)
	case CommandWidenFOV:
		s.setFOV(s.fov + s.fovStep)
	default:
		return false
	}
	return true
}
