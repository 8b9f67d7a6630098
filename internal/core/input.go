package core

// Action represents a semantic game action, abstracted from physical key presses.
// The game core only understands ActionActivate; the rest are platform actions.
type Action int

const (
	ActionNone       Action = iota
	ActionActivate          // Space, Enter, Up, W, pointer press - start, flap, restart
	ActionScoreboard        // L, Tab - open the leaderboard
	ActionSettings          // S - open the settings panel
	ActionToggleMute        // M - mute/unmute audio
	ActionCycleTheme        // T - switch visual theme
	ActionEditName          // N - focus the player name input
	ActionBack              // B, Escape - go back
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionSettings:
		return "Settings"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionCycleTheme:
		return "CycleTheme"
	case ActionEditName:
		return "EditName"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to how many times they were triggered.
	// Counting lets rapid double taps inside one frame still reach the game.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
