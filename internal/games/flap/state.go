// Package flap implements Razor Flap, a one-button side-scroller where the
// player flaps through gaps between razor pairs.
//
// The package is a pure simulation core. It never schedules itself: the host
// calls Session.Advance with a clamped, smoothed delta on every frame and
// draws the returned RenderState with Render.
package flap

// State is the session lifecycle state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateDying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
