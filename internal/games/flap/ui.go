package flap

import (
	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
)

// ButtonID identifies a clickable UI element.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonLeaderboard
	ButtonSettings
)

func (b ButtonID) String() string {
	switch b {
	case ButtonLeaderboard:
		return "leaderboard"
	case ButtonSettings:
		return "settings"
	default:
		return "none"
	}
}

// Button is a UI element laid out in logical space.
type Button struct {
	ID    ButtonID
	Label string
	Rect  core.RectF
}

// Button geometry: 400x70 centred, the first at 88% of the field height.
const (
	buttonW   = 400
	buttonH   = 70
	buttonGap = 20
	buttonTop = 0.88
)

// LayoutButtons returns the buttons shown on the ready and game-over screens.
func LayoutButtons(field config.PlayfieldConfig) []Button {
	x := field.Width/2 - buttonW/2
	y := field.Height * buttonTop
	return []Button{
		{ID: ButtonLeaderboard, Label: "View Leaderboard", Rect: core.RectF{X: x, Y: y - buttonH - buttonGap, W: buttonW, H: buttonH}},
		{ID: ButtonSettings, Label: "Settings", Rect: core.RectF{X: x, Y: y, W: buttonW, H: buttonH}},
	}
}

// HitTest returns the button containing the logical point, edges included.
func HitTest(buttons []Button, x, y float64) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// ToLogical converts a point on a physical surface of physW x physH into
// logical playfield coordinates.
func ToLogical(px, py, physW, physH float64, field config.PlayfieldConfig) (x, y float64) {
	if physW <= 0 || physH <= 0 {
		return 0, 0
	}
	return px * field.Width / physW, py * field.Height / physH
}
