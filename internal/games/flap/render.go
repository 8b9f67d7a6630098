package flap

import (
	"fmt"
	"math"

	"github.com/vovakirdan/razor-flap/internal/core"
	"github.com/vovakirdan/razor-flap/internal/registry"
)

// Ghost glyph drawn for chromatic aberration fringes.
const ghostGlyph = '░'

// Render rasterises rs into dst. It is a pure function of its inputs; dst is
// cleared first and its size defines the viewport. Sprites missing from the
// theme are skipped, everything else is still drawn.
func Render(rs RenderState, theme registry.Theme, dst *core.Screen) {
	dst.Clear()

	vp := FitViewport(dst.Width(), dst.Height(), rs.Geometry.Width, rs.Geometry.Height)
	if vp.Empty() {
		return
	}

	r := &renderer{rs: rs, theme: theme, dst: dst, vp: vp}

	if rs.State == StateReady {
		r.drawReady()
		r.drawButtons()
		return
	}

	r.drawScene()
	r.drawParticles()
	r.drawVignette()
	r.drawGround()
	r.drawHUD()
	r.drawFlash()
}

type renderer struct {
	rs    RenderState
	theme registry.Theme
	dst   *core.Screen
	vp    Viewport
}

// spriteRunes converts frame idx of frames to rune rows, or nil when the
// frame is unavailable.
func spriteRunes(frames []registry.Sprite, idx int) [][]rune {
	if idx < 0 || idx >= len(frames) || len(frames[idx]) == 0 {
		return nil
	}
	rows := make([][]rune, len(frames[idx]))
	for i, line := range frames[idx] {
		rows[i] = []rune(line)
	}
	return rows
}

// sampleSprite returns the sprite glyph covering logical (wx, wy) for a
// sprite of size w x h centred at (cx, cy) and rotated by rotDeg.
func sampleSprite(sprite [][]rune, cx, cy, w, h, rotDeg, wx, wy float64) (rune, bool) {
	if len(sprite) == 0 || w <= 0 || h <= 0 {
		return 0, false
	}
	dx, dy := wx-cx, wy-cy
	if rotDeg != 0 {
		th := -rotDeg * math.Pi / 180
		sin, cos := math.Sincos(th)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	u := dx/w + 0.5
	v := dy/h + 0.5
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return 0, false
	}
	row := sprite[int(v*float64(len(sprite)))]
	if len(row) == 0 {
		return 0, false
	}
	ch := row[int(u*float64(len(row)))]
	if ch == ' ' {
		return 0, false
	}
	return ch, true
}

func (r *renderer) put(col, row int, ch rune, c core.Color) {
	r.dst.SetWithColor(r.vp.OffX+col, r.vp.OffY+row, ch, c)
}

func (r *renderer) playerSprite() ([][]rune, core.Color) {
	switch r.rs.State {
	case StateDying, StateGameOver:
		return spriteRunes(r.theme.DeathFrames, r.rs.Player.DeathFrame), r.theme.PlayerDead
	default:
		return spriteRunes(r.theme.FlapFrames, r.rs.Player.Frame), r.theme.Player
	}
}

// sample returns what the scene shows at world point (wx, wy).
func (r *renderer) sample(wx, wy float64, sprite [][]rune, playerColor core.Color) (rune, core.Color, bool) {
	g := r.rs.Geometry
	p := r.rs.Player

	if sprite != nil {
		if ch, ok := sampleSprite(sprite, p.X+g.PlayerW/2, p.Y+g.PlayerH/2, g.PlayerW, g.PlayerH, p.Rotation, wx, wy); ok {
			return ch, playerColor, true
		}
	}

	if wx < 0 || wx >= g.Width || wy < 0 || wy >= g.Height {
		return 0, 0, false
	}

	for _, o := range r.rs.Obstacles {
		if wx < o.X || wx >= o.X+g.ObstacleW {
			continue
		}
		if wy < o.GapY {
			return r.bladeCell(o.GapY-wy, wx-o.X, true)
		}
		if wy >= o.GapY+g.Gap {
			return r.bladeCell(wy-(o.GapY+g.Gap), wx-o.X, false)
		}
	}
	return 0, 0, false
}

// bladeCell shades one razor cell. depth is the distance from the gap edge,
// xOff the distance from the razor's left edge.
func (r *renderer) bladeCell(depth, xOff float64, top bool) (rune, core.Color, bool) {
	g := r.rs.Geometry
	body := r.theme.BotBlade
	tip := r.theme.BotTipGlyph
	if top {
		body = r.theme.TopBlade
		tip = r.theme.TopTipGlyph
	}

	switch {
	case depth < r.vp.SY:
		return tip, r.theme.BladeEdge, true
	case depth < g.BladeH:
		return r.theme.BladeGlyph, body, true
	case xOff >= g.EdgePadding && xOff < g.ObstacleW-g.EdgePadding:
		return r.theme.BarGlyph, body, true
	default:
		return 0, 0, false
	}
}

// camera returns the zoom centre and factor.
func (r *renderer) camera() (cx, cy, zoom float64) {
	g := r.rs.Geometry
	zoom = r.rs.SlowMotion.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return r.rs.Player.X + g.PlayerW/2, r.rs.Player.Y + g.PlayerH/2, zoom
}

func (r *renderer) drawScene() {
	sprite, playerColor := r.playerSprite()
	cx, cy, zoom := r.camera()
	ab := r.rs.SlowMotion.Aberration
	gray := r.rs.SlowMotion.Desaturation >= 0.5

	for row := 0; row < r.vp.Rows; row++ {
		for col := 0; col < r.vp.Cols; col++ {
			lx, ly := r.vp.CellCenter(col, row)
			wx := cx + (lx-r.rs.ShakeX-cx)/zoom
			wy := cy + (ly-r.rs.ShakeY-cy)/zoom

			ch, c, ok := r.sample(wx, wy, sprite, playerColor)
			if !ok && ab >= 1 {
				if _, _, hit := r.sample(wx-ab, wy, sprite, playerColor); hit {
					ch, c, ok = ghostGlyph, core.ColorRed, true
				} else if _, _, hit := r.sample(wx+ab, wy, sprite, playerColor); hit {
					ch, c, ok = ghostGlyph, core.ColorCyan, true
				}
			}
			if !ok {
				continue
			}
			if gray {
				c = c.Gray()
			}
			r.put(col, row, ch, c)
		}
	}
}

func (r *renderer) drawParticles() {
	cx, cy, zoom := r.camera()
	gray := r.rs.SlowMotion.Desaturation >= 0.5
	c := r.theme.Particle
	if gray {
		c = c.Gray()
	}

	for _, p := range r.rs.Particles {
		x := cx + (p.X-cx)*zoom + r.rs.ShakeX
		y := cy + (p.Y-cy)*zoom + r.rs.ShakeY
		if x < 0 || y < 0 || x >= r.rs.Geometry.Width || y >= r.rs.Geometry.Height {
			continue
		}
		glyph := r.theme.ParticleGlyph
		if p.Fade() < 0.4 {
			glyph = '·'
		}
		sx, sy := r.vp.LogicalToScreen(x, y)
		r.dst.SetWithColor(sx, sy, glyph, c)
	}
}

// drawVignette darkens the border ring; its width grows with intensity.
func (r *renderer) drawVignette() {
	v := r.rs.SlowMotion.Vignette
	if v <= 0.05 {
		return
	}
	threshold := 1 - v*0.5
	for row := 0; row < r.vp.Rows; row++ {
		ny := math.Abs((float64(row)+0.5)/float64(r.vp.Rows)*2 - 1)
		for col := 0; col < r.vp.Cols; col++ {
			nx := math.Abs((float64(col)+0.5)/float64(r.vp.Cols)*2 - 1)
			if math.Max(nx, ny) <= threshold {
				continue
			}
			x, y := r.vp.OffX+col, r.vp.OffY+row
			if r.dst.Get(x, y) == ' ' {
				r.dst.SetWithColor(x, y, '░', core.ColorDarkGray)
			} else {
				r.dst.SetColor(x, y, core.ColorDarkGray)
			}
		}
	}
}

// drawGround underlines the field when there is room below it.
func (r *renderer) drawGround() {
	y := r.vp.OffY + r.vp.Rows
	if y >= r.dst.Height() {
		return
	}
	r.dst.DrawHLine(r.vp.OffX, y, r.vp.Cols, '▀', r.theme.Ground)
}

// textCentered writes text centred in the field on field row row.
func (r *renderer) textCentered(row int, text string, c core.Color) {
	n := len([]rune(text))
	r.dst.DrawTextColor(r.vp.OffX+(r.vp.Cols-n)/2, r.vp.OffY+row, text, c)
}

// rowAt returns the field row containing logical y, clamped to the field.
func (r *renderer) rowAt(y float64) int {
	return core.Clamp(int(y/r.vp.SY), 0, r.vp.Rows-1)
}

func (r *renderer) drawHUD() {
	switch r.rs.State {
	case StatePlaying, StateDying:
		r.textCentered(r.rowAt(85), fmt.Sprintf(" %d ", r.rs.Score), r.theme.HUD)
	case StateGameOver:
		r.drawGameOver()
		r.drawButtons()
	}
}

func (r *renderer) drawGameOver() {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score  %d", r.rs.DisplayScore),
		fmt.Sprintf("Best   %d", r.rs.Best),
	}
	if r.rs.NewBest {
		lines = append(lines, "** NEW BEST **")
	}
	if r.rs.Certificate != nil {
		lines = append(lines, "", describeCause(r.rs.Certificate.Cause))
	}
	lines = append(lines, "", "Space to play again")

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := core.Min(w+4, r.vp.Cols)
	boxH := core.Min(len(lines)+2, r.vp.Rows)
	top := core.Max(0, r.rowAt(r.rs.Geometry.Height*0.4)-boxH/2)
	box := core.NewRect(r.vp.OffX+(r.vp.Cols-boxW)/2, r.vp.OffY+top, boxW, boxH)

	r.dst.DrawRect(box, ' ', core.ColorDefault)
	r.dst.DrawBox(box, r.theme.HUD)
	for i, l := range lines {
		c := r.theme.HUD
		if i == 0 || (r.rs.NewBest && l == "** NEW BEST **") {
			c = r.theme.Accent
		}
		r.textCentered(top+1+i, l, c)
	}
}

func (r *renderer) drawButtons() {
	for _, b := range r.rs.Buttons {
		cx, cy := b.Rect.Center()
		label := "[ " + b.Label + " ]"
		n := len([]rune(label))
		col := int(cx/r.vp.SX) - n/2
		r.dst.DrawTextColor(r.vp.OffX+core.Max(0, col), r.vp.OffY+r.rowAt(cy), label, r.theme.Accent)
	}
}

func (r *renderer) drawReady() {
	g := r.rs.Geometry
	ready := r.rs.Ready

	r.textCentered(r.rowAt(170), "RAZOR FLAP", r.theme.Accent)

	// A flying character above the prompt and a falling one below it.
	r.drawSpriteAt(spriteRunes(r.theme.FlapFrames, ready.FlapFrame), g.Width/2, g.Height*0.35+ready.Bob, 340, 340, 0, r.theme.Player)
	r.drawSpriteAt(spriteRunes(r.theme.DeathFrames, ready.DeathFrame), g.Width/2, g.Height*0.65, 340, 340, ready.Wobble, r.theme.PlayerDead)

	if ready.Pulse >= 0.3 {
		c := r.theme.HUD
		if ready.Pulse < 0.6 {
			c = core.ColorGray
		}
		r.textCentered(r.rowAt(g.Height/2), "Press Space or Click to Start", c)
	}

	if r.rs.Best > 0 {
		r.textCentered(r.rowAt(g.Height*0.78), fmt.Sprintf("Best %d", r.rs.Best), r.theme.HUD)
	}
	name := r.rs.PlayerName
	if name == "" {
		name = "anonymous"
	}
	r.textCentered(r.rowAt(g.Height*0.96), "Player: "+name, core.ColorGray)
}

// drawSpriteAt draws a sprite without camera transforms.
func (r *renderer) drawSpriteAt(sprite [][]rune, cx, cy, w, h, rot float64, c core.Color) {
	if sprite == nil {
		return
	}
	for row := 0; row < r.vp.Rows; row++ {
		for col := 0; col < r.vp.Cols; col++ {
			lx, ly := r.vp.CellCenter(col, row)
			if ch, ok := sampleSprite(sprite, cx, cy, w, h, rot, lx, ly); ok {
				r.put(col, row, ch, c)
			}
		}
	}
}

// drawFlash overlays the flash last, unshaken.
func (r *renderer) drawFlash() {
	a := r.rs.FlashAlpha
	if a <= 0.05 {
		return
	}
	for row := 0; row < r.vp.Rows; row++ {
		for col := 0; col < r.vp.Cols; col++ {
			x, y := r.vp.OffX+col, r.vp.OffY+row
			switch {
			case a >= 0.6:
				r.dst.SetWithColor(x, y, r.theme.FlashGlyph, r.theme.Flash)
			case a >= 0.3:
				if r.dst.Get(x, y) == ' ' {
					r.dst.SetWithColor(x, y, '▒', r.theme.Flash)
				} else {
					r.dst.SetColor(x, y, r.theme.Flash)
				}
			default:
				if r.dst.Get(x, y) == ' ' {
					r.dst.SetWithColor(x, y, '░', r.theme.Flash)
				}
			}
		}
	}
}
