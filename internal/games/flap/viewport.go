package flap

import (
	"math"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Viewport maps the logical playfield onto a grid of terminal cells,
// letterboxed and centred on the screen.
type Viewport struct {
	OffX, OffY int     // screen cell of the field's top-left corner
	Cols, Rows int     // field size in cells
	SX, SY     float64 // logical pixels per column and per row
	field      config.PlayfieldConfig
}

// FitViewport fits a field of fieldW x fieldH into a w x h cell screen
// while preserving its aspect ratio.
func FitViewport(w, h int, fieldW, fieldH float64) Viewport {
	vp := Viewport{field: config.PlayfieldConfig{Width: fieldW, Height: fieldH}}
	if w <= 0 || h <= 0 || fieldW <= 0 || fieldH <= 0 {
		return vp
	}

	sx := fieldW / float64(w)
	sy := fieldH / float64(h)
	if sy/cellAspect > sx {
		sx = sy / cellAspect
	} else {
		sy = sx * cellAspect
	}

	cols := int(math.Round(fieldW / sx))
	rows := int(math.Round(fieldH / sy))
	if cols > w {
		cols = w
	}
	if rows > h {
		rows = h
	}
	if cols < 1 || rows < 1 {
		return vp
	}

	vp.Cols, vp.Rows = cols, rows
	vp.OffX, vp.OffY = (w-cols)/2, (h-rows)/2
	vp.SX = fieldW / float64(cols)
	vp.SY = fieldH / float64(rows)
	return vp
}

// Empty reports whether the viewport has no cells.
func (vp Viewport) Empty() bool {
	return vp.Cols == 0 || vp.Rows == 0
}

// CellCenter returns the logical point at the centre of field cell (col, row).
func (vp Viewport) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * vp.SX, (float64(row) + 0.5) * vp.SY
}

// ScreenToLogical converts a screen cell into logical coordinates. ok is
// false when the cell lies outside the field.
func (vp Viewport) ScreenToLogical(sx, sy int) (x, y float64, ok bool) {
	col, row := sx-vp.OffX, sy-vp.OffY
	if vp.Empty() || col < 0 || row < 0 || col >= vp.Cols || row >= vp.Rows {
		return 0, 0, false
	}
	x, y = ToLogical(float64(col)+0.5, float64(row)+0.5, float64(vp.Cols), float64(vp.Rows), vp.field)
	return x, y, true
}

// LogicalToScreen returns the screen cell containing logical (x, y).
func (vp Viewport) LogicalToScreen(x, y float64) (sx, sy int) {
	return vp.OffX + int(math.Floor(x/vp.SX)), vp.OffY + int(math.Floor(y/vp.SY))
}
