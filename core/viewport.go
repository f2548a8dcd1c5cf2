package core

import "math"

// Viewport maps court space onto a grid of terminal cells
// The court is stretched over Cols x Rows cells starting at (Left, Top)
type Viewport struct {
	Left, Top  int
	Cols, Rows int
	Court      Court
}

// NewViewport fits the court into a screen of w x h cells, reserving top rows for UI
func NewViewport(w, h, reservedTop int, court Court) Viewport {
	rows := h - reservedTop
	if rows < 1 {
		rows = 1
	}
	cols := w
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		Left:  0,
		Top:   reservedTop,
		Cols:  cols,
		Rows:  rows,
		Court: court,
	}
}

// CellWidth returns court units per column
func (v Viewport) CellWidth() float64 { return v.Court.Width / float64(v.Cols) }

// CellHeight returns court units per row
func (v Viewport) CellHeight() float64 { return v.Court.Height / float64(v.Rows) }

// ToCellX converts a court X to a screen column, not clamped
func (v Viewport) ToCellX(x float64) int {
	return v.Left + int(math.Floor(x/v.CellWidth()))
}

// ToCellY converts a court Y to a screen row, not clamped
func (v Viewport) ToCellY(y float64) int {
	return v.Top + int(math.Floor(y/v.CellHeight()))
}

// CellCenter returns the court coordinates of the center of screen cell (col, row)
func (v Viewport) CellCenter(col, row int) (x, y float64) {
	x = (float64(col-v.Left) + 0.5) * v.CellWidth()
	y = (float64(row-v.Top) + 0.5) * v.CellHeight()
	return x, y
}

// ToCourtY converts a screen row to court Y at the row center
// Rows outside the court still map linearly, callers clamp through Paddle.SetY
func (v Viewport) ToCourtY(row int) float64 {
	_, y := v.CellCenter(v.Left, row)
	return y
}

// ContainsCell reports whether (col, row) lies inside the court area
func (v Viewport) ContainsCell(col, row int) bool {
	return col >= v.Left && col < v.Left+v.Cols && row >= v.Top && row < v.Top+v.Rows
}
