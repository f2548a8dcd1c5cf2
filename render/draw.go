package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// DrawText writes s starting at (x, y), clipped to the screen width
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// FillRow paints a whole row with ch
func FillRow(screen tcell.Screen, y int, ch rune, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ch, nil, style)
	}
}

// CellSpan returns the first and last cell index covered by [lo, lo+size) on a grid of unit-sized cells
// A span narrower than one cell still covers the cell containing lo
func CellSpan(lo, size, unit float64) (first, last int) {
	first = int(math.Floor(lo / unit))
	last = int(math.Ceil((lo+size)/unit)) - 1
	if last < first {
		last = first
	}
	return first, last
}
