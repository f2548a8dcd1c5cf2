package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_Mapping(t *testing.T) {
	// 80 columns x 50 court rows plus 1 score row
	v := NewViewport(80, 51, 1, Court{Width: 800, Height: 500})

	assert.Equal(t, 80, v.Cols)
	assert.Equal(t, 50, v.Rows)
	assert.Equal(t, 10.0, v.CellWidth())
	assert.Equal(t, 10.0, v.CellHeight())

	assert.Equal(t, 0, v.ToCellX(0))
	assert.Equal(t, 2, v.ToCellX(20))
	assert.Equal(t, 79, v.ToCellX(799.9))
	assert.Equal(t, 1, v.ToCellY(0))
	assert.Equal(t, 26, v.ToCellY(250))

	assert.Equal(t, 5.0, v.ToCourtY(1))
	assert.Equal(t, 255.0, v.ToCourtY(26))
}

func TestViewport_Degenerate(t *testing.T) {
	v := NewViewport(0, 1, 1, Court{Width: 800, Height: 500})
	assert.Equal(t, 1, v.Cols)
	assert.Equal(t, 1, v.Rows)
	assert.Equal(t, 250.0, v.ToCourtY(1))
}

func TestViewport_ContainsCell(t *testing.T) {
	v := NewViewport(10, 6, 1, Court{Width: 100, Height: 50})
	assert.True(t, v.ContainsCell(0, 1))
	assert.True(t, v.ContainsCell(9, 5))
	assert.False(t, v.ContainsCell(0, 0))
	assert.False(t, v.ContainsCell(10, 3))
	assert.False(t, v.ContainsCell(3, 6))
}
