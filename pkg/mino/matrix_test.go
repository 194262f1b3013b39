package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestMatrix returns a matrix with the bottom rows partly filled: row 19
// has a gap at x=9 and row 18 has a gap at x=0.
func NewTestMatrix() Matrix {
	var m Matrix
	for x := 0; x < MatrixWidth-1; x++ {
		m.SetBlock(x, MatrixHeight-1, BlockSolidMagenta)
	}
	for x := 1; x < MatrixWidth; x++ {
		m.SetBlock(x, MatrixHeight-2, BlockSolidYellow)
	}

	return m
}

func fillRow(m *Matrix, y int) {
	for x := 0; x < MatrixWidth; x++ {
		m[y][x] = BlockSolidCyan
	}
}

func TestCanAddAtBounds(t *testing.T) {
	var m Matrix
	i := PieceI.BaseShape()

	assert.True(t, m.CanAddAt(i, Point{0, 0}))
	assert.True(t, m.CanAddAt(i, Point{6, 0}))
	assert.False(t, m.CanAddAt(i, Point{-1, 0}), "left wall")
	assert.False(t, m.CanAddAt(i, Point{7, 0}), "right wall")
	assert.True(t, m.CanAddAt(i, Point{0, 18}))
	assert.False(t, m.CanAddAt(i, Point{0, 19}), "floor")

	// Above the field only the walls and floor apply.
	assert.True(t, m.CanAddAt(i, Point{0, -1}))
	assert.True(t, m.CanAddAt(i, Point{0, -5}))
	assert.False(t, m.CanAddAt(i, Point{-1, -5}))
}

func TestCanAddAtEveryPosition(t *testing.T) {
	var m Matrix
	m.SetBlock(4, 10, BlockSolidRed)

	for _, p := range AllPieces {
		shape := p.BaseShape()
		for r := 0; r < 4; r++ {
			for y := -4; y < MatrixHeight+2; y++ {
				for x := -4; x < MatrixWidth+2; x++ {
					expected := true
					for _, c := range shape.Cells() {
						cx, cy := x+c.X, y+c.Y
						if cx < 0 || cx >= MatrixWidth || cy >= MatrixHeight || (cx == 4 && cy == 10) {
							expected = false
						}
					}

					require.Equal(t, expected, m.CanAddAt(shape, Point{x, y}), "piece %s rotation %d at (%d,%d)", p, r, x, y)
				}
			}

			shape = shape.Rotate()
		}
	}
}

func TestAdd(t *testing.T) {
	var m Matrix

	p := NewPiece(PieceT)
	placed := m.Add(p)

	assert.Equal(t, BlockNone, m.Block(5, 0), "Add must not modify the receiver")
	assert.Equal(t, BlockSolidMagenta, placed.Block(5, 0))
	assert.Equal(t, BlockSolidMagenta, placed.Block(4, 1))
	assert.Equal(t, BlockSolidMagenta, placed.Block(5, 1))
	assert.Equal(t, BlockSolidMagenta, placed.Block(6, 1))
	assert.False(t, placed.CanAdd(p))
}

func TestAddDropsCellsAboveField(t *testing.T) {
	var m Matrix

	p := NewPiece(PieceT).At(Point{4, -1})
	placed := m.Add(p)

	filled := 0
	for y := 0; y < MatrixHeight; y++ {
		for x := 0; x < MatrixWidth; x++ {
			if placed.Block(x, y) != BlockNone {
				filled++
			}
		}
	}

	assert.Equal(t, 3, filled)
}

func TestFilledRows(t *testing.T) {
	m := NewTestMatrix()
	assert.Empty(t, m.FilledRows())

	m.SetBlock(9, MatrixHeight-1, BlockSolidMagenta)
	m.SetBlock(0, MatrixHeight-2, BlockSolidMagenta)
	fillRow(&m, 3)

	assert.Equal(t, []int{3, 18, 19}, m.FilledRows())
}

func TestClearRows(t *testing.T) {
	var m Matrix
	fillRow(&m, 19)
	fillRow(&m, 17)
	m.SetBlock(0, 18, BlockSolidRed)
	m.SetBlock(5, 16, BlockSolidBlue)

	rows := m.FilledRows()
	require.Equal(t, []int{17, 19}, rows)

	cleared := m.ClearRows(rows)

	assert.Empty(t, cleared.FilledRows())
	assert.Len(t, cleared, MatrixHeight)
	assert.Equal(t, BlockSolidRed, cleared.Block(0, 19))
	assert.Equal(t, BlockSolidBlue, cleared.Block(5, 18))

	for y := 0; y < 18; y++ {
		for x := 0; x < MatrixWidth; x++ {
			assert.Equal(t, BlockNone, cleared.Block(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestClearRowsTetris(t *testing.T) {
	var m Matrix
	for y := 16; y < MatrixHeight; y++ {
		fillRow(&m, y)
	}
	m.SetBlock(2, 15, BlockSolidGreen)

	cleared := m.ClearRows(m.FilledRows())

	assert.Empty(t, cleared.FilledRows())
	assert.Equal(t, BlockSolidGreen, cleared.Block(2, 19))
	assert.Equal(t, BlockNone, cleared.Block(2, 15))
}

func TestGhost(t *testing.T) {
	var m Matrix

	p := NewPiece(PieceI)
	assert.Equal(t, Point{3, 18}, m.Ghost(p))

	m = NewTestMatrix()
	assert.Equal(t, Point{3, 16}, m.Ghost(p))

	o := NewPiece(PieceO).At(Point{8, 0})
	assert.Equal(t, Point{8, 16}, m.Ghost(o))
}

func TestRender(t *testing.T) {
	m := NewTestMatrix()

	rendered := m.Render()
	require.Len(t, []rune(rendered), MatrixHeight*MatrixWidth+MatrixHeight-1)
	assert.Contains(t, rendered, " █████████\n█████████ ")
}
