package mino

import (
	"strings"
)

const (
	MatrixWidth  = 10
	MatrixHeight = 20
)

// Matrix is the fixed playing field, indexed [y][x] with row 0 at the top.
// It is a value type: every operation that changes it returns a new matrix.
type Matrix [MatrixHeight][MatrixWidth]Block

func InBounds(x int, y int) bool {
	return x >= 0 && x < MatrixWidth && y >= 0 && y < MatrixHeight
}

func (m *Matrix) Block(x int, y int) Block {
	if !InBounds(x, y) {
		return BlockNone
	}

	return m[y][x]
}

func (m *Matrix) Empty(loc Point) bool {
	return m.Block(loc.X, loc.Y) == BlockNone
}

// SetBlock fills an empty in-bounds cell and reports whether it did.
func (m *Matrix) SetBlock(x int, y int, block Block) bool {
	if !InBounds(x, y) || m[y][x] != BlockNone {
		return false
	}

	m[y][x] = block

	return true
}

// CanAddAt reports whether shape fits with its top-left corner at loc. Filled
// cells must stay inside the side walls and above the floor; cells above the
// top edge are allowed and only cells on the field are checked for overlap.
func (m *Matrix) CanAddAt(s Shape, loc Point) bool {
	var x, y int
	for row := range s {
		for col, filled := range s[row] {
			if !filled {
				continue
			}

			x = loc.X + col
			y = loc.Y + row

			if x < 0 || x >= MatrixWidth || y >= MatrixHeight {
				return false
			}

			if y >= 0 && m[y][x] != BlockNone {
				return false
			}
		}
	}

	return true
}

// CanAdd reports whether the piece fits at its own position.
func (m *Matrix) CanAdd(p *Piece) bool {
	return m.CanAddAt(p.Shape, p.Point)
}

// Add returns a copy of the matrix with the piece written into it. Cells above
// the top edge are dropped.
func (m Matrix) Add(p *Piece) Matrix {
	block := p.Type.Solid()

	var x, y int
	for _, c := range p.Shape.Cells() {
		x = p.X + c.X
		y = p.Y + c.Y

		if !InBounds(x, y) {
			continue
		}

		m[y][x] = block
	}

	return m
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < MatrixWidth; x++ {
		if m.Empty(Point{x, y}) {
			return false
		}
	}

	return true
}

// FilledRows returns the indices of every full row, top to bottom.
func (m *Matrix) FilledRows() []int {
	var rows []int
	for y := 0; y < MatrixHeight; y++ {
		if m.LineFilled(y) {
			rows = append(rows, y)
		}
	}

	return rows
}

// ClearRows returns a copy of the matrix with the given rows removed. The
// remaining rows keep their order and settle to the bottom; empty rows fill
// the top.
func (m Matrix) ClearRows(rows []int) Matrix {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < MatrixHeight {
			remove[y] = true
		}
	}

	var cleared Matrix
	dst := MatrixHeight - 1
	for y := MatrixHeight - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}

		cleared[dst] = m[y]
		dst--
	}

	return cleared
}

// Ghost returns the lowest position the piece reaches by falling straight
// down from where it is.
func (m *Matrix) Ghost(p *Piece) Point {
	loc := p.Point
	for m.CanAddAt(p.Shape, loc.Down()) {
		loc = loc.Down()
	}

	return loc
}

// Render draws the matrix top to bottom, one line per row.
func (m *Matrix) Render() string {
	var b strings.Builder

	for y := 0; y < MatrixHeight; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}

		for x := 0; x < MatrixWidth; x++ {
			b.WriteRune(m[y][x].Rune())
		}
	}

	return b.String()
}
