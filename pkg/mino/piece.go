package mino

import (
	"fmt"
	"strings"
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of identities in the catalog and the size of a bag.
const PieceCount = 7

// AllPieces lists every identity in catalog order.
var AllPieces = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

func (t PieceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

func (t PieceType) Solid() Block { return BlockSolidCyan + Block(t) }
func (t PieceType) Ghost() Block { return BlockGhostCyan + Block(t) }

// Shape is a square grid of filled cells, indexed [row][column].
type Shape [][]bool

var baseShapes = [PieceCount]Shape{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceO: {
		{true, true},
		{true, true},
	},
	PieceT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	PieceS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	PieceZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	PieceJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	PieceL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// BaseShape returns a fresh copy of the spawn orientation of t.
func (t PieceType) BaseShape() Shape {
	if !t.Valid() {
		return nil
	}

	return baseShapes[t].Clone()
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i := range s {
		c[i] = make([]bool, len(s[i]))
		copy(c[i], s[i])
	}

	return c
}

// Width returns the bounding box width of the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise: transpose then reverse rows.
func (s Shape) Rotate() Shape {
	size := len(s)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			rotated[j][size-1-i] = s[i][j]
		}
	}

	return rotated
}

// Cells returns the offsets of the filled cells relative to the top-left
// corner of the bounding box.
func (s Shape) Cells() []Point {
	var cells []Point
	for y := range s {
		for x, filled := range s[y] {
			if filled {
				cells = append(cells, Point{x, y})
			}
		}
	}

	return cells
}

// Top returns the index of the first row holding a filled cell.
func (s Shape) Top() int {
	for y := range s {
		for _, filled := range s[y] {
			if filled {
				return y
			}
		}
	}

	return 0
}

func (s Shape) String() string {
	var b strings.Builder
	for y := range s {
		if y > 0 {
			b.WriteRune('\n')
		}
		for _, filled := range s[y] {
			if filled {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}

// RotationOffsets is the ordered list of positions tried when committing a
// rotation: in place, right, left, up, up-right, up-left.
var RotationOffsets = []Point{{0, 0}, {1, 0}, {-1, 0}, {0, -1}, {1, -1}, {-1, -1}}

// Piece is the active piece: its identity, current orientation and the
// position of the top-left corner of its bounding box.
type Piece struct {
	Point
	Type  PieceType
	Shape Shape
}

// NewPiece returns a piece of type t in its spawn orientation, horizontally
// centred with its top filled row on row 0.
func NewPiece(t PieceType) *Piece {
	shape := t.BaseShape()

	return &Piece{
		Point: SpawnPoint(shape),
		Type:  t,
		Shape: shape,
	}
}

// SpawnPoint returns the spawn position of a shape on a standard matrix. The
// bounding box is lifted above the field so its first filled row lands on
// row 0.
func SpawnPoint(s Shape) Point {
	return Point{X: MatrixWidth/2 - s.Width()/2, Y: -s.Top()}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Type, p.Point)
}

// Copy returns a deep copy of the piece.
func (p *Piece) Copy() *Piece {
	if p == nil {
		return nil
	}

	return &Piece{Point: p.Point, Type: p.Type, Shape: p.Shape.Clone()}
}

// Rotated returns a copy of the piece with its shape turned clockwise. The
// position is unchanged.
func (p *Piece) Rotated() *Piece {
	return &Piece{Point: p.Point, Type: p.Type, Shape: p.Shape.Rotate()}
}

// At returns a copy of the piece moved to loc.
func (p *Piece) At(loc Point) *Piece {
	return &Piece{Point: loc, Type: p.Type, Shape: p.Shape.Clone()}
}
