package mino

import (
	"strconv"
	"strings"
)

// Point is a board-relative position. X grows to the right and Y grows
// downward, so row 0 is the top of the matrix.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Down() Point       { return Point{p.X, p.Y + 1} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}
