package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	rotated := PieceT.BaseShape().Rotate()

	assert.Equal(t, ".#.\n.##\n.#.", rotated.String())

	i := PieceI.BaseShape().Rotate()
	assert.Equal(t, "..#.\n..#.\n..#.\n..#.", i.String())

	assert.Equal(t, PieceO.BaseShape(), PieceO.BaseShape().Rotate())
}

func TestRotateFullTurn(t *testing.T) {
	for _, p := range AllPieces {
		shape := p.BaseShape()

		turned := shape
		for i := 0; i < 4; i++ {
			turned = turned.Rotate()
			require.Len(t, turned, len(shape), "piece %s changed size", p)
			require.Len(t, turned.Cells(), 4, "piece %s lost cells", p)
		}

		assert.Equal(t, shape, turned, "piece %s did not return to its base shape after four turns", p)
	}
}

func TestRotateDoesNotAlias(t *testing.T) {
	p := NewPiece(PieceL)
	r := p.Rotated()

	r.Shape[0][0] = !r.Shape[0][0]

	assert.Equal(t, PieceL.BaseShape(), p.Shape)
	assert.Equal(t, p.Point, r.Point)
}

func TestNewPieceSpawn(t *testing.T) {
	expected := map[PieceType]Point{
		PieceI: {3, -1},
		PieceO: {4, 0},
		PieceT: {4, 0},
		PieceS: {4, 0},
		PieceZ: {4, 0},
		PieceJ: {4, 0},
		PieceL: {4, 0},
	}

	for _, p := range AllPieces {
		piece := NewPiece(p)

		assert.Equal(t, p, piece.Type)
		assert.Equal(t, expected[p], piece.Point, "spawn point of %s", p)
		assert.Len(t, piece.Shape.Cells(), 4)

		var top []int
		for _, c := range piece.Shape.Cells() {
			if piece.Y+c.Y == 0 {
				top = append(top, piece.X+c.X)
			}
		}
		assert.NotEmpty(t, top, "%s does not reach row 0 at spawn", p)
	}
}

func TestSpawnOnFilledTopRow(t *testing.T) {
	var m Matrix
	for x := 0; x < MatrixWidth; x++ {
		m[0][x] = BlockSolidRed
	}

	for _, p := range AllPieces {
		assert.False(t, m.CanAdd(NewPiece(p)), "%s spawned over a filled top row", p)
	}
}

func TestShapeTop(t *testing.T) {
	assert.Equal(t, 1, PieceI.BaseShape().Top())
	assert.Equal(t, 0, PieceT.BaseShape().Top())
	assert.Equal(t, 0, PieceI.BaseShape().Rotate().Top())
}

func TestBlocks(t *testing.T) {
	for _, p := range AllPieces {
		solid, ghost := p.Solid(), p.Ghost()

		assert.True(t, solid.Solid())
		assert.False(t, solid.Ghost())
		assert.True(t, ghost.Ghost())
		assert.Equal(t, '█', solid.Rune())
		assert.Equal(t, '▓', ghost.Rune())
	}

	assert.False(t, BlockNone.Solid())
	assert.Equal(t, ' ', BlockNone.Rune())
}
