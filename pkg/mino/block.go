package mino

type Block int

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch {
	case b == BlockNone:
		return ' '
	case b.Ghost():
		return '▓'
	case b.Solid():
		return '█'
	default:
		return '?'
	}
}

// Solid reports whether the block occupies a cell.
func (b Block) Solid() bool {
	return b >= BlockSolidCyan && b <= BlockSolidOrange
}

// Ghost reports whether the block is a drop preview overlay.
func (b Block) Ghost() bool {
	return b >= BlockGhostCyan && b <= BlockGhostOrange
}

// Solid and ghost blocks are ordered like the piece catalog so a block can
// be derived from a PieceType by offset.
const (
	BlockNone Block = iota
	BlockGhostCyan
	BlockGhostYellow
	BlockGhostMagenta
	BlockGhostGreen
	BlockGhostRed
	BlockGhostBlue
	BlockGhostOrange
	BlockSolidCyan
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidRed
	BlockSolidBlue
	BlockSolidOrange
)
