package gui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	MaxBlockSize = 2
	SideWidth    = 18
)

var (
	renderHLine    = string(tcell.RuneHLine)
	renderVLine    = string(tcell.RuneVLine)
	renderULCorner = string(tcell.RuneULCorner)
	renderURCorner = string(tcell.RuneURCorner)
	renderLLCorner = string(tcell.RuneLLCorner)
	renderLRCorner = string(tcell.RuneLRCorner)
)

// Renderer turns snapshots into tview dynamic colour text. It is not safe for
// concurrent use.
type Renderer struct {
	Theme     Theme
	BlockSize int
	Nickname  string

	buf    bytes.Buffer
	blocks map[mino.Block]string
}

func NewRenderer(theme Theme, blockSize int, nickname string) *Renderer {
	r := &Renderer{Nickname: nickname}
	r.SetTheme(theme)
	r.SetBlockSize(blockSize)

	return r
}

func (r *Renderer) SetTheme(theme Theme) {
	r.Theme = theme

	text := colorTag(theme.Text)

	r.blocks = map[mino.Block]string{mino.BlockNone: " "}
	for _, t := range mino.AllPieces {
		r.blocks[t.Solid()] = colorTag(theme.Pieces[t]) + string(t.Solid().Rune()) + text
		r.blocks[t.Ghost()] = colorTag(theme.Ghosts[t]) + string(t.Ghost().Rune()) + text
	}
}

func (r *Renderer) SetBlockSize(size int) {
	if size < 1 {
		size = 1
	} else if size > MaxBlockSize {
		size = MaxBlockSize
	}

	r.BlockSize = size
}

// Width returns the number of columns the bordered matrix takes.
func (r *Renderer) Width() int {
	return mino.MatrixWidth*2*r.BlockSize + 2
}

// Height returns the number of rows the bordered matrix and the name line
// below it take.
func (r *Renderer) Height() int {
	return mino.MatrixHeight*r.BlockSize + 3
}

func colorTag(c tcell.Color) string {
	return "[" + fmtHex(c) + "]"
}

// Matrix renders the board with the ghost, the active piece and any rows
// waiting to be cleared.
func (r *Renderer) Matrix(s *game.Snapshot) []byte {
	r.buf.Reset()

	bs := r.BlockSize
	border := colorTag(r.Theme.Border)
	text := colorTag(r.Theme.Text)
	clearing := colorTag(r.Theme.Clearing) + "▒" + text

	r.buf.WriteString(border + renderULCorner + strings.Repeat(renderHLine, r.Width()-2) + renderURCorner + text + "\n")

	for y := 0; y < mino.MatrixHeight; y++ {
		flash := s.IsClearing(y)

		for j := 0; j < bs; j++ {
			r.buf.WriteString(border + renderVLine + text)

			for x := 0; x < mino.MatrixWidth; x++ {
				cell := r.blocks[s.Block(x, y)]
				if flash {
					cell = clearing
				}

				for k := 0; k < 2*bs; k++ {
					r.buf.WriteString(cell)
				}
			}

			r.buf.WriteString(border + renderVLine + text + "\n")
		}
	}

	r.buf.WriteString(border + renderLLCorner + strings.Repeat(renderHLine, r.Width()-2) + renderLRCorner + text + "\n")
	r.renderName()

	out := make([]byte, r.buf.Len())
	copy(out, r.buf.Bytes())

	return out
}

func (r *Renderer) renderName() {
	name := r.Nickname
	if len(name) > r.Width() {
		name = name[:r.Width()]
	}

	pad := (r.Width() - len(name)) / 2
	r.buf.WriteString(strings.Repeat(" ", pad))
	r.buf.WriteString(name)
}

// Side renders the panel next to the board: hold, preview, score, piece
// statistics and the session banner.
func (r *Renderer) Side(s *game.Snapshot) []byte {
	r.buf.Reset()

	label := colorTag(r.Theme.Label)
	text := colorTag(r.Theme.Text)

	r.buf.WriteString("\n" + label + " Hold" + text + "\n\n")
	if s.HasHeld {
		r.renderPiece(s.Held, !s.CanHold)
	} else {
		r.buf.WriteString("\n\n")
	}

	r.buf.WriteString("\n" + label + " Next" + text + "\n\n")
	for i := 0; i < game.PreviewSize; i++ {
		if i < len(s.Next) {
			r.renderPiece(s.Next[i], false)
		} else {
			r.buf.WriteString("\n\n")
		}
		r.buf.WriteRune('\n')
	}

	for _, stat := range []struct {
		name  string
		value int
	}{
		{"Score", s.Score},
		{"Level", s.Level},
		{"Lines", s.Lines},
		{"Combo", s.Combo},
	} {
		fmt.Fprintf(&r.buf, "%s %-6s%s%8d\n", label, stat.name, text, stat.value)
	}

	r.buf.WriteString("\n")
	for i, t := range mino.AllPieces {
		fmt.Fprintf(&r.buf, " %s%s%s %3d", colorTag(r.Theme.Pieces[t]), t, text, s.Stats[t])
		if i%2 == 1 || i == len(mino.AllPieces)-1 {
			r.buf.WriteRune('\n')
		}
	}

	r.buf.WriteString("\n" + colorTag(r.Theme.Banner) + r.banner(s) + text)

	out := make([]byte, r.buf.Len())
	copy(out, r.buf.Bytes())

	return out
}

func (r *Renderer) banner(s *game.Snapshot) string {
	switch {
	case s.GameOver:
		return " GAME OVER\n Enter to play again"
	case !s.Playing:
		return " Enter to start"
	case s.Paused:
		return " PAUSED"
	default:
		return ""
	}
}

// renderPiece draws the filled rows of a piece's spawn orientation in two
// lines, dimmed when it cannot be used.
func (r *Renderer) renderPiece(t mino.PieceType, dim bool) {
	block := t.Solid()
	if dim {
		block = t.Ghost()
	}

	var lines int
	for _, row := range t.BaseShape() {
		empty := true
		for _, filled := range row {
			if filled {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		r.buf.WriteRune(' ')
		for _, filled := range row {
			cell := r.blocks[mino.BlockNone]
			if filled {
				cell = r.blocks[block]
			}
			r.buf.WriteString(cell + cell)
		}
		r.buf.WriteRune('\n')
		lines++
	}

	for ; lines < 2; lines++ {
		r.buf.WriteRune('\n')
	}
}
