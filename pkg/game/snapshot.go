package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

type State int

const (
	StateIdle State = iota
	StateSpawning
	StateFalling
	StateLockDelay
	StateClearing
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSpawning:
		return "Spawning"
	case StateFalling:
		return "Falling"
	case StateLockDelay:
		return "LockDelay"
	case StateClearing:
		return "Clearing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a read-only copy of the session, safe to keep after the engine
// moves on.
type Snapshot struct {
	Session uuid.UUID `json:"session"`
	Seed    int64     `json:"seed"`
	State   State     `json:"state"`

	Matrix mino.Matrix `json:"matrix"`
	Piece  *mino.Piece `json:"piece,omitempty"`
	Ghost  *mino.Point `json:"ghost,omitempty"`

	Held    mino.PieceType   `json:"held"`
	HasHeld bool             `json:"has_held"`
	CanHold bool             `json:"can_hold"`
	Next    []mino.PieceType `json:"next"`

	Score        int           `json:"score"`
	Level        int           `json:"level"`
	Lines        int           `json:"lines"`
	Combo        int           `json:"combo"`
	DropInterval time.Duration `json:"drop_interval"`

	Paused   bool `json:"paused"`
	Playing  bool `json:"playing"`
	GameOver bool `json:"game_over"`

	Clearing []int                  `json:"clearing,omitempty"`
	Stats    map[mino.PieceType]int `json:"stats"`
}

// IsClearing reports whether row y is waiting out its clear animation.
func (s *Snapshot) IsClearing(y int) bool {
	for _, row := range s.Clearing {
		if row == y {
			return true
		}
	}

	return false
}

// Block returns what the presentation should draw at (x, y): the active piece,
// then the ghost, then the matrix.
func (s *Snapshot) Block(x int, y int) mino.Block {
	if p := s.Piece; p != nil {
		if filled(p.Shape, x-p.X, y-p.Y) {
			return p.Type.Solid()
		}

		if g := s.Ghost; g != nil && filled(p.Shape, x-g.X, y-g.Y) {
			return p.Type.Ghost()
		}
	}

	return s.Matrix.Block(x, y)
}

// Board returns the matrix with the ghost and the active piece drawn in.
func (s *Snapshot) Board() mino.Matrix {
	var m mino.Matrix
	for y := 0; y < mino.MatrixHeight; y++ {
		for x := 0; x < mino.MatrixWidth; x++ {
			m[y][x] = s.Block(x, y)
		}
	}

	return m
}

func filled(s mino.Shape, col int, row int) bool {
	return row >= 0 && row < len(s) && col >= 0 && col < len(s[row]) && s[row][col]
}
