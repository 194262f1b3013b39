package game

import (
	"time"
)

const (
	LinesPerLevel = 10

	SoftDropPoints = 1
	HardDropPoints = 2
	ComboPoints    = 50

	BaseDropInterval = 1000 * time.Millisecond
	DropIntervalStep = 50 * time.Millisecond
	MinDropInterval  = 50 * time.Millisecond
)

var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore returns the base score for clearing lines rows at once.
func LineScore(lines int) int {
	if lines <= 0 {
		return 0
	} else if lines >= len(lineScores) {
		return lineScores[len(lineScores)-1]
	}

	return lineScores[lines]
}

// ClearScore returns the points for a lock that cleared lines rows at the
// given level. combo is the number of clearing locks immediately before this
// one; when it is non-zero the bonus uses the incremented combo.
func ClearScore(lines int, level int, combo int) int {
	if lines <= 0 {
		return 0
	}

	score := LineScore(lines) * (level + 1)
	if combo > 0 {
		score += ComboPoints * (combo + 1) * (level + 1)
	}

	return score
}

// Level derives the level from the total lines cleared.
func Level(lines int) int {
	if lines < 0 {
		return 0
	}

	return lines / LinesPerLevel
}

// DropInterval returns the time between automatic fall ticks at level.
func DropInterval(level int) time.Duration {
	interval := BaseDropInterval - time.Duration(level)*DropIntervalStep
	if interval < MinDropInterval {
		return MinDropInterval
	}

	return interval
}
