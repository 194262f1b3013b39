package event

// DrawObject tells the presentation layer which part of the view is stale.
type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawPlayerMatrix
	DrawSide
)
