package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionHold
	ActionPause
	ActionStart
)

func (a GameAction) String() string {
	switch a {
	case ActionRotateCW:
		return "Rotate"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionHardDrop:
		return "Hard Drop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}
