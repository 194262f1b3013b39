package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

const DefaultStatusText = "←/→ move  ↓ drop  ↑/X rotate  Space hard drop  C hold  P pause  Enter start  Q quit"

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'c', a: event.ActionHold},
	{r: 'C', a: event.ActionHold},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{k: tcell.KeyEnter, a: event.ActionStart},
}

// ActionFor returns the action bound to a key event, or ActionUnknown.
func ActionFor(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if (bind.k != 0 && bind.k != k) || (bind.r != 0 && (k != tcell.KeyRune || bind.r != r)) || (bind.m != 0 && bind.m != ev.Modifiers()) {
			continue
		}

		return bind.a
	}

	return event.ActionUnknown
}

// quitKey reports whether the event closes the interface.
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
