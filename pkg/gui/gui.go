package gui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

// DrawQueueSize is the buffer of the channel the engine uses to request
// redraws.
const DrawQueueSize = 10

type GUI struct {
	App *tview.Application

	game   *game.Game
	draw   chan event.DrawObject
	logger *zap.Logger

	grid   *tview.Grid
	mtx    *tview.TextView
	side   *tview.TextView
	status *tview.TextView

	renderer   *Renderer
	renderLock *sync.Mutex

	fixedBlockSize bool

	screenW, screenH int
}

// NewGUI builds the interface for g. draw must be the channel g reports
// changes on. A scale of 0 picks the block size from the terminal size.
func NewGUI(g *game.Game, draw chan event.DrawObject, theme Theme, nickname string, scale int, logger *zap.Logger) *GUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	gui := &GUI{
		App:            tview.NewApplication(),
		game:           g,
		draw:           draw,
		logger:         logger,
		renderer:       NewRenderer(theme, scale, nickname),
		renderLock:     new(sync.Mutex),
		fixedBlockSize: scale > 0,
	}

	gui.mtx = newTextView()
	gui.side = newTextView()
	gui.status = newTextView().SetText(DefaultStatusText)
	gui.status.SetTextColor(theme.Label)

	gui.grid = tview.NewGrid().SetBorders(false)
	gui.layout()

	gui.grid.
		AddItem(tview.NewBox(), 0, 0, 2, 1, 0, 0, false).
		AddItem(gui.mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(gui.side, 0, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 0, 3, 1, 1, 0, 0, false).
		AddItem(gui.status, 1, 1, 1, 3, 0, 0, false)

	gui.App.SetRoot(gui.grid, true).
		SetInputCapture(gui.handleKeypress).
		SetBeforeDrawFunc(gui.handleResize)

	return gui
}

func newTextView() *tview.TextView {
	v := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	v.SetDynamicColors(true)

	return v
}

// Run draws until the application stops.
func (gui *GUI) Run() error {
	gui.render(event.DrawAll)

	go gui.handleDraw()

	return gui.App.Run()
}

func (gui *GUI) Stop() {
	gui.App.Stop()
}

func (gui *GUI) layout() {
	gui.grid.
		SetRows(gui.renderer.Height(), 1, -1).
		SetColumns(1, gui.renderer.Width(), SideWidth, -1)
}

func (gui *GUI) handleResize(screen tcell.Screen) bool {
	w, h := screen.Size()
	if w == gui.screenW && h == gui.screenH {
		return false
	}
	gui.screenW, gui.screenH = w, h

	if gui.fixedBlockSize {
		return false
	}

	size := 1
	if w >= 80 && h >= 44 {
		size = 2
	}
	if size == gui.renderer.BlockSize {
		return false
	}

	gui.logger.Debug("resize", zap.Int("width", w), zap.Int("height", h), zap.Int("block size", size))

	gui.renderLock.Lock()
	gui.renderer.SetBlockSize(size)
	gui.renderLock.Unlock()

	gui.layout()
	gui.render(event.DrawAll)

	return false
}

func (gui *GUI) handleDraw() {
	for o := range gui.draw {
		o := o
		gui.App.QueueUpdateDraw(func() {
			gui.render(o)
		})
	}
}

func (gui *GUI) render(o event.DrawObject) {
	s := gui.game.Snapshot()

	gui.renderLock.Lock()
	defer gui.renderLock.Unlock()

	if o == event.DrawAll || o == event.DrawPlayerMatrix {
		gui.mtx.Clear()
		gui.mtx.Write(gui.renderer.Matrix(&s))
	}

	if o == event.DrawAll || o == event.DrawSide {
		gui.side.Clear()
		gui.side.Write(gui.renderer.Side(&s))
	}
}

func (gui *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if quitKey(ev) {
		gui.Stop()
		return nil
	}

	a := ActionFor(ev)
	if a == event.ActionUnknown {
		return ev
	}

	// Enter only starts a session when none is running.
	if a == event.ActionStart && gui.game.Snapshot().Playing {
		return nil
	}

	ok := gui.game.ProcessAction(a)
	gui.logger.Debug("action", zap.Stringer("action", a), zap.Bool("accepted", ok))

	return nil
}
