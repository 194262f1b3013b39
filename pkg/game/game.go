package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	// LockDelayTicks is the number of blocked drops after which a resting
	// piece locks.
	LockDelayTicks = 10
	LockDelay      = 500 * time.Millisecond

	ClearDelay    = 500 * time.Millisecond
	HardDropDelay = 50 * time.Millisecond
	SpawnDelay    = 100 * time.Millisecond

	PreviewSize = 3
)

// Game is a single-player session. Every exported method takes the lock and
// applies or rejects one command in full; methods ending in L expect the
// lock to be held already.
type Game struct {
	session uuid.UUID
	seed    int64

	matrix  mino.Matrix
	piece   *mino.Piece
	bag     *mino.Bag
	held    mino.PieceType
	hasHeld bool
	canHold bool

	score int
	level int
	lines int
	combo int

	lockCount int
	clearing  []int
	dropping  bool

	playing  bool
	gameOver bool
	paused   bool

	stats *intmap.Map[mino.PieceType, int]

	clock  Clock
	timers [timerClasses]timerSlot
	logger *zap.Logger
	draw   chan<- event.DrawObject

	*sync.Mutex
}

// NewGame returns an idle game. A nil clock uses the system timer, a nil
// logger discards output and a nil draw channel disables redraw
// notifications.
func NewGame(clock Clock, logger *zap.Logger, draw chan<- event.DrawObject) *Game {
	if clock == nil {
		clock = NewClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		stats:  intmap.New[mino.PieceType, int](mino.PieceCount),
		clock:  clock,
		logger: logger,
		draw:   draw,
		Mutex:  new(sync.Mutex),
	}

	for i := range g.timers {
		g.timers[i].class = timerClass(i)
	}

	return g
}

// Start discards the current session and begins a new one. A zero seed picks
// one from the clock. The seed in use is returned.
func (g *Game) Start(seed int64) int64 {
	g.Lock()
	defer g.Unlock()

	return g.StartL(seed)
}

func (g *Game) StartL(seed int64) int64 {
	g.stopTimersL()

	if seed == 0 {
		seed = g.clock.Now().UTC().UnixNano()
	}

	g.seed = seed
	g.session = uuid.New()

	g.matrix = mino.Matrix{}
	g.piece = nil
	g.bag = mino.NewBag(seed)
	g.held = 0
	g.hasHeld = false
	g.canHold = false

	g.score = 0
	g.level = 0
	g.lines = 0
	g.combo = 0

	g.lockCount = 0
	g.clearing = nil
	g.dropping = false

	g.playing = true
	g.gameOver = false
	g.paused = false

	g.stats.Clear()

	g.logger.Info("starting game", zap.Stringer("session", g.session), zap.Int64("seed", seed))

	if g.spawnL() {
		g.scheduleFallL()
	}

	g.drawL(event.DrawAll)

	return seed
}

// ProcessAction applies the command bound to an input action.
func (g *Game) ProcessAction(a event.GameAction) bool {
	switch a {
	case event.ActionRotateCW:
		return g.Rotate()
	case event.ActionMoveLeft:
		return g.MoveLeft()
	case event.ActionMoveRight:
		return g.MoveRight()
	case event.ActionSoftDrop:
		return g.SoftDrop()
	case event.ActionHardDrop:
		return g.HardDrop()
	case event.ActionHold:
		return g.Hold()
	case event.ActionPause:
		return g.TogglePause()
	case event.ActionStart:
		g.Start(0)
		return true
	}

	return false
}

func (g *Game) MoveLeft() bool {
	g.Lock()
	defer g.Unlock()

	return g.movePieceL(-1, 0, false)
}

func (g *Game) MoveRight() bool {
	g.Lock()
	defer g.Unlock()

	return g.movePieceL(1, 0, false)
}

// SoftDrop moves the piece down one row, scoring a point when it moves.
func (g *Game) SoftDrop() bool {
	g.Lock()
	defer g.Unlock()

	return g.lowerPieceL(true)
}

// Tick is the automatic fall step.
func (g *Game) Tick() bool {
	g.Lock()
	defer g.Unlock()

	return g.lowerPieceL(false)
}

func (g *Game) Rotate() bool {
	g.Lock()
	defer g.Unlock()

	return g.rotatePieceL()
}

func (g *Game) HardDrop() bool {
	g.Lock()
	defer g.Unlock()

	return g.hardDropPieceL()
}

func (g *Game) Hold() bool {
	g.Lock()
	defer g.Unlock()

	return g.holdPieceL()
}

func (g *Game) TogglePause() bool {
	g.Lock()
	defer g.Unlock()

	return g.setPausedL(!g.paused)
}

func (g *Game) Pause() bool {
	g.Lock()
	defer g.Unlock()

	return g.setPausedL(true)
}

func (g *Game) Resume() bool {
	g.Lock()
	defer g.Unlock()

	return g.setPausedL(false)
}

func (g *Game) Snapshot() Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.SnapshotL()
}

func (g *Game) SnapshotL() Snapshot {
	s := Snapshot{
		Session:      g.session,
		Seed:         g.seed,
		State:        g.stateL(),
		Matrix:       g.matrix,
		Piece:        g.piece.Copy(),
		Held:         g.held,
		HasHeld:      g.hasHeld,
		CanHold:      g.canHold,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Combo:        g.combo,
		DropInterval: DropInterval(g.level),
		Paused:       g.paused,
		Playing:      g.playing,
		GameOver:     g.gameOver,
		Stats:        make(map[mino.PieceType]int, mino.PieceCount),
	}

	if g.piece != nil {
		ghost := g.matrix.Ghost(g.piece)
		s.Ghost = &ghost
	}

	if g.bag != nil {
		s.Next = g.bag.Preview(PreviewSize)
	}

	if g.clearing != nil {
		s.Clearing = make([]int, len(g.clearing))
		copy(s.Clearing, g.clearing)
	}

	for _, t := range mino.AllPieces {
		n, _ := g.stats.Get(t)
		s.Stats[t] = n
	}

	return s
}

func (g *Game) stateL() State {
	switch {
	case g.gameOver:
		return StateGameOver
	case !g.playing:
		return StateIdle
	case g.clearing != nil:
		return StateClearing
	case g.piece == nil:
		return StateSpawning
	case g.dropping || g.lockCount > 0:
		return StateLockDelay
	default:
		return StateFalling
	}
}

// controllableL reports whether piece commands are accepted.
func (g *Game) controllableL() bool {
	return g.playing && !g.gameOver && !g.paused && g.piece != nil && !g.dropping
}

func (g *Game) movePieceL(x int, y int, soft bool) bool {
	if !g.controllableL() || (x == 0 && y == 0) {
		return false
	}

	loc := g.piece.Point.Add(mino.Point{X: x, Y: y})
	if !g.matrix.CanAddAt(g.piece.Shape, loc) {
		return false
	}

	g.piece.Point = loc
	g.resetLockDelayL()

	if soft && y > 0 {
		g.score += SoftDropPoints * y
	}

	g.drawL(event.DrawPlayerMatrix)

	return true
}

// lowerPieceL moves the piece down one row. When the piece is resting it
// counts a blocked drop instead and locks once the count or the lock delay
// window runs out.
func (g *Game) lowerPieceL(soft bool) bool {
	if !g.controllableL() {
		return false
	}

	if g.movePieceL(0, 1, soft) {
		return true
	}

	g.lockCount++
	if g.lockCount >= LockDelayTicks {
		g.lockPieceL()
		return false
	}

	if !g.timers[timerLockDelay].pending() {
		g.scheduleL(timerLockDelay, LockDelay, g.lockPieceL)
	}

	g.drawL(event.DrawSide)

	return false
}

func (g *Game) rotatePieceL() bool {
	if !g.controllableL() {
		return false
	}

	rotated := g.piece.Rotated()
	for _, offset := range mino.RotationOffsets {
		candidate := rotated.At(g.piece.Point.Add(offset))
		if !g.matrix.CanAdd(candidate) {
			continue
		}

		g.piece = candidate
		g.resetLockDelayL()

		g.drawL(event.DrawPlayerMatrix)

		return true
	}

	return false
}

func (g *Game) hardDropPieceL() bool {
	if !g.controllableL() {
		return false
	}

	ghost := g.matrix.Ghost(g.piece)
	g.score += HardDropPoints * (ghost.Y - g.piece.Y)
	g.piece.Point = ghost

	g.dropping = true
	g.timers[timerLockDelay].stop()
	g.scheduleL(timerHardDrop, HardDropDelay, g.lockPieceL)

	g.drawL(event.DrawAll)

	return true
}

func (g *Game) holdPieceL() bool {
	if !g.controllableL() || !g.canHold {
		return false
	}

	current := g.piece.Type

	var next mino.PieceType
	if g.hasHeld {
		next = g.held
	} else {
		next = g.takePieceL()
	}

	g.held = current
	g.hasHeld = true
	g.canHold = false
	g.piece = nil

	g.logger.Debug("hold", zap.Stringer("held", current), zap.Stringer("active", next))

	g.setPieceL(next)

	g.drawL(event.DrawAll)

	return true
}

func (g *Game) setPausedL(paused bool) bool {
	if !g.playing || g.gameOver || g.paused == paused {
		return false
	}

	g.paused = paused

	if paused {
		now := g.clock.Now()
		for i := range g.timers {
			g.timers[i].freeze(now)
		}
	} else {
		for i := range g.timers {
			g.timers[i].thaw(g.clock, g.fireL)
		}
	}

	g.logger.Debug("pause", zap.Bool("paused", paused))

	g.drawL(event.DrawAll)

	return true
}

// lockPieceL writes the active piece into the matrix. Full rows are left in
// place and marked for clearing until the clear animation ends.
func (g *Game) lockPieceL() {
	if g.piece == nil || g.gameOver {
		return
	}

	g.timers[timerLockDelay].stop()
	g.timers[timerHardDrop].stop()

	g.matrix = g.matrix.Add(g.piece)
	g.piece = nil
	g.dropping = false
	g.lockCount = 0

	if rows := g.matrix.FilledRows(); len(rows) > 0 {
		g.clearing = rows
		g.scheduleL(timerClear, ClearDelay, g.clearRowsL)
	} else {
		g.combo = 0
		g.scheduleL(timerSpawn, SpawnDelay, g.respawnL)
	}

	g.drawL(event.DrawAll)
}

func (g *Game) clearRowsL() {
	if g.clearing == nil {
		return
	}

	cleared := len(g.clearing)

	g.matrix = g.matrix.ClearRows(g.clearing)
	g.clearing = nil

	g.score += ClearScore(cleared, g.level, g.combo)
	g.combo++
	g.lines += cleared

	g.logger.Debug("cleared lines", zap.Int("lines", cleared), zap.Int("combo", g.combo), zap.Int("score", g.score))

	if level := Level(g.lines); level != g.level {
		g.level = level

		g.logger.Info("level up", zap.Int("level", level), zap.Duration("interval", DropInterval(level)))

		g.scheduleFallL()
	}

	g.scheduleL(timerSpawn, SpawnDelay, g.respawnL)

	g.drawL(event.DrawAll)
}

func (g *Game) respawnL() {
	g.spawnL()

	g.drawL(event.DrawAll)
}

// spawnL makes the next piece from the bag active when nothing else is in
// flight.
func (g *Game) spawnL() bool {
	if !g.playing || g.gameOver || g.piece != nil || g.clearing != nil {
		return false
	}

	if !g.setPieceL(g.takePieceL()) {
		return false
	}

	g.canHold = true

	return true
}

// setPieceL places a new piece of type t at the spawn position, ending the
// game if it does not fit.
func (g *Game) setPieceL(t mino.PieceType) bool {
	g.lockCount = 0
	g.timers[timerLockDelay].stop()

	p := mino.NewPiece(t)
	if !g.matrix.CanAdd(p) {
		g.setGameOverL()
		return false
	}

	g.piece = p

	return true
}

func (g *Game) takePieceL() mino.PieceType {
	t := g.bag.Take()

	n, _ := g.stats.Get(t)
	g.stats.Put(t, n+1)

	return t
}

func (g *Game) setGameOverL() {
	if g.gameOver {
		return
	}

	g.stopTimersL()

	g.gameOver = true
	g.playing = false
	g.paused = false
	g.piece = nil
	g.dropping = false

	g.logger.Info("game over", zap.Stringer("session", g.session), zap.Int("score", g.score), zap.Int("lines", g.lines), zap.Int("level", g.level), zap.Int("pieces", g.bag.Taken()))

	g.drawL(event.DrawAll)
}

func (g *Game) resetLockDelayL() {
	g.lockCount = 0
	g.timers[timerLockDelay].stop()
}

func (g *Game) scheduleFallL() {
	g.scheduleL(timerFall, DropInterval(g.level), g.fallL)
}

func (g *Game) fallL() {
	g.lowerPieceL(false)

	if g.playing && !g.gameOver {
		g.scheduleFallL()
	}
}

func (g *Game) scheduleL(class timerClass, d time.Duration, fire func()) {
	g.timers[class].schedule(g.clock, d, fire, g.fireL)
}

// fireL wraps a timer callback so it runs under the lock and only while its
// slot has not been rescheduled or stopped.
func (g *Game) fireL(s *timerSlot, gen uint64, fire func()) func() {
	return func() {
		g.Lock()
		defer g.Unlock()

		if s.gen != gen || s.timer == nil {
			return
		}
		s.timer = nil

		fire()
	}
}

func (g *Game) stopTimersL() {
	for i := range g.timers {
		g.timers[i].stop()
	}
}

func (g *Game) drawL(o event.DrawObject) {
	if g.draw == nil {
		return
	}

	select {
	case g.draw <- o:
	default:
	}
}
