package game

import (
	"time"
)

type timerClass int

const (
	timerFall timerClass = iota
	timerLockDelay
	timerClear
	timerHardDrop
	timerSpawn

	timerClasses
)

func (c timerClass) String() string {
	switch c {
	case timerFall:
		return "fall"
	case timerLockDelay:
		return "lock delay"
	case timerClear:
		return "clear"
	case timerHardDrop:
		return "hard drop"
	case timerSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// timerSlot owns at most one scheduled timer of its class. Scheduling a new
// one stops the old one, and a callback that fires after being superseded is
// dropped by comparing generations.
type timerSlot struct {
	class timerClass

	timer    Timer
	gen      uint64
	deadline time.Time
	fire     func()

	// Time left on a frozen slot while the game is paused.
	remaining time.Duration
	frozen    bool
}

func (s *timerSlot) pending() bool {
	return s.timer != nil || s.frozen
}

func (s *timerSlot) stop() {
	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = nil
	s.frozen = false
	s.remaining = 0
	s.gen++
}

// schedule arms the slot to call fire after d. The engine lock must be held;
// wrap takes the lock around the callback and reports whether it is still
// the live instance.
func (s *timerSlot) schedule(clock Clock, d time.Duration, fire func(), wrap func(s *timerSlot, gen uint64, fire func()) func()) {
	s.stop()

	s.fire = fire
	s.deadline = clock.Now().Add(d)

	gen := s.gen
	s.timer = clock.AfterFunc(d, wrap(s, gen, fire))
}

// freeze stops a pending timer and keeps the time it had left.
func (s *timerSlot) freeze(now time.Time) {
	if s.timer == nil {
		return
	}

	remaining := s.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	fire := s.fire
	s.stop()

	s.fire = fire
	s.remaining = remaining
	s.frozen = true
}

// thaw re-arms a frozen slot with the time it had left.
func (s *timerSlot) thaw(clock Clock, wrap func(s *timerSlot, gen uint64, fire func()) func()) {
	if !s.frozen {
		return
	}

	s.schedule(clock, s.remaining, s.fire, wrap)
}
