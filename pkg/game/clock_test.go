package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

func TestManualClockOrder(t *testing.T) {
	c := NewManualClock(testEpoch)

	var fired []string
	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })

	c.Advance(99 * time.Millisecond)
	assert.Empty(t, fired)

	c.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, testEpoch.Add(1100*time.Millisecond), c.Now())
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(testEpoch)

	var fired bool
	timer := c.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestManualClockChained(t *testing.T) {
	c := NewManualClock(testEpoch)

	var at []time.Time
	var tick func()
	tick = func() {
		at = append(at, c.Now())
		c.AfterFunc(100*time.Millisecond, tick)
	}
	c.AfterFunc(100*time.Millisecond, tick)

	c.Advance(350 * time.Millisecond)
	require.Len(t, at, 3)
	assert.Equal(t, testEpoch.Add(300*time.Millisecond), at[2])
}

func TestTimerSlotSupersede(t *testing.T) {
	c := NewManualClock(testEpoch)

	wrap := func(s *timerSlot, gen uint64, fire func()) func() {
		return func() {
			if s.gen != gen {
				return
			}
			s.timer = nil
			fire()
		}
	}

	var slot timerSlot
	var fired []int
	slot.schedule(c, 100*time.Millisecond, func() { fired = append(fired, 1) }, wrap)
	slot.schedule(c, 200*time.Millisecond, func() { fired = append(fired, 2) }, wrap)

	c.Advance(time.Second)
	assert.Equal(t, []int{2}, fired)
	assert.False(t, slot.pending())
}

func TestTimerSlotFreeze(t *testing.T) {
	c := NewManualClock(testEpoch)

	wrap := func(s *timerSlot, gen uint64, fire func()) func() {
		return func() {
			if s.gen != gen {
				return
			}
			s.timer = nil
			fire()
		}
	}

	var slot timerSlot
	var fired int
	slot.schedule(c, 500*time.Millisecond, func() { fired++ }, wrap)

	c.Advance(200 * time.Millisecond)
	slot.freeze(c.Now())
	require.True(t, slot.pending())
	assert.Equal(t, 300*time.Millisecond, slot.remaining)

	c.Advance(10 * time.Second)
	assert.Equal(t, 0, fired)

	slot.thaw(c, wrap)
	c.Advance(299 * time.Millisecond)
	assert.Equal(t, 0, fired)
	c.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
}
