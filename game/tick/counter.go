package tick

import (
	"time"

	"github.com/pkg/errors"
)

// Counter turns elapsed time into a discrete tick index.
//
// It is level triggered: when several tick boundaries pass between two polls
// IsNextTick reports a single advance and the skipped ticks are dropped.
type Counter struct {
	clock        Clock
	start        time.Time
	nanosPerTick int64
	tick         int64
}

// NewCounter starts a counter at clock.Now() running at ticksPerSecond.
func NewCounter(clock Clock, ticksPerSecond int) (*Counter, error) {
	if ticksPerSecond <= 0 {
		return nil, errors.Errorf("ticks per second must be positive, got %d", ticksPerSecond)
	}

	nanos := int64(time.Second) / int64(ticksPerSecond)
	if nanos < 1 {
		nanos = 1
	}

	return &Counter{
		clock:        clock,
		start:        clock.Now(),
		nanosPerTick: nanos,
	}, nil
}

// IsNextTick reports whether a new tick boundary has been crossed since the
// last time it returned true.
func (c *Counter) IsNextTick() bool {
	elapsed := c.clock.Now().Sub(c.start)
	if elapsed < 0 {
		elapsed = 0
	}

	curr := int64(elapsed) / c.nanosPerTick
	if curr > c.tick {
		c.tick = curr
		return true
	}
	return false
}

// Tick returns the last tick index reported by IsNextTick.
func (c *Counter) Tick() int64 {
	return c.tick
}

// Interval returns the length of one tick.
func (c *Counter) Interval() time.Duration {
	return time.Duration(c.nanosPerTick)
}
