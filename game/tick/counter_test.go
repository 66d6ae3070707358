package tick

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewCounterRejectsNonPositiveRate(t *testing.T) {
	for _, tps := range []int{0, -1, -60} {
		if _, err := NewCounter(NewMockClock(epoch), tps); err == nil {
			t.Errorf("NewCounter(%d) succeeded, want error", tps)
		}
	}
}

func TestCounterInterval(t *testing.T) {
	c, err := NewCounter(NewMockClock(epoch), 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Interval(); got != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", got)
	}
}

func TestIsNextTickFiresOncePerBoundary(t *testing.T) {
	clock := NewMockClock(epoch)
	c, err := NewCounter(clock, 10)
	if err != nil {
		t.Fatal(err)
	}

	if c.IsNextTick() {
		t.Fatal("tick reported at t=0")
	}

	clock.Advance(99 * time.Millisecond)
	if c.IsNextTick() {
		t.Fatal("tick reported before first boundary")
	}

	clock.Advance(1 * time.Millisecond)
	if !c.IsNextTick() {
		t.Fatal("no tick reported at first boundary")
	}
	if c.IsNextTick() {
		t.Fatal("tick reported twice for the same sample")
	}
	if c.Tick() != 1 {
		t.Fatalf("tick index = %d, want 1", c.Tick())
	}
}

func TestIsNextTickDoesNotCatchUp(t *testing.T) {
	clock := NewMockClock(epoch)
	c, _ := NewCounter(clock, 10)

	clock.Advance(550 * time.Millisecond)
	if !c.IsNextTick() {
		t.Fatal("no tick after several boundaries")
	}
	if c.IsNextTick() {
		t.Fatal("skipped ticks were replayed")
	}
	if c.Tick() != 5 {
		t.Fatalf("tick index = %d, want 5", c.Tick())
	}

	clock.Advance(50 * time.Millisecond)
	if !c.IsNextTick() {
		t.Fatal("no tick at boundary 6")
	}
}

func TestIsNextTickAtMostOncePerInterval(t *testing.T) {
	clock := NewMockClock(epoch)
	c, _ := NewCounter(clock, 20)

	fired := 0
	step := 7 * time.Millisecond
	total := 2 * time.Second
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		clock.Advance(step)
		if c.IsNextTick() {
			fired++
		}
	}

	if max := int(total / c.Interval()); fired > max {
		t.Fatalf("fired %d times in %v, want at most %d", fired, total, max)
	}
	if fired == 0 {
		t.Fatal("never fired")
	}
}

func TestTickIndexNeverDecreases(t *testing.T) {
	clock := NewMockClock(epoch)
	c, _ := NewCounter(clock, 10)

	clock.Advance(time.Second)
	c.IsNextTick()
	before := c.Tick()

	clock.Set(epoch.Add(200 * time.Millisecond))
	if c.IsNextTick() {
		t.Fatal("tick reported after clock moved backwards")
	}
	if c.Tick() != before {
		t.Fatalf("tick index changed from %d to %d", before, c.Tick())
	}

	clock.Set(epoch.Add(-time.Second))
	if c.IsNextTick() {
		t.Fatal("tick reported before start")
	}
}

func TestSystemClockIsMonotonic(t *testing.T) {
	clock := NewSystemClock()
	t1 := clock.Now()
	t2 := clock.Now()
	if t2.Before(t1) {
		t.Fatalf("clock went backwards: %v then %v", t1, t2)
	}
}
