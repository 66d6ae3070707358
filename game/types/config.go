package types

import "github.com/pkg/errors"

// Config holds the session constants. It is fixed for the lifetime of a
// session and validated before anything is built from it.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	Spacing        int
	TicksPerSecond int
	InitialLength  int
	ScorePerFood   int
	Seed           uint64
}

// DefaultConfig returns the classic 720x480 board with 30px cells.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    720,
		ScreenHeight:   480,
		Spacing:        30,
		TicksPerSecond: 10,
		InitialLength:  1,
		ScorePerFood:   ScorePerFood,
	}
}

// Validate checks every construction-time invariant and returns the first
// violation found.
func (c Config) Validate() error {
	grid, err := NewGrid(c.Spacing, c.ScreenWidth, c.ScreenHeight)
	if err != nil {
		return errors.Wrap(err, "invalid grid")
	}
	if c.TicksPerSecond <= 0 {
		return errors.Errorf("ticks per second must be positive, got %d", c.TicksPerSecond)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("initial snake length must be at least 1, got %d", c.InitialLength)
	}
	// The starting body is laid out along a single row.
	if c.InitialLength > grid.Cols() {
		return errors.Errorf("initial snake length %d does not fit in %d columns", c.InitialLength, grid.Cols())
	}
	if c.ScorePerFood < 0 {
		return errors.Errorf("score per food must not be negative, got %d", c.ScorePerFood)
	}
	return nil
}

// Grid builds the grid described by the config.
func (c Config) Grid() (Grid, error) {
	return NewGrid(c.Spacing, c.ScreenWidth, c.ScreenHeight)
}
