package entity

import (
	"gridsnake/game/types"
)

// Food is the snake's view of the food on the board.
type Food interface {
	Position() types.Point
	// Relocate moves the food to a cell not listed in occupied.
	Relocate(occupied []types.Point)
}

// Snake is a chain of grid-aligned segments, head first.
//
// directions[i] is the direction segment i moved on the last update. Each
// update shifts the slice by one, so a segment always repeats the move its
// predecessor made one tick earlier.
type Snake struct {
	grid          types.Grid
	positions     []types.Point
	directions    []types.Direction
	nextDirection types.Direction
	active        bool
	score         int
	reward        int
}

// NewSnake builds an active snake whose head sits at start facing dir, with
// length-1 further segments laid out behind it.
func NewSnake(grid types.Grid, start types.Point, dir types.Direction, length, reward int) *Snake {
	if length < 1 {
		length = 1
	}

	positions := make([]types.Point, 0, length)
	directions := make([]types.Direction, 0, length)

	positions = append(positions, start)
	directions = append(directions, dir)
	step := dir.Vector(grid.Spacing())
	for i := 1; i < length; i++ {
		prev := positions[len(positions)-1]
		positions = append(positions, grid.Wrap(prev.Sub(step)))
		directions = append(directions, dir)
	}

	return &Snake{
		grid:          grid,
		positions:     positions,
		directions:    directions,
		nextDirection: dir,
		active:        true,
		reward:        reward,
	}
}

// RecordInput buffers dir for the next update. A snake longer than one
// segment ignores a request to turn straight back onto itself. Only the last
// accepted input before an update is applied.
func (s *Snake) RecordInput(dir types.Direction) {
	if len(s.positions) > 1 && dir == s.directions[0].Opposite() {
		return
	}
	s.nextDirection = dir
}

// Update advances the snake by one tick. It returns false once the snake has
// run into itself, and on every call after that.
func (s *Snake) Update(food Food) bool {
	if !s.active {
		return false
	}

	// Shift the direction history: the head takes the buffered input and
	// every other segment inherits its predecessor's last move.
	copy(s.directions[1:], s.directions[:len(s.directions)-1])
	s.directions[0] = s.nextDirection

	spacing := s.grid.Spacing()
	for i := range s.positions {
		s.positions[i] = s.grid.Wrap(s.positions[i].Add(s.directions[i].Vector(spacing)))
	}

	if food != nil && s.Head() == food.Position() {
		s.grow()
		s.score += s.reward
		food.Relocate(s.positions)
	}

	if s.HitsSelf() {
		s.active = false
		return false
	}
	return true
}

// grow appends a segment where the current tail was before this tick's move.
func (s *Snake) grow() {
	last := len(s.positions) - 1
	tailDir := s.directions[last]
	tail := s.grid.Wrap(s.positions[last].Sub(tailDir.Vector(s.grid.Spacing())))

	s.positions = append(s.positions, tail)
	s.directions = append(s.directions, tailDir)
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.positions[0]
	for _, p := range s.positions[1:] {
		if p == head {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.positions[0]
}

// Direction returns the direction the head moved on the last update.
func (s *Snake) Direction() types.Direction {
	return s.directions[0]
}

// NextDirection returns the buffered input for the next update.
func (s *Snake) NextDirection() types.Direction {
	return s.nextDirection
}

// Body returns a copy of the segment positions, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.positions))
	copy(body, s.positions)
	return body
}

// Directions returns a copy of the per-segment direction history.
func (s *Snake) Directions() []types.Direction {
	dirs := make([]types.Direction, len(s.directions))
	copy(dirs, s.directions)
	return dirs
}

func (s *Snake) Len() int     { return len(s.positions) }
func (s *Snake) Active() bool { return s.active }
func (s *Snake) Score() int   { return s.score }
