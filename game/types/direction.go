package types

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the displacement for one step of the given spacing.
func (d Direction) Vector(spacing int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -spacing}
	case Down:
		return Point{X: 0, Y: spacing}
	case Left:
		return Point{X: -spacing, Y: 0}
	default:
		return Point{X: spacing, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
