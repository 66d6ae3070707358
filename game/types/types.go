package types

// Point is a pixel position on the grid. Points produced by the game are
// always multiples of the grid spacing.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Color is an opaque RGB colour handed to render sinks.
type Color struct {
	R, G, B uint8
}

// Game constants
const (
	ScorePerFood         = 10 // Points awarded for each food eaten
	MaxPlacementAttempts = 64 // Random food rolls before enumerating free cells
)
