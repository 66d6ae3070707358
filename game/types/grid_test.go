package types

import "testing"

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(30, 720, 480)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Cols() != 24 || g.Rows() != 16 || g.Spacing() != 30 {
		t.Fatalf("grid = %dx%d spacing %d, want 24x16 spacing 30", g.Cols(), g.Rows(), g.Spacing())
	}
	if g.Cells() != 24*16 {
		t.Fatalf("cells = %d, want %d", g.Cells(), 24*16)
	}
	if c := g.Center(); c != (Point{X: 360, Y: 240}) {
		t.Fatalf("center = %v, want (360,240)", c)
	}
}

func TestNewGridRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name                   string
		spacing, width, height int
	}{
		{"zero spacing", 0, 720, 480},
		{"negative spacing", -30, 720, 480},
		{"width not divisible", 35, 720, 490},
		{"height not divisible", 30, 720, 490},
		{"empty screen", 30, 0, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.spacing, tt.width, tt.height); err == nil {
				t.Fatal("NewGrid succeeded, want error")
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g, _ := NewGrid(10, 100, 80)
	tests := []struct {
		in, want Point
	}{
		{Point{X: 100, Y: 40}, Point{X: 0, Y: 40}},
		{Point{X: -10, Y: 40}, Point{X: 90, Y: 40}},
		{Point{X: 50, Y: 80}, Point{X: 50, Y: 0}},
		{Point{X: 50, Y: -10}, Point{X: 50, Y: 70}},
		{Point{X: -10, Y: 80}, Point{X: 90, Y: 0}},
		{Point{X: 50, Y: 40}, Point{X: 50, Y: 40}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g, _ := NewGrid(10, 100, 80)
	if !g.Contains(Point{X: 90, Y: 70}) {
		t.Error("last cell not contained")
	}
	for _, p := range []Point{{X: 100, Y: 0}, {X: 0, Y: 80}, {X: 5, Y: 0}, g.Sentinel()} {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true", p)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		v := d.Vector(30)
		back := d.Opposite().Vector(30)
		if v.Add(back) != (Point{}) {
			t.Errorf("%v and %v do not cancel: %v + %v", d, d.Opposite(), v, back)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %v is %v", d, d.Opposite().Opposite())
		}
		if abs(v.X)+abs(v.Y) != 30 {
			t.Errorf("%v vector %v is not one cell long", d, v)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
