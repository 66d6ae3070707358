package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

var raylibKeys = map[int32]types.Direction{
	rl.KeyW:     types.Up,
	rl.KeyUp:    types.Up,
	rl.KeyS:     types.Down,
	rl.KeyDown:  types.Down,
	rl.KeyA:     types.Left,
	rl.KeyLeft:  types.Left,
	rl.KeyD:     types.Right,
	rl.KeyRight: types.Right,
}

// RaylibFrontend draws into a raylib window and reads its keyboard queue.
type RaylibFrontend struct{}

// NewRaylibFrontend opens a width x height window.
func NewRaylibFrontend(width, height int, title string, fps int) *RaylibFrontend {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
	return &RaylibFrontend{}
}

// Poll pops the next directional key from raylib's key queue. Other keys in
// the queue are dropped.
func (r *RaylibFrontend) Poll() (types.Direction, bool) {
	for {
		key := rl.GetKeyPressed()
		if key == 0 {
			return 0, false
		}
		if dir, ok := raylibKeys[key]; ok {
			return dir, true
		}
	}
}

func (r *RaylibFrontend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *RaylibFrontend) RestartRequested() bool {
	return rl.IsKeyPressed(rl.KeyR)
}

func (r *RaylibFrontend) BeginFrame() {
	rl.BeginDrawing()
}

func (r *RaylibFrontend) EndFrame() {
	rl.EndDrawing()
}

func (r *RaylibFrontend) Close() {
	rl.CloseWindow()
}

func (r *RaylibFrontend) Clear(c types.Color) {
	rl.ClearBackground(toRaylib(c))
}

func (r *RaylibFrontend) Line(x1, y1, x2, y2 int, c types.Color) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), toRaylib(c))
}

func (r *RaylibFrontend) Cell(p types.Point, size int, c types.Color) {
	rl.DrawRectangle(int32(p.X), int32(p.Y), int32(size), int32(size), toRaylib(c))
}

func (r *RaylibFrontend) Text(s string, x, y, size int, c types.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toRaylib(c))
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
