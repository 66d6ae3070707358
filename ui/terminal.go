package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game/types"
)

// TerminalFrontend renders the board into a terminal. Every grid cell is two
// character columns wide so cells look roughly square; the board starts one
// row down to leave room for the live score.
type TerminalFrontend struct {
	screen  tcell.Screen
	events  chan tcell.Event
	frame   *time.Ticker
	spacing int

	pending []types.Direction
	quit    bool
	restart bool
}

// NewTerminalFrontend takes over the terminal. spacing is the pixel size of
// a grid cell, used to map pixel coordinates onto character cells.
func NewTerminalFrontend(spacing, fps int) (*TerminalFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &TerminalFrontend{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		frame:   time.NewTicker(time.Second / time.Duration(fps)),
		spacing: spacing,
	}

	// PollEvent blocks, so it gets its own goroutine. The frame loop drains
	// the channel without blocking.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()

	return t, nil
}

func (t *TerminalFrontend) drain() {
	for {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			return
		}
	}
}

func (t *TerminalFrontend) handleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyUp:
		t.pending = append(t.pending, types.Up)
	case tcell.KeyDown:
		t.pending = append(t.pending, types.Down)
	case tcell.KeyLeft:
		t.pending = append(t.pending, types.Left)
	case tcell.KeyRight:
		t.pending = append(t.pending, types.Right)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w':
			t.pending = append(t.pending, types.Up)
		case 's':
			t.pending = append(t.pending, types.Down)
		case 'a':
			t.pending = append(t.pending, types.Left)
		case 'd':
			t.pending = append(t.pending, types.Right)
		case 'r':
			t.restart = true
		case 'q':
			t.quit = true
		}
	}
}

func (t *TerminalFrontend) Poll() (types.Direction, bool) {
	t.drain()
	if len(t.pending) == 0 {
		return 0, false
	}
	dir := t.pending[0]
	t.pending = t.pending[1:]
	return dir, true
}

func (t *TerminalFrontend) ShouldClose() bool {
	t.drain()
	return t.quit
}

func (t *TerminalFrontend) RestartRequested() bool {
	t.drain()
	r := t.restart
	t.restart = false
	t.pending = t.pending[:0]
	return r
}

func (t *TerminalFrontend) BeginFrame() {}

// EndFrame flushes the screen and waits for the next frame slot.
func (t *TerminalFrontend) EndFrame() {
	t.screen.Show()
	<-t.frame.C
}

func (t *TerminalFrontend) Close() {
	t.frame.Stop()
	t.screen.Fini()
}

func (t *TerminalFrontend) Clear(c types.Color) {
	t.screen.SetStyle(tcell.StyleDefault.Background(toTerminal(c)))
	t.screen.Clear()
}

// Line is a no-op: character cells already show the grid.
func (t *TerminalFrontend) Line(x1, y1, x2, y2 int, c types.Color) {}

func (t *TerminalFrontend) Cell(p types.Point, size int, c types.Color) {
	col, row := t.toScreen(p.X, p.Y)
	style := tcell.StyleDefault.Foreground(toTerminal(c))
	t.screen.SetContent(col, row+1, '█', nil, style)
	t.screen.SetContent(col+1, row+1, '█', nil, style)
}

func (t *TerminalFrontend) Text(s string, x, y, size int, c types.Color) {
	col, row := t.toScreen(x, y)
	style := tcell.StyleDefault.Foreground(toTerminal(c))
	for _, r := range s {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (t *TerminalFrontend) toScreen(x, y int) (int, int) {
	return x / t.spacing * 2, y / t.spacing
}

func toTerminal(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
