package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game/types"
)

func newHeadlessTerminal() *TerminalFrontend {
	return &TerminalFrontend{
		events:  make(chan tcell.Event, 16),
		spacing: 30,
	}
}

func TestTerminalKeyMapping(t *testing.T) {
	term := newHeadlessTerminal()
	term.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	want := []types.Direction{types.Up, types.Left, types.Right}
	for i, w := range want {
		dir, ok := term.Poll()
		if !ok {
			t.Fatalf("poll %d: no key", i)
		}
		if dir != w {
			t.Fatalf("poll %d: got %v, want %v", i, dir, w)
		}
	}
	if _, ok := term.Poll(); ok {
		t.Fatal("unexpected extra key")
	}
}

func TestTerminalControlKeys(t *testing.T) {
	term := newHeadlessTerminal()
	if term.ShouldClose() || term.RestartRequested() {
		t.Fatal("control flags set on a fresh terminal")
	}

	term.events <- tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)
	if !term.RestartRequested() {
		t.Fatal("restart not requested")
	}
	if term.RestartRequested() {
		t.Fatal("restart request was not cleared")
	}
	if _, ok := term.Poll(); ok {
		t.Fatal("keys pressed before restart leaked into the new session")
	}

	term.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if !term.ShouldClose() {
		t.Fatal("escape did not request close")
	}
}

func TestTerminalCoordinates(t *testing.T) {
	term := newHeadlessTerminal()
	col, row := term.toScreen(90, 60)
	if col != 6 || row != 2 {
		t.Fatalf("toScreen(90, 60) = (%d, %d), want (6, 2)", col, row)
	}
}

func TestRaylibKeysCoverAllDirections(t *testing.T) {
	seen := map[types.Direction]int{}
	for _, dir := range raylibKeys {
		seen[dir]++
	}
	for _, dir := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
		if seen[dir] != 2 {
			t.Errorf("%v mapped from %d keys, want 2", dir, seen[dir])
		}
	}
}
