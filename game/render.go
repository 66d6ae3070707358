package game

import (
	"fmt"

	"gridsnake/game/types"
)

// RenderSink receives the draw calls for one frame. Coordinates are pixels.
type RenderSink interface {
	Clear(c types.Color)
	Line(x1, y1, x2, y2 int, c types.Color)
	Cell(p types.Point, size int, c types.Color)
	Text(s string, x, y, size int, c types.Color)
}

// Theme is the colour set used by Draw.
type Theme struct {
	Background    types.Color
	GridLine      types.Color
	Head          types.Color
	Tail          types.Color
	Food          types.Color
	Score         types.Color
	EndBackground types.Color
	EndText       types.Color
}

func DefaultTheme() Theme {
	return Theme{
		Background:    types.Color{R: 255, G: 255, B: 255},
		GridLine:      types.Color{R: 230, G: 230, B: 230},
		Head:          types.Color{R: 0, G: 228, B: 48},
		Tail:          types.Color{R: 0, G: 117, B: 44},
		Food:          types.Color{R: 230, G: 41, B: 55},
		Score:         types.Color{R: 0, G: 228, B: 48},
		EndBackground: types.Color{R: 130, G: 130, B: 130},
		EndText:       types.Color{R: 0, G: 0, B: 0},
	}
}

// Layout of the live score and the final score screen.
const (
	liveScoreSize    = 20
	finalScoreX      = 140
	finalScoreDigitW = 20
	finalScoreY      = 190
	finalScoreSize   = 100
	footerSize       = 20
)

// Draw issues the draw calls for the current frame.
func (g *Game) Draw(sink RenderSink, theme Theme) {
	if g.state == Ended {
		g.drawFinalScore(sink, theme)
		return
	}

	sink.Clear(theme.Background)

	spacing := g.grid.Spacing()
	for i := 1; i < g.grid.Cols(); i++ {
		x := i * spacing
		sink.Line(x, 0, x, g.grid.Height(), theme.GridLine)
	}
	for i := 1; i < g.grid.Rows(); i++ {
		y := i * spacing
		sink.Line(0, y, g.grid.Width(), y, theme.GridLine)
	}

	for i, p := range g.snake.Body() {
		color := theme.Tail
		if i == 0 {
			color = theme.Head
		}
		sink.Cell(p, spacing, color)
	}

	if food, ok := g.GetFood(); ok {
		sink.Cell(food, spacing, theme.Food)
	}

	sink.Text(fmt.Sprintf("SCORE: %d", g.snake.Score()), 0, 0, liveScoreSize, theme.Score)
}

func (g *Game) drawFinalScore(sink RenderSink, theme Theme) {
	sink.Clear(theme.EndBackground)

	score := g.snake.Score()
	sink.Text(fmt.Sprintf("Score: %d", score), finalScoreX-scoreDigitOffset(score), finalScoreY, finalScoreSize, theme.EndText)

	footer := fmt.Sprintf("Best: %d   R to restart", g.stateMgr.GetHighScore())
	sink.Text(footer, finalScoreX, finalScoreY+finalScoreSize+footerSize, footerSize, theme.EndText)
}

// scoreDigitOffset shifts the final score left as it gains digits so it
// stays roughly centred.
func scoreDigitOffset(score int) int {
	if score <= 0 {
		return finalScoreDigitW
	}
	digits := 0
	for s := score; s >= 10; s /= 10 {
		digits++
	}
	return digits * finalScoreDigitW
}
