package main

import (
	"flag"
	"time"

	"github.com/golang/glog"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/tick"
	"gridsnake/game/types"
	"gridsnake/ui"
)

// frontend is a window or terminal that takes input and draw calls.
type frontend interface {
	game.InputSource
	game.RenderSink
	BeginFrame()
	EndFrame()
	ShouldClose() bool
	RestartRequested() bool
	Close()
}

func main() {
	defaults := types.DefaultConfig()
	width := flag.Int("width", defaults.ScreenWidth, "Screen width in pixels")
	height := flag.Int("height", defaults.ScreenHeight, "Screen height in pixels")
	spacing := flag.Int("spacing", defaults.Spacing, "Grid cell size in pixels")
	tps := flag.Int("tps", defaults.TicksPerSecond, "Simulation ticks per second")
	length := flag.Int("length", defaults.InitialLength, "Initial snake length")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	fps := flag.Int("fps", 60, "Frames per second")
	term := flag.Bool("term", false, "Play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()
	defer glog.Flush()

	cfg := defaults
	cfg.ScreenWidth = *width
	cfg.ScreenHeight = *height
	cfg.Spacing = *spacing
	cfg.TicksPerSecond = *tps
	cfg.InitialLength = *length
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if *fps <= 0 {
		glog.Exitf("Invalid configuration: fps must be positive, got %d", *fps)
	}

	var notifier game.Notifier
	if !*mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			glog.Warningf("Audio initialization failed, running muted: %v", err)
		} else {
			notifier = player
		}
	}

	g, err := game.NewGame(cfg, tick.NewSystemClock(), notifier)
	if err != nil {
		glog.Exitf("Invalid configuration: %v", err)
	}

	var fe frontend
	if *term {
		t, err := ui.NewTerminalFrontend(cfg.Spacing, *fps)
		if err != nil {
			glog.Exitf("Terminal initialization failed: %v", err)
		}
		fe = t
	} else {
		fe = ui.NewRaylibFrontend(cfg.ScreenWidth, cfg.ScreenHeight, "Snake", *fps)
	}
	defer fe.Close()

	run(g, fe, game.DefaultTheme())
}

func run(g *game.Game, fe frontend, theme game.Theme) {
	for !fe.ShouldClose() {
		switch g.State() {
		case game.Running:
			g.Frame(fe)
		case game.Ended:
			if fe.RestartRequested() {
				if err := g.Restart(); err != nil {
					glog.Errorf("Restart failed: %v", err)
					return
				}
			}
		}

		fe.BeginFrame()
		g.Draw(fe, theme)
		fe.EndFrame()
	}

	stats := g.GetStateManager()
	glog.Infof("Played %d games, best score %d, average %.1f",
		stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore())
}
