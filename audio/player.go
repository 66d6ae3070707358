package audio

import (
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatToneHz     = 880
	eatToneLength = 60 * time.Millisecond
	endToneHz     = 220
	endToneLength = 400 * time.Millisecond
)

// Player plays short tones for game events. It does nothing until Init has
// succeeded, so a machine without audio still runs the game.
type Player struct {
	ready bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// FoodEaten plays a short high chime.
func (p *Player) FoodEaten(score int) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, eatToneHz)
	p.play(sine, err, eatToneLength)
}

// SessionEnded plays a long low tone.
func (p *Player) SessionEnded(score int) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, endToneHz)
	p.play(sine, err, endToneLength)
}

func (p *Player) play(s beep.Streamer, err error, d time.Duration) {
	if err != nil {
		glog.Warningf("Tone generation failed: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), s))
}

func (p *Player) Ready() bool {
	return p.ready
}
