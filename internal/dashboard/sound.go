package dashboard

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeFreq     = 880
	chimeDuration = 50 * time.Millisecond
)

// Chime plays a short tone whenever the best fitness improves.
// A nil Chime is silent.
type Chime struct {
	rate beep.SampleRate
}

// NewChime opens the default audio device
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chime{rate: chimeRate}, nil
}

// Play queues the tone without blocking
func (c *Chime) Play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(c.rate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(chimeDuration), sine))
}
