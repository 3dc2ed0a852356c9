package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Heartbeat timing and pitch. The "lub" is lower and longer than the "dub".
const (
	lubFreq     = 55.0
	lubDuration = 90 * time.Millisecond
	gapDuration = 110 * time.Millisecond
	dubFreq     = 70.0
	dubDuration = 70 * time.Millisecond
	// decayRate shapes each thump's exponential fade over its duration.
	decayRate = 6.0
)

// HeartbeatDuration is the length of one Heartbeat streamer.
const HeartbeatDuration = lubDuration + gapDuration + dubDuration

// Heartbeat returns a finite "lub-dub" streamer: two decaying sine thumps
// separated by silence. The dub plays at half the amplitude of the lub.
func Heartbeat(rate beep.SampleRate) (beep.Streamer, error) {
	lub, err := thump(rate, lubFreq, lubDuration)
	if err != nil {
		return nil, err
	}
	dub, err := thump(rate, dubFreq, dubDuration)
	if err != nil {
		return nil, err
	}
	return beep.Seq(
		lub,
		beep.Silence(rate.N(gapDuration)),
		&effects.Volume{Streamer: dub, Base: 2, Volume: -1},
	), nil
}

func thump(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	n := rate.N(d)
	return &decay{s: beep.Take(n, sine), total: n}, nil
}

// decay scales a streamer by exp(-decayRate * t) where t runs 0..1 over
// total samples.
type decay struct {
	s     beep.Streamer
	pos   int
	total int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-decayRate * float64(d.pos) / float64(d.total))
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }
