package stream

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/keyframe"
	"github.com/matt-g-everett/ledtween/tween"
)

type twinkleParticle struct {
	pixel int
	phase float64
}

// A Twinkle is an Animation that twinkles random particles over a
// background colour. Each particle fades up to the foreground colour and
// back again once per period, starting at a random point in its cycle.
type Twinkle struct {
	numPixels  int
	foreColour colorful.Color
	backColour colorful.Color
	period     float64
	envelope   *keyframe.Sequence[float64]
	particles  []twinkleParticle

	started bool
	startMs int64
}

// NewTwinkle creates an instance of a Twinkle object. Particle positions and
// phases are drawn from rng.
func NewTwinkle(numPixels, numParticles int, foreColour, backColour colorful.Color,
	period float64, rng *rand.Rand) *Twinkle {

	t := new(Twinkle)
	t.numPixels = numPixels
	t.foreColour = foreColour
	t.backColour = backColour
	t.period = period
	t.envelope = keyframe.Numbers(
		keyframe.New(0.0, 0, easing.InOutQuad),
		keyframe.New(1.0, period/2, easing.InOutQuad),
		keyframe.New(0.0, period, easing.InOutQuad),
	)

	if numPixels > 0 {
		for i := 0; i < numParticles; i++ {
			t.particles = append(t.particles, twinkleParticle{
				pixel: rng.Intn(numPixels),
				phase: rng.Float64() * period,
			})
		}
	}

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	if !t.started {
		t.startMs = runtimeMs
		t.started = true
	}
	elapsed := float64(runtimeMs-t.startMs) / 1000

	f := NewFrame(t.numPixels)
	f.Fill(t.backColour)
	for _, p := range t.particles {
		at := p.phase
		if t.period > 0 {
			at = math.Mod(elapsed+p.phase, t.period)
		}
		c := tween.ColorRGB(t.backColour, t.foreColour, t.envelope.ValueAt(at))
		// Overlapping particles keep the brightest.
		if brightness(c) > brightness(f.Pixels[p.pixel]) {
			f.Pixels[p.pixel] = c
		}
	}

	return f
}

func brightness(c colorful.Color) float64 {
	l, _, _ := c.Lab()
	return l
}
