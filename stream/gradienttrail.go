package stream

import (
	"math"
)

// A GradientTrail is an Animation that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    GradientTable
	numPixels   int
	trailLength int
	saturation  float64
	luminance   float64
	speed       float64

	started bool
	startMs int64
}

// NewGradientTrail creates an instance of a GradientTrail object. The
// gradient repeats every trailLength pixels and moves along the strip at
// speed pixels per second.
func NewGradientTrail(gradient GradientTable, numPixels, trailLength int, luminance, speed float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.numPixels = numPixels
	g.trailLength = max(trailLength, 1)
	g.saturation = 1.0
	g.luminance = luminance
	g.speed = speed

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	if !g.started {
		g.startMs = runtimeMs
		g.started = true
	}
	offset := g.speed * float64(runtimeMs-g.startMs) / 1000

	f := NewFrame(g.numPixels)
	length := float64(g.trailLength)
	for i := range f.Pixels {
		t := math.Mod(float64(i)-offset, length) / length
		if t < 0 {
			t++
		}
		f.Pixels[i] = g.gradient.GetColor(t, g.saturation, g.luminance)
	}

	return f
}
