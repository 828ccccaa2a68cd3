package easing

import "math"

const (
	bezierTableSize     = 11
	bezierSampleStep    = 1.0 / (bezierTableSize - 1)
	newtonIterations    = 8
	newtonMinSlope      = 0.001
	newtonTolerance     = 1e-6
	subdivisionMaxIters = 20
)

// Bezier is a cubic Bézier easing curve with endpoints fixed at (0,0) and
// (1,1), equivalent to CSS cubic-bezier(x1, y1, x2, y2).
type Bezier struct {
	x1, y1 float64
	x2, y2 float64
	linear bool

	// x(u) sampled at evenly spaced u, used for the initial root guess.
	samples [bezierTableSize]float64
}

// NewBezier builds a curve from two control points. x1 and x2 are clamped to
// [0, 1] so that x is monotonic in the curve parameter; y1 and y2 are left
// alone, allowing overshoot.
func NewBezier(x1, y1, x2, y2 float64) *Bezier {
	b := &Bezier{
		x1: clamp01(x1),
		y1: y1,
		x2: clamp01(x2),
		y2: y2,
	}
	b.linear = b.x1 == b.y1 && b.x2 == b.y2
	for i := range b.samples {
		b.samples[i] = bezierAt(float64(i)*bezierSampleStep, b.x1, b.x2)
	}
	return b
}

// ControlPoints returns the curve's interior control points after clamping.
func (b *Bezier) ControlPoints() (x1, y1, x2, y2 float64) {
	return b.x1, b.y1, b.x2, b.y2
}

// Ease returns the y coordinate of the point on the curve whose x coordinate
// is t. The inverse is approximate; it never fails.
func (b *Bezier) Ease(t float64) float64 {
	switch {
	case math.IsNaN(t):
		return t
	case t == 0:
		return 0
	case t == 1:
		return 1
	case b.linear:
		return t
	}
	return bezierAt(b.paramForX(t), b.y1, b.y2)
}

// Polynomial coefficients of one axis of the curve, in Horner form.
func bezierA(p1, p2 float64) float64 { return 1 - 3*p2 + 3*p1 }
func bezierB(p1, p2 float64) float64 { return 3*p2 - 6*p1 }
func bezierC(p1 float64) float64     { return 3 * p1 }

func bezierAt(u, p1, p2 float64) float64 {
	return ((bezierA(p1, p2)*u+bezierB(p1, p2))*u + bezierC(p1)) * u
}

func bezierSlope(u, p1, p2 float64) float64 {
	return 3*bezierA(p1, p2)*u*u + 2*bezierB(p1, p2)*u + bezierC(p1)
}

func (b *Bezier) paramForX(x float64) float64 {
	intervalStart := 0.0
	current := 1
	last := bezierTableSize - 1
	for ; current != last && b.samples[current] <= x; current++ {
		intervalStart += bezierSampleStep
	}
	current--

	dist := 0.0
	if span := b.samples[current+1] - b.samples[current]; span != 0 {
		dist = (x - b.samples[current]) / span
	}
	guess := intervalStart + dist*bezierSampleStep

	lo, hi := intervalStart, intervalStart+bezierSampleStep
	slope := bezierSlope(guess, b.x1, b.x2)
	switch {
	case slope == 0:
		return guess
	case slope >= newtonMinSlope:
		if u, ok := b.newtonRaphson(x, guess); ok {
			return u
		}
	}
	return b.subdivide(x, lo, hi)
}

// newtonRaphson refines guess and reports whether it converged within the
// iteration budget.
func (b *Bezier) newtonRaphson(x, guess float64) (float64, bool) {
	for i := 0; i < newtonIterations; i++ {
		dx := bezierAt(guess, b.x1, b.x2) - x
		if math.Abs(dx) < newtonTolerance {
			return guess, true
		}
		slope := bezierSlope(guess, b.x1, b.x2)
		if slope == 0 {
			break
		}
		guess = clamp01(guess - dx/slope)
	}
	return guess, math.Abs(bezierAt(guess, b.x1, b.x2)-x) < newtonTolerance
}

func (b *Bezier) subdivide(x, lo, hi float64) float64 {
	u := lo
	for i := 0; i < subdivisionMaxIters; i++ {
		u = lo + (hi-lo)/2
		dx := bezierAt(u, b.x1, b.x2) - x
		if math.Abs(dx) < newtonTolerance {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
	}
	return u
}
