// Package easing provides curves that remap animation progress.
//
// A curve maps a progress value in [0, 1] to an eased progress value. The
// result is nominally in [0, 1] as well but may overshoot for curves such as
// Elastic and Back, or for Bézier curves with control points outside the unit
// square on the y axis.
package easing

// A Function maps progress t to eased progress.
// Implementations must be pure: the same t always yields the same result.
type Function interface {
	Ease(t float64) float64
}

// Func adapts an ordinary function to a Function.
type Func func(t float64) float64

// Ease calls f(t).
func (f Func) Ease(t float64) float64 {
	return f(t)
}

type reversed struct {
	f Function
}

func (r reversed) Ease(t float64) float64 {
	return 1 - r.f.Ease(1-t)
}

// Reversed returns the curve that traces f backwards, so that playing a
// segment from b to a with Reversed(f) visits the same values as playing it
// from a to b with f. Reversing twice returns the original curve.
func Reversed(f Function) Function {
	if f == nil {
		return Linear
	}
	if r, ok := f.(reversed); ok {
		return r.f
	}
	return reversed{f}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
