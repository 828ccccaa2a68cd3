package tween

import "github.com/matt-g-everett/ledtween/easing"

// EaseUnbounded passes time to fn without clamping and blends by the result.
// A nil fn behaves as easing.Linear.
func (b BlendFunc[V]) EaseUnbounded(fn easing.Function, from, to V, time float64) V {
	if fn == nil {
		fn = easing.Linear
	}
	return b(from, to, fn.Ease(time))
}

// Ease clamps time to [0, 1], eases it with fn and blends from towards to by
// the eased progress. NaN is passed through rather than clamped.
func (b BlendFunc[V]) Ease(fn easing.Function, from, to V, time float64) V {
	return b.EaseUnbounded(fn, from, to, clampUnit(time))
}

// EaseScaled is like Ease with time measured in [0, maxTime]. A maxTime that
// is not positive places time at the end.
func (b BlendFunc[V]) EaseScaled(fn easing.Function, from, to V, time, maxTime float64) V {
	return b.Ease(fn, from, to, Progress(time, maxTime))
}

// Progress maps time in [0, span] to [0, 1], clamping outside the range.
// A span that is not positive yields 1.
func Progress(time, span float64) float64 {
	switch {
	case time < 0:
		return 0
	case span <= 0 || time > span:
		return 1
	}
	return time / span
}

func clampUnit(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Ease eases between two numbers with fn.
func Ease[N Number](fn easing.Function, from, to N, time float64) N {
	return Scalar[N]().Ease(fn, from, to, time)
}

// EaseIn eases between two numbers with an accelerating cubic curve.
func EaseIn[N Number](from, to N, time float64) N {
	return Ease(easing.EaseIn, from, to, time)
}

// EaseOut eases between two numbers with a decelerating cubic curve.
func EaseOut[N Number](from, to N, time float64) N {
	return Ease(easing.EaseOut, from, to, time)
}

// EaseInOut eases between two numbers with an accelerating then decelerating
// cubic curve.
func EaseInOut[N Number](from, to N, time float64) N {
	return Ease(easing.EaseInOut, from, to, time)
}
