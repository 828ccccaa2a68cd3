// Package keyframe plays back timelines of values.
//
// A Keyframe pins a value to a point in time and names the curve used while
// travelling to the next keyframe. A Sequence keeps keyframes ordered by time,
// tracks a playback position and answers what the value is at that position.
// Time is supplied by the caller; nothing here reads a clock.
package keyframe

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

// DefaultEasing is used by At and whenever a keyframe has no curve.
var DefaultEasing easing.Function = easing.EaseInOut

// Keyframe is a value reached at Time. Easing shapes the segment that starts
// at this keyframe; it is unused on the last keyframe of a sequence.
type Keyframe[V any] struct {
	Value  V
	Time   float64
	Easing easing.Function
}

// New creates a keyframe. Negative times are moved to 0 and a nil fn is
// replaced with DefaultEasing.
func New[V any](value V, time float64, fn easing.Function) Keyframe[V] {
	if time < 0 {
		time = 0
	}
	if fn == nil {
		fn = DefaultEasing
	}
	return Keyframe[V]{Value: value, Time: time, Easing: fn}
}

// At creates a keyframe that eases out with DefaultEasing.
func At[V any](value V, time float64) Keyframe[V] {
	return New(value, time, nil)
}

func (k Keyframe[V]) curve() easing.Function {
	if k.Easing == nil {
		return DefaultEasing
	}
	return k.Easing
}

// TweenTo returns the value between k and next at the given time.
//
// Before k the value of k is returned, after next the value of next.
// Zero-length segments report progress 0.
func (k Keyframe[V]) TweenTo(next Keyframe[V], time float64, blend tween.BlendFunc[V]) V {
	switch {
	case time < k.Time:
		return k.Value
	case time > next.Time:
		return next.Value
	}

	span := next.Time - k.Time
	p := 0.0
	if span > 0 {
		p = (time - k.Time) / span
	}
	return blend.Ease(k.curve(), k.Value, next.Value, p)
}

func (k Keyframe[V]) String() string {
	return fmt.Sprintf("keyframe at %.2fs: %v", k.Time, k.Value)
}

func validTime(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0)
}
