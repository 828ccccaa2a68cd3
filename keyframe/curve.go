package keyframe

import (
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

// CurveSamples is the number of samples taken by Curve.
const CurveSamples = 15

// Curve turns a numeric sequence into an easing curve, so that a curve can be
// authored with keyframes. The sequence is sampled evenly from its first to
// its last keyframe and normalized so that the first value maps to 0 and the
// last to 1. If those values are equal the samples are used as they are.
// The playback position of s is not changed.
func Curve[N tween.Number](s *Sequence[N]) *easing.Samples {
	if s.Len() == 0 {
		return easing.NewSamples(nil)
	}

	first, _ := s.Keyframe(0)
	last, _ := s.Keyframe(s.Len() - 1)
	low, high := float64(first.Value), float64(last.Value)
	if low == high {
		low, high = 0, 1
	}

	table := make([]float64, CurveSamples)
	for i := range table {
		t := s.Start() + s.Duration()*float64(i)/float64(CurveSamples-1)
		table[i] = (float64(s.ValueAt(t)) - low) / (high - low)
	}
	return easing.NewSamples(table)
}
