package easing

import "math"

// Steps holds its output constant over N equal intervals, like CSS
// steps(N, jump-end). With Start set the jump happens at the beginning of
// each interval instead, like jump-start, so the output is already 1/N at
// t=0. N below 1 is treated as 1.
type Steps struct {
	N     int
	Start bool
}

// Ease evaluates the step function at t, clamped to [0, 1].
func (s Steps) Ease(t float64) float64 {
	n := float64(s.N)
	if s.N < 1 {
		n = 1
	}

	t = clamp01(t)
	if t >= 1 {
		return 1
	}
	if s.Start {
		return math.Min(math.Floor(t*n)+1, n) / n
	}
	return math.Floor(t*n) / n
}
