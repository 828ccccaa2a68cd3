package easing

import "math"

// Samples is a curve defined by y values sampled at evenly spaced x
// positions across [0, 1]. Values between samples are interpolated linearly;
// outside [0, 1] the end samples are held.
type Samples struct {
	table []float64
}

// NewSamples copies values into a new curve. An empty table yields Linear
// behaviour and a single value yields a constant curve.
func NewSamples(values []float64) *Samples {
	table := make([]float64, len(values))
	copy(table, values)
	return &Samples{table: table}
}

// Table returns a copy of the sample values.
func (s *Samples) Table() []float64 {
	out := make([]float64, len(s.table))
	copy(out, s.table)
	return out
}

func (s *Samples) Ease(t float64) float64 {
	n := len(s.table)
	switch {
	case n == 0 || math.IsNaN(t):
		return t
	case n == 1 || t <= 0:
		return s.table[0]
	case t >= 1:
		return s.table[n-1]
	}

	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return s.table[n-1]
	}
	frac := pos - float64(i)
	return s.table[i] + (s.table[i+1]-s.table[i])*frac
}
