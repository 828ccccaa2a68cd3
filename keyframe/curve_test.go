package keyframe

import (
	"math"
	"testing"

	"github.com/matt-g-everett/ledtween/easing"
)

func TestCurve(t *testing.T) {
	tests := []struct {
		name     string
		seq      *Sequence[float64]
		time     float64
		expected float64
	}{
		{"linear", Numbers(New(0.0, 0, easing.Linear), New(1.0, 1, easing.Linear)), 0.5, 0.5},
		{"scaled and offset", Numbers(New(10.0, 2, easing.Linear), New(30.0, 4, easing.Linear)), 0.25, 0.25},
		{"descending", Numbers(New(5.0, 0, easing.Linear), New(1.0, 1, easing.Linear)), 0.5, 0.5},
		{"ease in sample", Numbers(New(0.0, 0, easing.EaseIn), New(1.0, 1, easing.Linear)), 0.5, 0.125},
		{"equal ends", Numbers(New(0.0, 0, easing.Linear), New(1.0, 0.5, easing.Linear), New(0.0, 1, easing.Linear)), 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Curve(tt.seq).Ease(tt.time); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Curve().Ease(%v) = %v, want %v", tt.time, got, tt.expected)
			}
		})
	}
}

func TestCurveSampling(t *testing.T) {
	s := Numbers(New(0.0, 0, easing.InOutSine), New(100.0, 1, easing.Linear))
	table := Curve(s).Table()
	if len(table) != CurveSamples {
		t.Fatalf("len(table) = %d, want %d", len(table), CurveSamples)
	}
	if table[0] != 0 || table[len(table)-1] != 1 {
		t.Errorf("table ends = %v, %v; want 0, 1", table[0], table[len(table)-1])
	}
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			t.Errorf("table not monotonic at %d: %v", i, table)
		}
	}
}

func TestCurveKeepsPlayback(t *testing.T) {
	s := Numbers(New(0.0, 0, easing.Linear), New(1.0, 1, easing.Linear))
	s.JumpTo(0.3)
	Curve(s)
	if s.Time() != 0.3 {
		t.Errorf("Time() = %v, want 0.3", s.Time())
	}
}

func TestCurveOfEmptySequence(t *testing.T) {
	if got := Curve(Numbers[float64]()).Ease(0.4); got != 0.4 {
		t.Errorf("empty curve Ease(0.4) = %v, want 0.4", got)
	}
}
