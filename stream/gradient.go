package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/keyframe"
)

// A GradientStop pins a hue to a position in [0, 1] along a gradient.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable struct {
	hues *keyframe.Sequence[float64]
}

// NewGradientTable creates a GradientTable that moves linearly between the
// hues of stops.
func NewGradientTable(stops ...GradientStop) GradientTable {
	keyframes := make([]keyframe.Keyframe[float64], 0, len(stops))
	for _, s := range stops {
		keyframes = append(keyframes, keyframe.New(s.Hue, s.Pos, easing.Linear))
	}
	return GradientTable{hues: keyframe.Numbers(keyframes...)}
}

// RainbowGradient is a gradient through the colours of the rainbow that
// wraps back to pink.
func RainbowGradient() GradientTable {
	return NewGradientTable(
		GradientStop{0.0, 0.0},
		GradientStop{6.0, 0.04},   // Pink
		GradientStop{87.0, 0.14},  // Red
		GradientStop{88.0, 0.28},  // Orange
		GradientStop{98.0, 0.42},  // Yellow
		GradientStop{180.0, 0.56}, // Green
		GradientStop{190.0, 0.70}, // Turquoise
		GradientStop{320.0, 0.84}, // Blue
		GradientStop{328.0, 0.91}, // Violet
		GradientStop{360.0, 1.0},  // Pink wrap
	)
}

// GetColor gets a colour at the specified point on the look-up table. Points
// past either end take the hue of the nearest stop.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if g.hues == nil || g.hues.Len() == 0 {
		return colorful.Color{}
	}
	return colorful.Hcl(g.hues.ValueAt(t), s, l)
}
