package stream

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/keyframe"
)

// Looping says what a SequenceAnimation does when its timeline runs out.
type Looping int

const (
	// LoopWrap starts again from the beginning.
	LoopWrap Looping = iota
	// LoopReverse plays the timeline backwards, then forwards again.
	LoopReverse
	// LoopOnce holds the last colour.
	LoopOnce
)

var loopingNames = map[string]Looping{
	"":        LoopWrap,
	"wrap":    LoopWrap,
	"reverse": LoopReverse,
	"once":    LoopOnce,
}

// ParseLooping converts a config name to a Looping.
func ParseLooping(name string) (Looping, error) {
	l, ok := loopingNames[name]
	if !ok {
		return LoopWrap, fmt.Errorf("unknown loop mode %q", name)
	}
	return l, nil
}

// A SequenceAnimation is an Animation that plays a colour timeline on the
// whole strip. With a non-zero spread pixel i runs spread*i/numPixels
// seconds ahead of the first pixel, which turns the timeline into a wave.
type SequenceAnimation struct {
	colours   *keyframe.Sequence[colorful.Color]
	numPixels int
	looping   Looping
	spread    float64

	started bool
	lastMs  int64
}

// NewSequenceAnimation creates an instance of a SequenceAnimation object.
func NewSequenceAnimation(colours *keyframe.Sequence[colorful.Color], numPixels int,
	looping Looping, spread float64) *SequenceAnimation {

	a := new(SequenceAnimation)
	a.colours = colours
	a.numPixels = numPixels
	a.looping = looping
	a.spread = spread

	return a
}

// CalculateFrame creates a new Frame instance.
func (a *SequenceAnimation) CalculateFrame(runtimeMs int64) *Frame {
	if !a.started {
		a.lastMs = runtimeMs
		a.started = true
	}
	delta := float64(runtimeMs-a.lastMs) / 1000
	a.lastMs = runtimeMs

	switch a.looping {
	case LoopWrap:
		a.colours.AdvanceAndMaybeWrap(delta)
	case LoopReverse:
		a.colours.AdvanceAndMaybeReverse(delta)
	default:
		a.colours.AdvanceBy(delta)
	}

	f := NewFrame(a.numPixels)
	if a.spread == 0 {
		f.Fill(a.colours.Now())
		return f
	}

	now := a.colours.Time()
	for i := range f.Pixels {
		f.Pixels[i] = a.colours.ValueAt(a.pixelTime(now, i))
	}
	return f
}

func (a *SequenceAnimation) pixelTime(now float64, i int) float64 {
	t := now + a.spread*float64(i)/float64(a.numPixels)
	end := a.colours.End()
	if end <= 0 {
		return t
	}

	switch a.looping {
	case LoopWrap:
		return math.Mod(t, end)
	case LoopReverse:
		// Pixels ahead of the turning point are already on their way back.
		t = math.Mod(t, 2*end)
		if t > end {
			t = 2*end - t
		}
	}
	return t
}
