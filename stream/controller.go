package stream

import (
	"errors"
	"log"
	"time"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/keyframe"
	"github.com/matt-g-everett/ledtween/tween"
)

// ErrNoAnimations is returned when a Controller is created without animations.
var ErrNoAnimations = errors.New("stream: no animations")

// NamedAnimation is an Animation with a name for logs.
type NamedAnimation struct {
	Name string
	Animation
}

var blendFrames = tween.Method[*Frame]()

// Controller that manages animations. It shows one animation at a time and
// cross-fades to the next one when cycled.
type Controller struct {
	animations []NamedAnimation
	index      int
	animation  Animation
	next       Animation

	// fade runs from 0 to 1 over the transition time.
	fade *keyframe.Sequence[float64]

	started bool
	lastMs  int64
}

// NewController creates an instance of a Controller. Transitions between
// animations take transition and follow fn.
func NewController(animations []NamedAnimation, transition time.Duration, fn easing.Function) (*Controller, error) {
	if len(animations) == 0 {
		return nil, ErrNoAnimations
	}

	c := new(Controller)
	c.animations = animations
	c.animation = animations[0].Animation
	c.fade = keyframe.Numbers(
		keyframe.New(0.0, 0, fn),
		keyframe.New(1.0, transition.Seconds(), fn),
	)

	return c, nil
}

// Current returns the name of the animation being shown, or being faded to.
func (c *Controller) Current() string {
	return c.animations[c.index].Name
}

// Transitioning reports whether a cross-fade is in progress.
func (c *Controller) Transitioning() bool {
	return c.next != nil
}

// CalculateFrame renders the current animation, blended with the next one
// during a transition.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	if !c.started {
		c.lastMs = runtimeMs
		c.started = true
	}
	delta := float64(runtimeMs-c.lastMs) / 1000
	c.lastMs = runtimeMs

	if c.next == nil {
		return c.animation.CalculateFrame(runtimeMs)
	}

	c.fade.AdvanceBy(delta)
	f1 := c.animation.CalculateFrame(runtimeMs)
	f2 := c.next.CalculateFrame(runtimeMs)
	f := blendFrames(f1, f2, c.fade.Now())

	if c.fade.Finished() {
		c.animation = c.next
		c.next = nil
	}

	return f
}

// Cycle starts a transition to the next animation. A transition already in
// progress is completed first.
func (c *Controller) Cycle() {
	if len(c.animations) < 2 {
		return
	}
	if c.next != nil {
		c.animation = c.next
	}

	c.index = (c.index + 1) % len(c.animations)
	c.next = c.animations[c.index].Animation
	c.fade.JumpTo(0)
	log.Printf("Cycling to animation %q", c.Current())
}
