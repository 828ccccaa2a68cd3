package easing

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Kind identifies one of the built-in curves. A Kind is itself a Function.
type Kind int

// Built-in curves. EaseIn, EaseOut and EaseInOut are cubic.
const (
	Linear Kind = iota
	EaseIn
	EaseOut
	EaseInOut
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce

	numKinds
)

type kindInfo struct {
	name string
	fn   func(float64) float64
}

var kinds = [numKinds]kindInfo{
	Linear:       {"linear", ease.Linear},
	EaseIn:       {"easeIn", ease.InCubic},
	EaseOut:      {"easeOut", ease.OutCubic},
	EaseInOut:    {"easeInOut", ease.InOutCubic},
	InQuad:       {"inQuad", ease.InQuad},
	OutQuad:      {"outQuad", ease.OutQuad},
	InOutQuad:    {"inOutQuad", ease.InOutQuad},
	InCubic:      {"inCubic", ease.InCubic},
	OutCubic:     {"outCubic", ease.OutCubic},
	InOutCubic:   {"inOutCubic", ease.InOutCubic},
	InQuart:      {"inQuart", ease.InQuart},
	OutQuart:     {"outQuart", ease.OutQuart},
	InOutQuart:   {"inOutQuart", ease.InOutQuart},
	InQuint:      {"inQuint", ease.InQuint},
	OutQuint:     {"outQuint", ease.OutQuint},
	InOutQuint:   {"inOutQuint", ease.InOutQuint},
	InSine:       {"inSine", ease.InSine},
	OutSine:      {"outSine", ease.OutSine},
	InOutSine:    {"inOutSine", ease.InOutSine},
	InExpo:       {"inExpo", ease.InExpo},
	OutExpo:      {"outExpo", ease.OutExpo},
	InOutExpo:    {"inOutExpo", ease.InOutExpo},
	InCirc:       {"inCirc", ease.InCirc},
	OutCirc:      {"outCirc", ease.OutCirc},
	InOutCirc:    {"inOutCirc", ease.InOutCirc},
	InElastic:    {"inElastic", ease.InElastic},
	OutElastic:   {"outElastic", ease.OutElastic},
	InOutElastic: {"inOutElastic", ease.InOutElastic},
	InBack:       {"inBack", ease.InBack},
	OutBack:      {"outBack", ease.OutBack},
	InOutBack:    {"inOutBack", ease.InOutBack},
	InBounce:     {"inBounce", ease.InBounce},
	OutBounce:    {"outBounce", ease.OutBounce},
	InOutBounce:  {"inOutBounce", ease.InOutBounce},
}

// Ease evaluates the curve at t. An unknown Kind behaves as Linear.
func (k Kind) Ease(t float64) float64 {
	if !k.valid() {
		return t
	}
	return kinds[k].fn(t)
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// Kinds lists every built-in curve in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind looks up a built-in curve by name. Matching ignores case,
// so "easeInOut", "EaseInOut" and "easeinout" are equivalent.
func ParseKind(name string) (Kind, error) {
	for i, info := range kinds {
		if strings.EqualFold(info.name, name) {
			return Kind(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}
