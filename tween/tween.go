// Package tween blends values of arbitrary types and eases between them.
//
// The capability to blend is expressed as a BlendFunc. Numbers get one from
// Scalar, types with a Tween method from Method, and composite types from
// Slice, Reflect or a hand-written function that blends each component with
// the same ratio. Every BlendFunc must return from exactly at ratio 0 and to
// exactly at ratio 1.
package tween

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrShapeMismatch is the panic value (wrapped) raised when two composite
// values of different shape are blended, such as slices of unequal length.
var ErrShapeMismatch = errors.New("tween: shape mismatch")

// Number is any built-in numeric scalar type.
type Number interface {
	constraints.Integer | constraints.Float
}

// A BlendFunc linearly blends from towards to by ratio.
type BlendFunc[V any] func(from, to V, ratio float64) V

// Tweener is implemented by types that know how to blend themselves.
type Tweener[V any] interface {
	Tween(to V, ratio float64) V
}

// Lerp returns from + (to-from)*ratio. Integer results are rounded to the
// nearest value. Ratios 0 and 1 return the endpoints exactly.
func Lerp[N Number](from, to N, ratio float64) N {
	switch ratio {
	case 0:
		return from
	case 1:
		return to
	}

	v := float64(from) + (float64(to)-float64(from))*ratio
	if isInteger[N]() {
		return N(math.Round(v))
	}
	return N(v)
}

func isInteger[N Number]() bool {
	half := 0.5
	return N(half) == 0
}

// Scalar returns the BlendFunc for a numeric type.
func Scalar[N Number]() BlendFunc[N] {
	return Lerp[N]
}

// Method returns a BlendFunc that delegates to the value's Tween method.
func Method[V Tweener[V]]() BlendFunc[V] {
	return func(from, to V, ratio float64) V {
		return from.Tween(to, ratio)
	}
}

// Exact wraps b so that ratios 0 and 1 return the endpoints untouched. It is
// useful for foreign blend operations that round-trip through another
// representation.
func Exact[V any](b BlendFunc[V]) BlendFunc[V] {
	return func(from, to V, ratio float64) V {
		switch ratio {
		case 0:
			return from
		case 1:
			return to
		}
		return b(from, to, ratio)
	}
}

// Slice blends two slices element by element. The slices must have the same
// length; otherwise the returned function panics with an error wrapping
// ErrShapeMismatch.
func Slice[E any](elem BlendFunc[E]) BlendFunc[[]E] {
	return func(from, to []E, ratio float64) []E {
		if len(from) != len(to) {
			panic(fmt.Errorf("%w: blending slices of length %d and %d", ErrShapeMismatch, len(from), len(to)))
		}
		if from == nil {
			return nil
		}
		out := make([]E, len(from))
		for i := range from {
			out[i] = elem(from[i], to[i], ratio)
		}
		return out
	}
}
