package keyframe

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

var (
	// ErrIndexOutOfRange is returned for keyframe indices outside the sequence.
	ErrIndexOutOfRange = errors.New("keyframe: index out of range")
	// ErrEmpty is returned when a keyframe is requested from an empty
	// sequence. It also matches ErrIndexOutOfRange.
	ErrEmpty = fmt.Errorf("%w: sequence is empty", ErrIndexOutOfRange)
	// ErrInvalidTime is returned when inserting a keyframe whose time is NaN
	// or infinite.
	ErrInvalidTime = errors.New("keyframe: invalid time")
)

// Small cursor moves are resolved by stepping from the previous segment;
// anything further falls back to binary search.
const maxScan = 4

// Sequence is an ordered timeline of keyframes with a playback position.
//
// Keyframes are kept sorted by time. Keyframes sharing a time keep their
// insertion order and the last one inserted is the one playback lands on.
// The timeline starts at 0: before the first keyframe its value is held,
// and playback ends at the last keyframe.
//
// A Sequence is not safe for concurrent use.
type Sequence[V any] struct {
	blend     tween.BlendFunc[V]
	keyframes []Keyframe[V]
	time      float64

	// current is the index of the keyframe that starts the segment holding
	// time, or -1 before the first keyframe. It is a cache derived from time.
	current int
}

// NewSequence creates a sequence that blends values with blend. Keyframes
// may be given in any order; those with NaN or infinite times are dropped.
func NewSequence[V any](blend tween.BlendFunc[V], keyframes ...Keyframe[V]) *Sequence[V] {
	s := &Sequence[V]{blend: blend, current: -1}
	for _, k := range keyframes {
		if validTime(k.Time) {
			s.keyframes = append(s.keyframes, normalize(k))
		}
	}
	s.sortKeyframes()
	s.relocate()
	return s
}

// Numbers creates a sequence of plain numbers.
func Numbers[N tween.Number](keyframes ...Keyframe[N]) *Sequence[N] {
	return NewSequence(tween.Scalar[N](), keyframes...)
}

// FromSeq creates a sequence from an iterator of keyframes.
func FromSeq[V any](blend tween.BlendFunc[V], keyframes iter.Seq[Keyframe[V]]) *Sequence[V] {
	return NewSequence(blend, slices.Collect(keyframes)...)
}

func normalize[V any](k Keyframe[V]) Keyframe[V] {
	return New(k.Value, k.Time, k.Easing)
}

func (s *Sequence[V]) sortKeyframes() {
	slices.SortStableFunc(s.keyframes, func(a, b Keyframe[V]) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
}

// Len returns the number of keyframes.
func (s *Sequence[V]) Len() int {
	return len(s.keyframes)
}

// Keyframe returns the keyframe at index i.
func (s *Sequence[V]) Keyframe(i int) (Keyframe[V], error) {
	if len(s.keyframes) == 0 {
		return Keyframe[V]{}, ErrEmpty
	}
	if i < 0 || i >= len(s.keyframes) {
		return Keyframe[V]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.keyframes))
	}
	return s.keyframes[i], nil
}

// Keyframes returns a copy of the keyframes in time order.
func (s *Sequence[V]) Keyframes() []Keyframe[V] {
	return slices.Clone(s.keyframes)
}

// All iterates over the keyframes in time order.
func (s *Sequence[V]) All() iter.Seq2[int, Keyframe[V]] {
	return func(yield func(int, Keyframe[V]) bool) {
		for i, k := range s.keyframes {
			if !yield(i, k) {
				return
			}
		}
	}
}

// HasKeyframeAt reports whether a keyframe sits exactly at time.
func (s *Sequence[V]) HasKeyframeAt(time float64) bool {
	i := s.search(time)
	return i >= 0 && s.keyframes[i].Time == time
}

// Insert adds a keyframe, after any existing keyframes at the same time.
func (s *Sequence[V]) Insert(k Keyframe[V]) error {
	if !validTime(k.Time) {
		return fmt.Errorf("%w: %v", ErrInvalidTime, k.Time)
	}
	k = normalize(k)
	s.keyframes = slices.Insert(s.keyframes, s.upperBound(k.Time), k)
	s.mutated()
	return nil
}

// InsertMany adds several keyframes at once. If any has an invalid time
// nothing is inserted.
func (s *Sequence[V]) InsertMany(keyframes ...Keyframe[V]) error {
	for _, k := range keyframes {
		if !validTime(k.Time) {
			return fmt.Errorf("%w: %v", ErrInvalidTime, k.Time)
		}
	}
	for _, k := range keyframes {
		s.keyframes = append(s.keyframes, normalize(k))
	}
	s.sortKeyframes()
	s.mutated()
	return nil
}

// Remove deletes and returns the keyframe at index i.
func (s *Sequence[V]) Remove(i int) (Keyframe[V], error) {
	k, err := s.Keyframe(i)
	if err != nil {
		return k, err
	}
	s.keyframes = slices.Delete(s.keyframes, i, i+1)
	s.mutated()
	return k, nil
}

// RemoveAt deletes every keyframe at exactly time and reports whether any
// were removed.
func (s *Sequence[V]) RemoveAt(time float64) bool {
	return s.Retain(func(k Keyframe[V]) bool { return k.Time != time })
}

// Retain keeps only the keyframes for which keep returns true and reports
// whether any were removed.
func (s *Sequence[V]) Retain(keep func(Keyframe[V]) bool) bool {
	n := len(s.keyframes)
	s.keyframes = slices.DeleteFunc(s.keyframes, func(k Keyframe[V]) bool { return !keep(k) })
	if len(s.keyframes) == n {
		return false
	}
	s.mutated()
	return true
}

// Clear removes every keyframe.
func (s *Sequence[V]) Clear() {
	s.Retain(func(Keyframe[V]) bool { return false })
}

// mutated re-establishes the position invariants after the keyframes change.
func (s *Sequence[V]) mutated() {
	s.time = s.clamp(s.time)
	s.relocate()
}

// Time returns the current playback position.
func (s *Sequence[V]) Time() float64 {
	return s.time
}

// Start returns the time of the first keyframe, or 0 when empty.
func (s *Sequence[V]) Start() float64 {
	if len(s.keyframes) == 0 {
		return 0
	}
	return s.keyframes[0].Time
}

// End returns the time of the last keyframe, or 0 when empty. Playback
// positions are clamped to [0, End()].
func (s *Sequence[V]) End() float64 {
	if len(s.keyframes) == 0 {
		return 0
	}
	return s.keyframes[len(s.keyframes)-1].Time
}

// Duration returns the time between the first and the last keyframe.
func (s *Sequence[V]) Duration() float64 {
	return s.End() - s.Start()
}

// Progress returns how far playback is between the first and the last
// keyframe, in [0, 1]. It ignores easing. A zero duration gives 0.
func (s *Sequence[V]) Progress() float64 {
	d := s.Duration()
	if d == 0 {
		return 0
	}
	return math.Min(math.Max((s.time-s.Start())/d, 0), 1)
}

// Finished reports whether playback has reached the last keyframe. An
// empty sequence is always finished.
func (s *Sequence[V]) Finished() bool {
	return s.time >= s.End()
}

// AdvanceBy moves playback by delta, which may be negative, and reports
// whether the sequence is at its end. Positions outside the timeline are
// clamped and a NaN delta is ignored.
func (s *Sequence[V]) AdvanceBy(delta float64) bool {
	if math.IsNaN(delta) {
		return s.Finished()
	}
	s.time = s.clamp(s.time + delta)
	s.scan()
	return s.Finished()
}

// AdvanceTo moves playback to time and returns by how much time fell outside
// the timeline: positive past the end, negative before the start, 0 inside.
// A NaN time is ignored.
func (s *Sequence[V]) AdvanceTo(time float64) float64 {
	if math.IsNaN(time) {
		return 0
	}
	s.time = s.clamp(time)
	s.relocate()
	return time - s.time
}

// JumpTo moves playback to time, clamped to the timeline.
func (s *Sequence[V]) JumpTo(time float64) {
	s.AdvanceTo(time)
}

// AdvanceAndMaybeWrap moves playback by delta, wrapping around to the other
// end of the timeline as often as needed. It reports whether it wrapped.
func (s *Sequence[V]) AdvanceAndMaybeWrap(delta float64) bool {
	end := s.End()
	if !validTime(delta) || end <= 0 {
		s.AdvanceBy(delta)
		return false
	}

	t := s.time + delta
	if t >= 0 && t <= end {
		s.AdvanceBy(delta)
		return false
	}
	t = math.Mod(t, end)
	if t < 0 {
		t += end
	}
	s.AdvanceTo(t)
	return true
}

// AdvanceAndMaybeReverse moves playback by delta. Whenever it runs off either
// end the sequence is reversed and playback continues in the other direction
// with the remaining time. It reports whether it reversed.
func (s *Sequence[V]) AdvanceAndMaybeReverse(delta float64) bool {
	if !validTime(delta) {
		s.AdvanceBy(delta)
		return false
	}

	reversed := false
	for {
		overshoot := s.advanceBy(delta)
		if overshoot == 0 {
			return reversed
		}
		end := s.End()
		if end <= 0 {
			return reversed
		}

		reversed = true
		s.Reverse()
		if period := 2 * s.End(); math.Abs(overshoot) > period {
			overshoot = math.Mod(overshoot, period)
		}
		delta = overshoot
	}
}

// advanceBy is AdvanceBy returning the overshoot instead.
func (s *Sequence[V]) advanceBy(delta float64) float64 {
	want := s.time + delta
	s.time = s.clamp(want)
	s.scan()
	return want - s.time
}

// Reverse mirrors the timeline so that it plays backwards: a keyframe at t
// moves to End()-t, and each segment takes the reversed curve of the segment
// it mirrors. The playback position is mirrored as well, so Now is unchanged
// for symmetric blends.
func (s *Sequence[V]) Reverse() {
	n := len(s.keyframes)
	if n == 0 {
		return
	}

	end := s.End()
	out := make([]Keyframe[V], n)
	for j := range out {
		k := s.keyframes[n-1-j]
		k.Time = end - k.Time
		// Segment j mirrors the original segment ending at keyframe n-1-j.
		src := n - 2 - j
		if j == n-1 {
			src = n - 1
		}
		k.Easing = easing.Reversed(s.keyframes[src].curve())
		out[j] = k
	}
	s.keyframes = out
	s.time = s.clamp(end - s.time)
	s.relocate()
}

// Now returns the value at the current position. An empty sequence yields
// the zero value.
func (s *Sequence[V]) Now() V {
	v, _ := s.NowStrict()
	return v
}

// NowStrict is like Now but reports false for an empty sequence.
func (s *Sequence[V]) NowStrict() (V, bool) {
	return s.valueAt(s.current, s.time)
}

// ValueAt returns the value at time without moving playback.
func (s *Sequence[V]) ValueAt(time float64) V {
	t := s.clamp(time)
	if math.IsNaN(time) {
		t = s.time
	}
	v, _ := s.valueAt(s.search(t), t)
	return v
}

func (s *Sequence[V]) valueAt(i int, time float64) (V, bool) {
	n := len(s.keyframes)
	switch {
	case n == 0:
		var zero V
		return zero, false
	case i < 0:
		return s.keyframes[0].Value, true
	case i >= n-1:
		return s.keyframes[n-1].Value, true
	}
	return s.keyframes[i].TweenTo(s.keyframes[i+1], time, s.blend), true
}

// Pair returns the keyframes around the current position. cur is nil before
// the first keyframe and next is nil at or after the last one.
func (s *Sequence[V]) Pair() (cur, next *Keyframe[V]) {
	n := len(s.keyframes)
	if n == 0 {
		return nil, nil
	}
	if s.current >= 0 {
		k := s.keyframes[s.current]
		cur = &k
	}
	if s.current+1 < n {
		k := s.keyframes[s.current+1]
		next = &k
	}
	return cur, next
}

func (s *Sequence[V]) clamp(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > s.End():
		return s.End()
	}
	return t
}

// search returns the index of the last keyframe at or before t, or -1.
func (s *Sequence[V]) search(t float64) int {
	return s.upperBound(t) - 1
}

// upperBound returns the index of the first keyframe after t.
func (s *Sequence[V]) upperBound(t float64) int {
	return sort.Search(len(s.keyframes), func(i int) bool {
		return s.keyframes[i].Time > t
	})
}

func (s *Sequence[V]) relocate() {
	s.current = s.search(s.time)
}

// scan steps the cursor from its previous segment, which is cheap for
// the small moves of frame-by-frame playback.
func (s *Sequence[V]) scan() {
	n := len(s.keyframes)
	i := s.current
	if i < -1 || i >= n {
		s.relocate()
		return
	}

	for step := 0; step < maxScan; step++ {
		switch {
		case i+1 < n && s.keyframes[i+1].Time <= s.time:
			i++
		case i >= 0 && s.keyframes[i].Time > s.time:
			i--
		default:
			s.current = i
			return
		}
	}
	s.relocate()
}
