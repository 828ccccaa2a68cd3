package tween

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestLerpEndpointsExact(t *testing.T) {
	pairs := [][2]float64{{0.1, 0.7}, {-3.3, 1e9}, {0.3, 0.3}, {1e-300, -1e300}}
	for _, p := range pairs {
		if got := Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%v, %v, 0) = %v, want %v", p[0], p[1], got, p[0])
		}
		if got := Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%v, %v, 1) = %v, want %v", p[0], p[1], got, p[1])
		}
	}
}

func TestLerpFormula(t *testing.T) {
	a, b := 2.5, -7.25
	for r := 0.05; r < 1; r += 0.05 {
		want := a + (b-a)*r
		if got := Lerp(a, b, r); math.Abs(got-want) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, r, got, want)
		}
	}
}

func TestLerpIntegers(t *testing.T) {
	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"int midpoint", Lerp(0, 10, 0.5), 5},
		{"int rounds", Lerp(0, 10, 0.26), 3},
		{"int negative", Lerp(10, -10, 0.75), -5},
		{"uint8 descending", Lerp[uint8](200, 100, 0.5), uint8(150)},
		{"uint8 end", Lerp[uint8](0, 255, 1), uint8(255)},
		{"int64 start", Lerp[int64](-4, 4, 0), int64(-4)},
		{"float32", Lerp[float32](0, 1, 0.25), float32(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v (%T), want %v (%T)", tt.got, tt.got, tt.expected, tt.expected)
			}
		})
	}
}

func TestScalarMatchesLerp(t *testing.T) {
	b := Scalar[float64]()
	if got := b(1, 3, 0.5); got != 2 {
		t.Errorf("Scalar blend = %v, want 2", got)
	}
}

type pair struct {
	A float64
	B float64
}

func (p pair) Tween(to pair, ratio float64) pair {
	return pair{Lerp(p.A, to.A, ratio), Lerp(p.B, to.B, ratio)}
}

func TestMethodIsComponentwise(t *testing.T) {
	blend := Method[pair]()
	from, to := pair{1, 10}, pair{3, 20}
	for _, r := range []float64{0, 0.3, 0.5, 1} {
		got := blend(from, to, r)
		want := pair{Lerp(from.A, to.A, r), Lerp(from.B, to.B, r)}
		if got != want {
			t.Errorf("blend at %v = %+v, want %+v", r, got, want)
		}
	}
	if blend(from, to, 0) != from || blend(from, to, 1) != to {
		t.Error("endpoints are not exact")
	}
}

func TestSlice(t *testing.T) {
	blend := Slice(Scalar[float64]())
	got := blend([]float64{0, 10, -2}, []float64{1, 20, 2}, 0.5)
	want := []float64{0.5, 15, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}

	if blend(nil, nil, 0.5) != nil {
		t.Error("blending nil slices should give nil")
	}
}

func TestSliceShapeMismatchPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("recovered %v, want ErrShapeMismatch", r)
		}
	}()
	Slice(Scalar[int]())([]int{1, 2}, []int{1}, 0.5)
}

func TestExact(t *testing.T) {
	calls := 0
	b := Exact[float64](func(from, to float64, ratio float64) float64 {
		calls++
		return -1
	})
	if b(3, 4, 0) != 3 || b(3, 4, 1) != 4 {
		t.Error("Exact should short-circuit endpoints")
	}
	if calls != 0 {
		t.Errorf("wrapped blend called %d times at endpoints", calls)
	}
	if b(3, 4, 0.5) != -1 || calls != 1 {
		t.Error("Exact should delegate between endpoints")
	}
}

func TestEase(t *testing.T) {
	tests := []struct {
		name     string
		fn       easing.Function
		time     float64
		expected float64
	}{
		{"linear midpoint", easing.Linear, 0.5, 1},
		{"easeInOut midpoint", easing.EaseInOut, 0.5, 1},
		{"easeIn quarter", easing.EaseIn, 0.5, 0.25},
		{"clamped below", easing.Linear, -1, 0},
		{"clamped above", easing.Linear, 2, 2},
		{"nil is linear", nil, 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ease(tt.fn, 0.0, 2.0, tt.time); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Ease(%v) = %v, want %v", tt.time, got, tt.expected)
			}
		})
	}
}

func TestEaseNaNIsDegenerate(t *testing.T) {
	if got := Ease(easing.Linear, 0.0, 1.0, math.NaN()); !math.IsNaN(got) {
		t.Errorf("Ease(NaN) = %v, want NaN", got)
	}
}

func TestEaseUnboundedAndScaled(t *testing.T) {
	b := Scalar[float64]()
	if got := b.EaseUnbounded(easing.Linear, 0, 10, 1.5); got != 15 {
		t.Errorf("EaseUnbounded = %v, want 15", got)
	}
	if got := b.EaseScaled(easing.Linear, 0, 10, 2, 4); got != 5 {
		t.Errorf("EaseScaled = %v, want 5", got)
	}
	if got := b.EaseScaled(easing.Linear, 0, 10, 6, 4); got != 10 {
		t.Errorf("EaseScaled past end = %v, want 10", got)
	}
	if got := b.EaseScaled(easing.Linear, 0, 10, 1, 0); got != 10 {
		t.Errorf("EaseScaled with zero span = %v, want 10", got)
	}
}

func TestEaseShortcuts(t *testing.T) {
	if got := EaseIn(0.0, 8.0, 0.5); got != 1 {
		t.Errorf("EaseIn = %v, want 1", got)
	}
	if got := EaseOut(0.0, 8.0, 0.5); got != 7 {
		t.Errorf("EaseOut = %v, want 7", got)
	}
	if got := EaseInOut(0.0, 8.0, 0.5); got != 4 {
		t.Errorf("EaseInOut = %v, want 4", got)
	}
}

func TestColorAdaptersExactEndpoints(t *testing.T) {
	from, _ := colorful.Hex("#ff0000")
	to, _ := colorful.Hex("#0000ff")
	for name, b := range map[string]BlendFunc[colorful.Color]{
		"rgb": ColorRGB,
		"lab": ColorLab,
		"luv": ColorLuv,
		"hcl": ColorHcl,
		"hsv": ColorHsv,
	} {
		if b(from, to, 0) != from || b(from, to, 1) != to {
			t.Errorf("%s blend does not return exact endpoints", name)
		}
	}

	mid := ColorRGB(from, to, 0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.B-0.5) > 1e-9 {
		t.Errorf("rgb midpoint = %+v", mid)
	}
}

func TestVectorAdapters(t *testing.T) {
	if got := Vec2(f64.Vec2{0, 2}, f64.Vec2{2, 4}, 0.5); got != (f64.Vec2{1, 3}) {
		t.Errorf("Vec2 = %v", got)
	}
	if got := Vec3(f64.Vec3{0, 0, 0}, f64.Vec3{1, 2, 3}, 0.5); got != (f64.Vec3{0.5, 1, 1.5}) {
		t.Errorf("Vec3 = %v", got)
	}
	if got := Vec4(f64.Vec4{0, 0, 0, 0}, f64.Vec4{4, 4, 4, 4}, 0.25); got != (f64.Vec4{1, 1, 1, 1}) {
		t.Errorf("Vec4 = %v", got)
	}
	if got := Vec2f32(f32.Vec2{0, 2}, f32.Vec2{2, 4}, 0.5); got != (f32.Vec2{1, 3}) {
		t.Errorf("Vec2f32 = %v", got)
	}
	if got := Vec3f32(f32.Vec3{0, 0, 0}, f32.Vec3{1, 2, 3}, 1); got != (f32.Vec3{1, 2, 3}) {
		t.Errorf("Vec3f32 = %v", got)
	}
	if got := Vec4f32(f32.Vec4{1, 1, 1, 1}, f32.Vec4{3, 3, 3, 3}, 0.5); got != (f32.Vec4{2, 2, 2, 2}) {
		t.Errorf("Vec4f32 = %v", got)
	}

	p := Point26_6(fixed.P(0, 0), fixed.P(2, 4), 0.5)
	if p != fixed.P(1, 2) {
		t.Errorf("Point26_6 = %v, want %v", p, fixed.P(1, 2))
	}
}

func TestEaseWithAdapter(t *testing.T) {
	got := BlendFunc[f64.Vec2](Vec2).Ease(easing.Linear, f64.Vec2{0, 0}, f64.Vec2{10, 20}, 0.1)
	want := f64.Vec2{1, 2}
	if math.Abs(got[0]-want[0]) > 1e-9 || math.Abs(got[1]-want[1]) > 1e-9 {
		t.Errorf("Ease over Vec2 = %v, want %v", got, want)
	}
}
