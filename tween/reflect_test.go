package tween

import (
	"errors"
	"testing"
)

type sprite struct {
	X, Y   float64
	Alpha  float32
	Frame  int
	Anchor pair
	Tint   [3]uint8
	Path   []float64
}

func TestReflectStruct(t *testing.T) {
	blend := Reflect[sprite]()
	from := sprite{X: 0, Y: 10, Alpha: 0, Frame: 0, Anchor: pair{0, 0}, Tint: [3]uint8{0, 100, 200}, Path: []float64{0, 0}}
	to := sprite{X: 10, Y: 20, Alpha: 1, Frame: 4, Anchor: pair{2, 4}, Tint: [3]uint8{100, 100, 0}, Path: []float64{1, -1}}

	got := blend(from, to, 0.5)
	if got.X != 5 || got.Y != 15 || got.Alpha != 0.5 || got.Frame != 2 {
		t.Errorf("scalar fields = %+v", got)
	}
	if got.Anchor != (pair{1, 2}) {
		t.Errorf("Tween method not delegated: %+v", got.Anchor)
	}
	if got.Tint != [3]uint8{50, 100, 100} {
		t.Errorf("array field = %v", got.Tint)
	}
	if len(got.Path) != 2 || got.Path[0] != 0.5 || got.Path[1] != -0.5 {
		t.Errorf("slice field = %v", got.Path)
	}
}

func TestReflectEndpointsReturnInputs(t *testing.T) {
	blend := Reflect[pair]()
	from, to := pair{0.1, 0.2}, pair{0.7, 0.9}
	if blend(from, to, 0) != from || blend(from, to, 1) != to {
		t.Error("endpoints are not exact")
	}
}

func TestReflectScalarAndArray(t *testing.T) {
	if got := Reflect[float64]()(2, 4, 0.5); got != 3 {
		t.Errorf("float64 = %v, want 3", got)
	}
	if got := Reflect[[2]int]()([2]int{0, 10}, [2]int{10, 0}, 0.3); got != [2]int{3, 7} {
		t.Errorf("[2]int = %v, want [3 7]", got)
	}
}

type tree struct {
	Weight   float64
	Children []tree
}

func TestReflectRecursiveType(t *testing.T) {
	blend := Reflect[tree]()
	from := tree{Weight: 0, Children: []tree{{Weight: 2}}}
	to := tree{Weight: 4, Children: []tree{{Weight: 6}}}
	got := blend(from, to, 0.5)
	if got.Weight != 2 || len(got.Children) != 1 || got.Children[0].Weight != 4 {
		t.Errorf("recursive blend = %+v", got)
	}
}

func TestReflectRejectsUntweenableTypes(t *testing.T) {
	type named struct {
		Name string
	}
	type hidden struct {
		x float64
	}

	tests := []struct {
		name  string
		build func()
	}{
		{"string field", func() { Reflect[named]() }},
		{"unexported field", func() { Reflect[hidden]() }},
		{"pointer", func() { Reflect[*pair]() }},
		{"map", func() { Reflect[map[string]float64]() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrNotTweenable) {
					t.Errorf("recovered %v, want ErrNotTweenable", err)
				}
			}()
			tt.build()
		})
	}
}

func TestReflectSliceMismatchPanics(t *testing.T) {
	blend := Reflect[sprite]()
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("recovered %v, want ErrShapeMismatch", err)
		}
	}()
	blend(sprite{Path: []float64{1}}, sprite{Path: []float64{1, 2}}, 0.5)
}
