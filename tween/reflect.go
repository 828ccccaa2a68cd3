package tween

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrNotTweenable is the panic value (wrapped) raised by Reflect for types
// that contain something it cannot blend.
var ErrNotTweenable = errors.New("tween: type is not tweenable")

type blendNode func(dst, from, to reflect.Value, ratio float64)

// Reflect derives a componentwise BlendFunc for V. Supported are numeric
// kinds, arrays, slices and structs whose exported fields are all supported,
// recursively, plus any type with a method Tween(T, float64) T which is
// delegated to. Slices must match in length when blended.
//
// The type is inspected once, when Reflect is called. It panics with an
// error wrapping ErrNotTweenable if V cannot be blended, for instance because
// it has unexported fields, strings or pointers.
func Reflect[V any]() BlendFunc[V] {
	t := reflect.TypeOf((*V)(nil)).Elem()
	c := compiler{seen: make(map[reflect.Type]*blendNode)}
	node, err := c.compile(t, t.String())
	if err != nil {
		panic(err)
	}

	return func(from, to V, ratio float64) V {
		switch ratio {
		case 0:
			return from
		case 1:
			return to
		}
		var out V
		node(reflect.ValueOf(&out).Elem(), reflect.ValueOf(&from).Elem(), reflect.ValueOf(&to).Elem(), ratio)
		return out
	}
}

type compiler struct {
	// seen holds nodes under construction so recursive types terminate.
	seen map[reflect.Type]*blendNode
}

func (c *compiler) compile(t reflect.Type, path string) (blendNode, error) {
	if p, ok := c.seen[t]; ok {
		return func(dst, from, to reflect.Value, ratio float64) {
			(*p)(dst, from, to, ratio)
		}, nil
	}
	p := new(blendNode)
	c.seen[t] = p

	node, err := c.build(t, path)
	if err != nil {
		return nil, err
	}
	*p = node
	return node, nil
}

func (c *compiler) build(t reflect.Type, path string) (blendNode, error) {
	if m, ok := tweenMethod(t); ok {
		return methodNode(m), nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(dst, from, to reflect.Value, ratio float64) {
			a, b := float64(from.Int()), float64(to.Int())
			dst.SetInt(int64(math.Round(a + (b-a)*ratio)))
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(dst, from, to reflect.Value, ratio float64) {
			a, b := float64(from.Uint()), float64(to.Uint())
			dst.SetUint(uint64(math.Round(a + (b-a)*ratio)))
		}, nil

	case reflect.Float32, reflect.Float64:
		return func(dst, from, to reflect.Value, ratio float64) {
			a, b := from.Float(), to.Float()
			dst.SetFloat(a + (b-a)*ratio)
		}, nil

	case reflect.Array:
		elem, err := c.compile(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return func(dst, from, to reflect.Value, ratio float64) {
			for i := 0; i < dst.Len(); i++ {
				elem(dst.Index(i), from.Index(i), to.Index(i), ratio)
			}
		}, nil

	case reflect.Slice:
		elem, err := c.compile(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return func(dst, from, to reflect.Value, ratio float64) {
			if from.Len() != to.Len() {
				panic(fmt.Errorf("%w: %s has length %d and %d", ErrShapeMismatch, path, from.Len(), to.Len()))
			}
			if from.IsNil() {
				return
			}
			dst.Set(reflect.MakeSlice(t, from.Len(), from.Len()))
			for i := 0; i < from.Len(); i++ {
				elem(dst.Index(i), from.Index(i), to.Index(i), ratio)
			}
		}, nil

	case reflect.Struct:
		fields := make([]blendNode, t.NumField())
		for i := range fields {
			f := t.Field(i)
			if !f.IsExported() {
				return nil, fmt.Errorf("%w: %s.%s is unexported", ErrNotTweenable, path, f.Name)
			}
			node, err := c.compile(f.Type, path+"."+f.Name)
			if err != nil {
				return nil, err
			}
			fields[i] = node
		}
		return func(dst, from, to reflect.Value, ratio float64) {
			for i, node := range fields {
				node(dst.Field(i), from.Field(i), to.Field(i), ratio)
			}
		}, nil
	}

	return nil, fmt.Errorf("%w: %s has kind %s", ErrNotTweenable, path, t.Kind())
}

var float64Type = reflect.TypeOf(float64(0))

// tweenMethod finds a value-receiver method Tween(T, float64) T on t.
func tweenMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName("Tween")
	if !ok {
		return m, false
	}
	mt := m.Type // receiver is the first input
	if mt.NumIn() != 3 || mt.NumOut() != 1 {
		return m, false
	}
	if mt.In(1) != t || mt.In(2) != float64Type || mt.Out(0) != t {
		return m, false
	}
	return m, true
}

func methodNode(m reflect.Method) blendNode {
	return func(dst, from, to reflect.Value, ratio float64) {
		out := m.Func.Call([]reflect.Value{from, to, reflect.ValueOf(ratio)})
		dst.Set(out[0])
	}
}
