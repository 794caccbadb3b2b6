// Package freeze provides an immutable view over a live Go value: the
// runtime counterpart of the deep-readonly shape transform. Deep makes a
// detached copy of the input at every nesting depth, and every accessor
// hands out fresh copies, so neither the original owner nor any reader can
// mutate what another reader observes. Callable values are leaves: they
// pass through unrecursed and uncopied, matching the shape-level rule.
package freeze

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnfreezable is returned for values that cannot be detached from
// their owner: channels, unsafe pointers, and cyclic references.
var ErrUnfreezable = errors.New("freeze: value cannot be frozen")

// Value is an immutable view over a frozen value tree.
type Value struct {
	root any
}

// Deep freezes v: the result holds a deep copy detached from v, with
// maps, slices, arrays, pointers, and exported struct fields copied
// recursively. Funcs are kept as-is. Unexported struct fields travel with
// the shallow struct copy. Cyclic values are rejected.
func Deep(v any) (*Value, error) {
	cp, err := deepCopy(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	return &Value{root: cp}, nil
}

// Interface returns a fresh deep copy of the frozen tree. Mutating the
// returned value never affects the frozen view or other readers.
func (v *Value) Interface() any {
	cp, err := deepCopy(reflect.ValueOf(v.root))
	if err != nil {
		// the tree was copyable when frozen, so it still is
		panic("freeze: " + err.Error())
	}

	return cp
}

// Get resolves a dotted path (map keys and exported struct field names)
// and returns a fresh copy of the value there. Array and slice nodes are
// leaves: paths do not index into them.
func (v *Value) Get(path string) (any, bool) {
	cur := v.root

	if path != "" {
		for _, seg := range strings.Split(path, ".") {
			next, ok := step(cur, seg)
			if !ok {
				return nil, false
			}

			cur = next
		}
	}

	cp, err := deepCopy(reflect.ValueOf(cur))
	if err != nil {
		return nil, false
	}

	return cp, true
}

func step(cur any, key string) (any, bool) {
	rv := reflect.ValueOf(cur)

	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}

		return mv.Interface(), true

	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}

		return fv.Interface(), true

	default:
		return nil, false
	}
}

func deepCopy(rv reflect.Value) (any, error) {
	c := &copier{visiting: make(map[visit]bool)}

	return c.copy(rv)
}

// visit identifies a reference currently being copied. The type is part of
// the key since a pointer and its pointee can share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// copier tracks the references on the current copy path so cyclic values
// are rejected instead of recursing forever.
type copier struct {
	visiting map[visit]bool
}

func (c *copier) copy(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if !rv.IsNil() {
			key := visit{ptr: rv.Pointer(), typ: rv.Type()}
			if c.visiting[key] {
				return nil, fmt.Errorf("%w: cyclic reference through %s", ErrUnfreezable, rv.Type())
			}

			c.visiting[key] = true
			defer delete(c.visiting, key)
		}
	}

	switch rv.Kind() {
	case reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %s", ErrUnfreezable, rv.Type())

	case reflect.Func:
		// callables are leaves, shared as-is
		return rv.Interface(), nil

	case reflect.Ptr:
		if rv.IsNil() {
			return rv.Interface(), nil
		}

		inner, err := c.copy(rv.Elem())
		if err != nil {
			return nil, err
		}

		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(reflect.ValueOf(inner).Convert(rv.Type().Elem()))

		return out.Interface(), nil

	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}

		return c.copy(rv.Elem())

	case reflect.Slice:
		if rv.IsNil() {
			return rv.Interface(), nil
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		if err := c.copyInto(out, rv); err != nil {
			return nil, err
		}

		return out.Interface(), nil

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		if err := c.copyInto(out, rv); err != nil {
			return nil, err
		}

		return out.Interface(), nil

	case reflect.Map:
		if rv.IsNil() {
			return rv.Interface(), nil
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			cv, err := c.copy(iter.Value())
			if err != nil {
				return nil, err
			}

			out.SetMapIndex(iter.Key(), toValue(cv, rv.Type().Elem()))
		}

		return out.Interface(), nil

	case reflect.Struct:
		// shallow copy first so unexported fields carry over, then
		// replace exported fields with detached copies
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)

		for i := 0; i < rv.NumField(); i++ {
			if !rv.Type().Field(i).IsExported() {
				continue
			}

			cv, err := c.copy(rv.Field(i))
			if err != nil {
				return nil, err
			}

			out.Field(i).Set(toValue(cv, rv.Field(i).Type()))
		}

		return out.Interface(), nil

	default:
		return rv.Interface(), nil
	}
}

func (c *copier) copyInto(dst, src reflect.Value) error {
	for i := 0; i < src.Len(); i++ {
		cv, err := c.copy(src.Index(i))
		if err != nil {
			return err
		}

		dst.Index(i).Set(toValue(cv, src.Type().Elem()))
	}

	return nil
}

// toValue wraps a copied any back into a reflect.Value of the wanted
// type, preserving typed nils and nil interfaces.
func toValue(v any, want reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(want)
	}

	rv := reflect.ValueOf(v)
	if rv.Type() != want {
		return rv.Convert(want)
	}

	return rv
}
