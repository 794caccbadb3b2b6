// Package reflectshape derives shape descriptors from live Go types.
// Pointers are unwrapped, structs become objects (exported fields in
// declaration order, json tag names honored), funcs become callable shapes
// with their real parameter and result types read off reflect.Type.
package reflectshape

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shapekit/primitive"
	"shapekit/shape"
)

// maxDepth bounds the nesting the walker will follow. Deeply recursive
// generated types blow the stack long before they produce a useful shape.
const maxDepth = 32

var (
	// ErrUnsupported is returned for types with no shape equivalent:
	// maps, channels, non-empty interfaces, and unsafe pointers.
	ErrUnsupported = errors.New("reflectshape: unsupported type")

	// ErrCyclic is returned when a struct type reaches itself through its
	// own fields. Shapes are finite trees; reference cycles cannot be
	// represented.
	ErrCyclic = errors.New("reflectshape: self-referential type")

	// ErrTooDeep is returned when nesting exceeds maxDepth.
	ErrTooDeep = errors.New("reflectshape: nesting too deep")
)

// FromValue derives the shape of v's dynamic type. A nil input has no type
// and yields the unknown shape.
func FromValue(v any) (*shape.Shape, error) {
	if v == nil {
		return shape.Unknown(), nil
	}

	return FromType(reflect.TypeOf(v))
}

// FromType derives the shape of t.
func FromType(t reflect.Type) (*shape.Shape, error) {
	w := &walker{visiting: make(map[reflect.Type]bool)}

	return w.walk(t)
}

type walker struct {
	// visiting tracks struct types on the current walk path to break
	// reference cycles.
	visiting map[reflect.Type]bool
	depth    int
}

func (w *walker) walk(t reflect.Type) (*shape.Shape, error) {
	if t == nil {
		return shape.Unknown(), nil
	}

	if w.depth >= maxDepth {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, t)
	}

	w.depth++
	defer func() { w.depth-- }()

	// unwrap pointer layers down to the base type
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if k := primitive.FromReflectType(t); k != 0 {
		return shape.Prim(k), nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return shape.Unknown(), nil
		}

		return nil, fmt.Errorf("%w: non-empty interface %s", ErrUnsupported, t)

	case reflect.Slice, reflect.Array:
		elem, err := w.walk(t.Elem())
		if err != nil {
			return nil, err
		}

		return shape.ArrayOf(elem), nil

	case reflect.Func:
		return w.walkFunc(t)

	case reflect.Struct:
		return w.walkStruct(t)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
}

func (w *walker) walkFunc(t reflect.Type) (*shape.Shape, error) {
	params := make([]*shape.Shape, t.NumIn())

	for i := range params {
		// a variadic last parameter is already a slice type here
		p, err := w.walk(t.In(i))
		if err != nil {
			return nil, err
		}

		params[i] = p
	}

	var result *shape.Shape

	switch t.NumOut() {
	case 0:
		result = shape.Unknown()
	case 1:
		r, err := w.walk(t.Out(0))
		if err != nil {
			return nil, err
		}

		result = r
	default:
		outs := make([]*shape.Shape, t.NumOut())

		for i := range outs {
			r, err := w.walk(t.Out(i))
			if err != nil {
				return nil, err
			}

			outs[i] = r
		}

		result = shape.TupleOf(outs...)
	}

	return shape.FuncOf(params, result), nil
}

func (w *walker) walkStruct(t reflect.Type) (*shape.Shape, error) {
	if w.visiting[t] {
		return nil, fmt.Errorf("%w: %s", ErrCyclic, t)
	}

	w.visiting[t] = true
	defer delete(w.visiting, t)

	var fields []shape.Field

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, optional, skip := jsonFieldInfo(sf)
		if skip {
			continue
		}

		fs, err := w.walk(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}

		fields = append(fields, shape.Field{
			Name:     name,
			Type:     fs,
			Optional: optional,
		})
	}

	return shape.Object(fields...), nil
}

// jsonFieldInfo resolves the effective field name and optionality from the
// json tag: the tag name wins over the Go name, "-" skips the field, and
// ",omitempty" marks it optional.
func jsonFieldInfo(f reflect.StructField) (name string, optional, skip bool) {
	name = f.Name

	tag := f.Tag.Get("json")
	if tag == "" {
		return name, false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}

	if parts[0] != "" {
		name = parts[0]
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}

	return name, optional, false
}
