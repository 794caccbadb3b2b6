// Package shape defines the shape descriptor: a tagged, immutable
// description of an object-like type (fields, arrays, tuples, callables,
// unions, and the never/any/unknown sentinels). Shape values are built via
// the constructors in this package and never mutated afterwards; every
// transform over shapes returns a fresh value.
package shape

import "shapekit/primitive"

// Shape describes one type. Exactly the fields relevant to Kind are set;
// all others stay zero.
type Shape struct {
	Kind Kind

	// Prim is the scalar kind. Set for KindPrimitive.
	Prim primitive.KindEnum

	// Fields are the named fields in declaration order. Set for KindObject.
	Fields []Field

	// Elem is the element shape. Set for KindArray.
	Elem *Shape

	// ReadOnly marks array elements as not reassignable. Set for KindArray
	// by DeepReadonly; field-level readonly lives on Field.
	ReadOnly bool

	// Elems are the per-slot shapes. Set for KindTuple.
	Elems []*Shape

	// Params and Result describe a callable. Set for KindFunc. Result is
	// never nil for a func shape; a callable without a meaningful result
	// uses Unknown.
	Params []*Shape
	Result *Shape

	// Members are the union alternatives, at least two, normalized.
	// Set for KindUnion.
	Members []*Shape
}

// Field is one named field of an object shape.
type Field struct {
	Name string

	Type *Shape

	// Optional marks a field whose presence is not required.
	Optional bool

	// ReadOnly marks a field as not reassignable.
	ReadOnly bool
}

// Never returns the bottom shape.
func Never() *Shape { return &Shape{Kind: KindNever} }

// Any returns the permissive escape-hatch shape.
func Any() *Shape { return &Shape{Kind: KindAny} }

// Unknown returns the top shape.
func Unknown() *Shape { return &Shape{Kind: KindUnknown} }

// Prim returns a scalar shape of the given primitive kind.
func Prim(kind primitive.KindEnum) *Shape {
	return &Shape{Kind: KindPrimitive, Prim: kind}
}

// Object returns an object shape with the given fields, kept in the order
// given. Field names must be unique; duplicates keep the first occurrence.
func Object(fields ...Field) *Shape {
	seen := make(map[string]struct{}, len(fields))
	kept := make([]Field, 0, len(fields))

	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			continue
		}

		seen[f.Name] = struct{}{}
		kept = append(kept, f)
	}

	return &Shape{Kind: KindObject, Fields: kept}
}

// ArrayOf returns an array shape over elem.
func ArrayOf(elem *Shape) *Shape {
	return &Shape{Kind: KindArray, Elem: elem}
}

// TupleOf returns a fixed-length tuple shape. Zero elems is the empty
// tuple, which is distinct from Never.
func TupleOf(elems ...*Shape) *Shape {
	return &Shape{Kind: KindTuple, Elems: elems}
}

// FuncOf returns a callable shape. A nil result is normalized to Unknown.
func FuncOf(params []*Shape, result *Shape) *Shape {
	if result == nil {
		result = Unknown()
	}

	return &Shape{Kind: KindFunc, Params: params, Result: result}
}

// Union returns the normalized union of members: nested unions are
// flattened, never members dropped, structural duplicates removed (first
// occurrence wins). Zero survivors yield Never, a single survivor yields
// that member itself.
func Union(members ...*Shape) *Shape {
	var flat []*Shape

	var collect func(list []*Shape)
	collect = func(list []*Shape) {
		for _, m := range list {
			if m == nil || m.Kind == KindNever {
				continue
			}

			if m.Kind == KindUnion {
				collect(m.Members)
				continue
			}

			flat = append(flat, m)
		}
	}
	collect(members)

	var unique []*Shape
	for _, m := range flat {
		dup := false

		for _, u := range unique {
			if Equal(m, u) {
				dup = true
				break
			}
		}

		if !dup {
			unique = append(unique, m)
		}
	}

	switch len(unique) {
	case 0:
		return Never()
	case 1:
		return unique[0]
	default:
		return &Shape{Kind: KindUnion, Members: unique}
	}
}

// FieldByName returns the field with the given name and true, or a zero
// Field and false when absent or when s is not an object.
func (s *Shape) FieldByName(name string) (Field, bool) {
	if s == nil || s.Kind != KindObject {
		return Field{}, false
	}

	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Clone returns a deep copy of s. Transforms clone before modifying so
// published shapes stay immutable.
func Clone(s *Shape) *Shape {
	if s == nil {
		return nil
	}

	out := &Shape{
		Kind:     s.Kind,
		Prim:     s.Prim,
		ReadOnly: s.ReadOnly,
		Elem:     Clone(s.Elem),
		Result:   Clone(s.Result),
	}

	if s.Fields != nil {
		out.Fields = make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			out.Fields[i] = Field{
				Name:     f.Name,
				Type:     Clone(f.Type),
				Optional: f.Optional,
				ReadOnly: f.ReadOnly,
			}
		}
	}

	out.Elems = cloneSlice(s.Elems)
	out.Params = cloneSlice(s.Params)
	out.Members = cloneSlice(s.Members)

	return out
}

func cloneSlice(list []*Shape) []*Shape {
	if list == nil {
		return nil
	}

	out := make([]*Shape, len(list))
	for i, s := range list {
		out[i] = Clone(s)
	}

	return out
}
