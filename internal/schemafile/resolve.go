package schemafile

import (
	"fmt"

	"shapekit/internal/suggest"
	"shapekit/shape"
)

// Resolve inlines every named reference and returns the resolved shapes.
// References may point forward or backward within the document; cycles
// are rejected since shapes are finite trees.
func (d *Document) Resolve() (map[string]*shape.Shape, error) {
	r := &resolver{
		defs:     d.defs,
		done:     make(map[string]*shape.Shape, len(d.defs)),
		visiting: make(map[string]bool),
	}

	for _, name := range d.names {
		if _, err := r.named(name); err != nil {
			return nil, err
		}
	}

	return r.done, nil
}

// ResolveShape resolves a single named shape from the document.
func (d *Document) ResolveShape(name string) (*shape.Shape, error) {
	r := &resolver{
		defs:     d.defs,
		done:     make(map[string]*shape.Shape),
		visiting: make(map[string]bool),
	}

	return r.named(name)
}

type resolver struct {
	defs     map[string]*expr
	done     map[string]*shape.Shape
	visiting map[string]bool
}

func (r *resolver) defined() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}

	return names
}

func (r *resolver) named(name string) (*shape.Shape, error) {
	if s, ok := r.done[name]; ok {
		return s, nil
	}

	e, ok := r.defs[name]
	if !ok {
		if hint := suggest.Closest(name, r.defined()); hint != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRef, name, hint)
		}

		return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
	}

	if r.visiting[name] {
		return nil, fmt.Errorf("%w: through %q", ErrCyclicRef, name)
	}

	r.visiting[name] = true
	defer delete(r.visiting, name)

	s, err := r.build(e)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", name, err)
	}

	r.done[name] = s

	return s, nil
}

func (r *resolver) build(e *expr) (*shape.Shape, error) {
	switch e.kind {
	case exprNever:
		return shape.Never(), nil

	case exprAny:
		return shape.Any(), nil

	case exprUnknown:
		return shape.Unknown(), nil

	case exprPrim:
		return shape.Prim(e.prim), nil

	case exprRef:
		return r.named(e.ref)

	case exprArray:
		elem, err := r.build(e.elem)
		if err != nil {
			return nil, err
		}

		return shape.ArrayOf(elem), nil

	case exprTuple:
		elems, err := r.buildList(e.elems)
		if err != nil {
			return nil, err
		}

		return shape.TupleOf(elems...), nil

	case exprUnion:
		members, err := r.buildList(e.members)
		if err != nil {
			return nil, err
		}

		return shape.Union(members...), nil

	case exprFunc:
		params, err := r.buildList(e.params)
		if err != nil {
			return nil, err
		}

		var result *shape.Shape
		if e.result != nil {
			result, err = r.build(e.result)
			if err != nil {
				return nil, err
			}
		}

		return shape.FuncOf(params, result), nil

	case exprObject:
		fields := make([]shape.Field, 0, len(e.fields))

		for _, f := range e.fields {
			ft, err := r.build(f.typ)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.name, err)
			}

			fields = append(fields, shape.Field{Name: f.name, Type: ft, Optional: f.optional})
		}

		return shape.Object(fields...), nil

	default:
		return nil, fmt.Errorf("%w: line %d", ErrBadExpr, e.line)
	}
}

func (r *resolver) buildList(list []*expr) ([]*shape.Shape, error) {
	if list == nil {
		return nil, nil
	}

	out := make([]*shape.Shape, len(list))

	for i, e := range list {
		s, err := r.build(e)
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}
