package transform

import "shapekit/shape"

// Args returns the ordered parameter shapes of a callable as a tuple,
// preserving declaration order. A zero-parameter callable yields the empty
// tuple. Anything that is not a callable yields never, which downstream
// code treats as a rejection signal.
func Args(s *shape.Shape) *shape.Shape {
	if s == nil || s.Kind != shape.KindFunc {
		return shape.Never()
	}

	elems := make([]*shape.Shape, len(s.Params))
	for i, p := range s.Params {
		elems[i] = shape.Clone(p)
	}

	return shape.TupleOf(elems...)
}

// ReturnType returns the result shape of a callable, or never for a
// non-callable input.
func ReturnType(s *shape.Shape) *shape.Shape {
	if s == nil || s.Kind != shape.KindFunc {
		return shape.Never()
	}

	return shape.Clone(s.Result)
}
