package transform

import "shapekit/shape"

// DeepReadonly returns a copy of s with every object field and every array
// marked as not reassignable, at every nesting depth. Callable-valued
// shapes pass through untouched: a function is a leaf, its params and
// result keep their declared shapes.
func DeepReadonly(s *shape.Shape) *shape.Shape {
	out := shape.Clone(s)
	markReadonly(out)

	return out
}

func markReadonly(s *shape.Shape) {
	if s == nil {
		return
	}

	switch s.Kind {
	case shape.KindObject:
		for i := range s.Fields {
			s.Fields[i].ReadOnly = true
			markReadonly(s.Fields[i].Type)
		}

	case shape.KindArray:
		s.ReadOnly = true
		markReadonly(s.Elem)

	case shape.KindTuple:
		for _, e := range s.Elems {
			markReadonly(e)
		}

	case shape.KindUnion:
		for _, m := range s.Members {
			markReadonly(m)
		}
	}

	// KindFunc, KindPrimitive and the sentinels are recursion leaves.
}
