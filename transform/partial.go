package transform

import "shapekit/shape"

// DeepPartial returns a copy of s with every object field at every nesting
// depth marked optional. The same callable passthrough rule as DeepReadonly
// applies: function shapes are leaves.
func DeepPartial(s *shape.Shape) *shape.Shape {
	out := shape.Clone(s)
	markOptional(out)

	return out
}

func markOptional(s *shape.Shape) {
	if s == nil {
		return
	}

	switch s.Kind {
	case shape.KindObject:
		for i := range s.Fields {
			s.Fields[i].Optional = true
			markOptional(s.Fields[i].Type)
		}

	case shape.KindArray:
		markOptional(s.Elem)

	case shape.KindTuple:
		for _, e := range s.Elems {
			markOptional(e)
		}

	case shape.KindUnion:
		for _, m := range s.Members {
			markOptional(m)
		}
	}
}
