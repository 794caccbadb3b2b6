package transform

import "shapekit/shape"

// Flatten unwraps nested array layers down to the innermost non-array
// element shape, one layer per step, at arbitrary depth. A non-array input
// is returned unchanged (as a copy).
func Flatten(s *shape.Shape) *shape.Shape {
	for s != nil && s.Kind == shape.KindArray {
		s = s.Elem
	}

	return shape.Clone(s)
}
