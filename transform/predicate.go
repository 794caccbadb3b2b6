package transform

import "shapekit/shape"

// IsUnion reports whether s has two or more structurally distinct
// alternatives. The shape.Union constructor flattens and deduplicates
// members, so a surviving KindUnion always has at least two.
func IsUnion(s *shape.Shape) bool {
	return s != nil && s.Kind == shape.KindUnion
}

// IsNever reports whether s is the bottom shape.
func IsNever(s *shape.Shape) bool {
	return s != nil && s.Kind == shape.KindNever
}

// IsAny reports whether s is the permissive escape-hatch shape.
func IsAny(s *shape.Shape) bool {
	return s != nil && s.Kind == shape.KindAny
}

// IsUnknown reports whether s is the top shape: everything conforms to it
// but, unlike any, nothing may be assumed about it.
func IsUnknown(s *shape.Shape) bool {
	return s != nil && s.Kind == shape.KindUnknown
}
