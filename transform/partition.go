package transform

import "shapekit/shape"

// FunctionFieldNames returns, in declaration order, the names of the
// object's fields whose declared type is callable. Non-object input yields
// no names.
func FunctionFieldNames(s *shape.Shape) []string {
	return fieldNames(s, true)
}

// NonFunctionFieldNames returns, in declaration order, the names of the
// object's fields whose declared type is not callable. Together with
// FunctionFieldNames it partitions the field-name set: no overlap, no
// omission.
func NonFunctionFieldNames(s *shape.Shape) []string {
	return fieldNames(s, false)
}

func fieldNames(s *shape.Shape, callable bool) []string {
	if s == nil || s.Kind != shape.KindObject {
		return nil
	}

	var names []string

	for _, f := range s.Fields {
		if (f.Type != nil && f.Type.Kind == shape.KindFunc) == callable {
			names = append(names, f.Name)
		}
	}

	return names
}

// PickFunctions projects an object shape down to its callable-valued
// fields. Non-object input yields never.
func PickFunctions(s *shape.Shape) *shape.Shape {
	return pick(s, true)
}

// PickNonFunctions projects an object shape down to its non-callable
// fields. Non-object input yields never.
func PickNonFunctions(s *shape.Shape) *shape.Shape {
	return pick(s, false)
}

func pick(s *shape.Shape, callable bool) *shape.Shape {
	if s == nil || s.Kind != shape.KindObject {
		return shape.Never()
	}

	var kept []shape.Field

	for _, f := range s.Fields {
		if (f.Type != nil && f.Type.Kind == shape.KindFunc) != callable {
			continue
		}

		kept = append(kept, shape.Field{
			Name:     f.Name,
			Type:     shape.Clone(f.Type),
			Optional: f.Optional,
			ReadOnly: f.ReadOnly,
		})
	}

	return shape.Object(kept...)
}
