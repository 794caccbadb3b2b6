package shape

// Equal reports structural equality of two shapes. Field order, names,
// optional and readonly flags all participate for objects; tuple slots and
// func params are order-sensitive; union members compare as sets.
func Equal(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNever, KindAny, KindUnknown:
		return true

	case KindPrimitive:
		return a.Prim == b.Prim

	case KindArray:
		return a.ReadOnly == b.ReadOnly && Equal(a.Elem, b.Elem)

	case KindTuple:
		return equalSlices(a.Elems, b.Elems)

	case KindFunc:
		return equalSlices(a.Params, b.Params) && Equal(a.Result, b.Result)

	case KindObject:
		if len(a.Fields) != len(b.Fields) {
			return false
		}

		for i, fa := range a.Fields {
			fb := b.Fields[i]
			if fa.Name != fb.Name || fa.Optional != fb.Optional || fa.ReadOnly != fb.ReadOnly {
				return false
			}

			if !Equal(fa.Type, fb.Type) {
				return false
			}
		}

		return true

	case KindUnion:
		// Members are deduplicated by the Union constructor, so a
		// one-directional containment check with equal lengths suffices.
		if len(a.Members) != len(b.Members) {
			return false
		}

		for _, ma := range a.Members {
			found := false

			for _, mb := range b.Members {
				if Equal(ma, mb) {
					found = true
					break
				}
			}

			if !found {
				return false
			}
		}

		return true

	default:
		return false
	}
}

func equalSlices(a, b []*Shape) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
