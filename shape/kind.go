package shape

// Kind discriminates the variants of a Shape.
type Kind int

const (
	// KindNever is the bottom type: no value inhabits it. Transforms
	// produce it to signal "no valid result" (a non-callable passed to
	// Args, a merge conflict, ...).
	KindNever Kind = iota
	// KindAny is the permissive escape-hatch type: every value conforms
	// and no structure is known.
	KindAny
	// KindUnknown is the top type: every value conforms but nothing may
	// be assumed about it.
	KindUnknown
	// KindPrimitive is a scalar leaf described by a primitive.KindEnum.
	KindPrimitive
	// KindObject is a set of named fields in declaration order.
	KindObject
	// KindArray is a homogeneous sequence of arbitrary length.
	KindArray
	// KindTuple is a fixed-length ordered sequence, one shape per slot.
	KindTuple
	// KindFunc is a callable with ordered parameters and a result.
	KindFunc
	// KindUnion is two or more alternative shapes.
	KindUnion
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNever:
		return "never"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindPrimitive:
		return "primitive"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindFunc:
		return "func"
	case KindUnion:
		return "union"
	default:
		return "invalid"
	}
}
