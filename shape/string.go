package shape

import "strings"

// String renders a compact single-line form of the shape, e.g.
// {id: string, tags?: readonly []string, getName: func() string} | never.
func (s *Shape) String() string {
	var sb strings.Builder
	writeShape(&sb, s)

	return sb.String()
}

func writeShape(sb *strings.Builder, s *Shape) {
	if s == nil {
		sb.WriteString("<nil>")
		return
	}

	switch s.Kind {
	case KindNever, KindAny, KindUnknown:
		sb.WriteString(s.Kind.String())

	case KindPrimitive:
		sb.WriteString(s.Prim.Label())

	case KindArray:
		if s.ReadOnly {
			sb.WriteString("readonly ")
		}

		sb.WriteString("[]")
		writeShape(sb, s.Elem)

	case KindTuple:
		sb.WriteByte('(')

		for i, e := range s.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}

			writeShape(sb, e)
		}

		sb.WriteByte(')')

	case KindFunc:
		sb.WriteString("func(")

		for i, p := range s.Params {
			if i > 0 {
				sb.WriteString(", ")
			}

			writeShape(sb, p)
		}

		sb.WriteString(") ")
		writeShape(sb, s.Result)

	case KindObject:
		sb.WriteByte('{')

		for i, f := range s.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(f.Name)

			if f.Optional {
				sb.WriteByte('?')
			}

			sb.WriteString(": ")

			if f.ReadOnly {
				sb.WriteString("readonly ")
			}

			writeShape(sb, f.Type)
		}

		sb.WriteByte('}')

	case KindUnion:
		for i, m := range s.Members {
			if i > 0 {
				sb.WriteString(" | ")
			}

			writeShape(sb, m)
		}

	default:
		sb.WriteString("invalid")
	}
}
