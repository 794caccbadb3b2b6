package transform

import (
	"sort"

	"shapekit/shape"
)

// Paths enumerates every valid field-access path of an object shape as
// dotted strings, sorted lexicographically. Nested objects contribute
// their own key plus "key.subpath" for each of their own paths. Array-,
// tuple- and union-valued fields are leaves: they contribute only their
// own key, no indexing or further dotting. Callable-valued fields
// contribute nothing. Non-object input yields no paths.
func Paths(s *shape.Shape) []string {
	out := collectPaths(s)
	sort.Strings(out)

	return out
}

func collectPaths(s *shape.Shape) []string {
	if s == nil || s.Kind != shape.KindObject {
		return nil
	}

	var out []string

	for _, f := range s.Fields {
		if f.Type != nil && f.Type.Kind == shape.KindFunc {
			continue
		}

		out = append(out, f.Name)

		if f.Type != nil && f.Type.Kind == shape.KindObject {
			for _, sub := range collectPaths(f.Type) {
				out = append(out, f.Name+"."+sub)
			}
		}
	}

	return out
}
