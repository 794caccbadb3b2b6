package transform

import (
	"errors"
	"fmt"

	"shapekit/shape"
)

// ConflictPolicy decides what Merge does when two union members declare a
// same-named field with structurally different types.
type ConflictPolicy int

const (
	// ConflictNever collapses the conflicting field's type to never: a
	// detectable-but-unresolved state, not an error. Callers must treat a
	// never-typed field as "conflict, pick one source explicitly".
	ConflictNever ConflictPolicy = iota
	// ConflictPreferFirst keeps the type declared by the first member.
	ConflictPreferFirst
	// ConflictError makes Merge fail, naming the field and both types.
	ConflictError
)

// String returns the policy name as spelled on the CLI.
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictNever:
		return "never"
	case ConflictPreferFirst:
		return "first"
	case ConflictError:
		return "error"
	default:
		return "invalid"
	}
}

// PolicyFromName parses a CLI policy name. Returns an error for unknown
// names so flag handling can reject them early.
func PolicyFromName(name string) (ConflictPolicy, error) {
	switch name {
	case "never":
		return ConflictNever, nil
	case "first":
		return ConflictPreferFirst, nil
	case "error":
		return ConflictError, nil
	default:
		return 0, fmt.Errorf("transform: unknown conflict policy %q (want never, first, or error)", name)
	}
}

// ErrNonObjectMember is returned by Merge under ConflictError when a union
// member is not an object shape and therefore has no fields to merge.
var ErrNonObjectMember = errors.New("transform: union member is not an object")

// Merge computes the structural intersection of a union of object shapes:
// a single object carrying every field of every member simultaneously.
// Fields keep the declaration order of their first appearance across
// members. A field is optional in the result only when it is optional in
// every member that declares it; it is readonly when any member declares
// it readonly.
//
// A non-union input is returned unchanged (as a copy). A union containing
// a non-object member yields never under ConflictNever/ConflictPreferFirst
// and ErrNonObjectMember under ConflictError.
func Merge(s *shape.Shape, policy ConflictPolicy) (*shape.Shape, error) {
	if s == nil {
		return shape.Never(), nil
	}

	if s.Kind != shape.KindUnion {
		return shape.Clone(s), nil
	}

	for _, m := range s.Members {
		if m.Kind != shape.KindObject {
			if policy == ConflictError {
				return nil, fmt.Errorf("%w: %s", ErrNonObjectMember, m)
			}

			return shape.Never(), nil
		}
	}

	var merged []shape.Field
	index := make(map[string]int)

	for _, m := range s.Members {
		for _, f := range m.Fields {
			i, seen := index[f.Name]
			if !seen {
				index[f.Name] = len(merged)
				merged = append(merged, shape.Field{
					Name:     f.Name,
					Type:     shape.Clone(f.Type),
					Optional: f.Optional,
					ReadOnly: f.ReadOnly,
				})

				continue
			}

			prev := &merged[i]
			prev.Optional = prev.Optional && f.Optional
			prev.ReadOnly = prev.ReadOnly || f.ReadOnly

			if shape.Equal(prev.Type, f.Type) {
				continue
			}

			// Same name, structurally different types.
			switch policy {
			case ConflictPreferFirst:
				// keep prev.Type
			case ConflictError:
				return nil, fmt.Errorf("transform: conflicting types for field %q: %s vs %s",
					f.Name, prev.Type, f.Type)
			default:
				prev.Type = shape.Never()
			}
		}
	}

	return shape.Object(merged...), nil
}
