// Package check validates decoded JSON-style values (map[string]any,
// []any, scalars) against a shape descriptor. Optional fields may be
// absent, so a value can be checked against a DeepPartial shape to accept
// sparse input. Findings are reported as diagnostics with dotted field
// paths rather than a single opaque error.
package check

import (
	"fmt"
	"math"
	"time"

	"shapekit/internal/diagnostic"
	"shapekit/primitive"
	"shapekit/shape"
)

// Diagnostic codes emitted by this package.
const (
	CodeTypeMismatch     = "type-mismatch"
	CodeMissingField     = "missing-field"
	CodeUnexpectedField  = "unexpected-field"
	CodeNeverTyped       = "never-typed"
	CodeUncheckableField = "uncheckable-field"
	CodeNoUnionMatch     = "no-union-match"
	CodeLengthMismatch   = "length-mismatch"
)

// Value checks v against s and returns the collected diagnostics.
func Value(v any, s *shape.Shape) *diagnostic.Diagnostics {
	return Named("", v, s)
}

// Named is Value with a shape name attached to every finding.
func Named(name string, v any, s *shape.Shape) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}
	walk(d, name, "", v, s)

	return d
}

func walk(d *diagnostic.Diagnostics, name, path string, v any, s *shape.Shape) {
	if s == nil {
		d.AddError(CodeTypeMismatch, "no shape to check against", name, path)
		return
	}

	switch s.Kind {
	case shape.KindAny, shape.KindUnknown:
		// everything conforms

	case shape.KindNever:
		d.AddError(CodeNeverTyped, "no value conforms to never", name, path)

	case shape.KindPrimitive:
		if msg := primMismatch(s.Prim, v); msg != "" {
			d.AddError(CodeTypeMismatch, msg, name, path)
		}

	case shape.KindArray:
		list, ok := v.([]any)
		if !ok {
			d.AddError(CodeTypeMismatch, fmt.Sprintf("want %s, got %T", s, v), name, path)
			return
		}

		for i, elem := range list {
			walk(d, name, joinPath(path, fmt.Sprintf("[%d]", i)), elem, s.Elem)
		}

	case shape.KindTuple:
		list, ok := v.([]any)
		if !ok {
			d.AddError(CodeTypeMismatch, fmt.Sprintf("want %s, got %T", s, v), name, path)
			return
		}

		if len(list) != len(s.Elems) {
			d.AddError(CodeLengthMismatch,
				fmt.Sprintf("want %d elements, got %d", len(s.Elems), len(list)), name, path)
			return
		}

		for i, elem := range list {
			walk(d, name, joinPath(path, fmt.Sprintf("[%d]", i)), elem, s.Elems[i])
		}

	case shape.KindObject:
		walkObject(d, name, path, v, s)

	case shape.KindFunc:
		d.AddError(CodeUncheckableField, "callable shapes cannot be checked against data", name, path)

	case shape.KindUnion:
		for _, m := range s.Members {
			var scratch diagnostic.Diagnostics

			walk(&scratch, name, path, v, m)
			if scratch.IsValid() {
				return
			}
		}

		d.AddError(CodeNoUnionMatch,
			fmt.Sprintf("value matches none of %d union members", len(s.Members)), name, path)
	}
}

func walkObject(d *diagnostic.Diagnostics, name, path string, v any, s *shape.Shape) {
	obj, ok := v.(map[string]any)
	if !ok {
		d.AddError(CodeTypeMismatch, fmt.Sprintf("want object, got %T", v), name, path)
		return
	}

	declared := make(map[string]struct{}, len(s.Fields))

	for _, f := range s.Fields {
		declared[f.Name] = struct{}{}
		fieldPath := joinPath(path, f.Name)

		val, present := obj[f.Name]

		// Callable fields have no data representation: absent is fine
		// whatever the optionality, present is always wrong.
		if f.Type != nil && f.Type.Kind == shape.KindFunc {
			if present {
				d.AddError(CodeUncheckableField, "callable field present in data", name, fieldPath)
			}

			continue
		}

		if !present {
			if !f.Optional {
				d.AddError(CodeMissingField, "required field absent", name, fieldPath)
			}

			continue
		}

		walk(d, name, fieldPath, val, f.Type)
	}

	for key := range obj {
		if _, ok := declared[key]; !ok {
			d.AddWarning(CodeUnexpectedField, "field not declared by shape", name, joinPath(path, key))
		}
	}
}

// primMismatch returns a description of why v does not conform to kind k,
// or "" when it does. JSON numbers arrive as float64; integer kinds accept
// them only when integral (and non-negative for unsigned kinds).
func primMismatch(k primitive.KindEnum, v any) string {
	switch k {
	case primitive.KindString:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("want string, got %T", v)
		}

	case primitive.KindBool:
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("want bool, got %T", v)
		}

	case primitive.KindTime:
		str, ok := v.(string)
		if !ok {
			return fmt.Sprintf("want RFC 3339 string, got %T", v)
		}

		if _, err := time.Parse(time.RFC3339Nano, str); err != nil {
			return fmt.Sprintf("invalid timestamp %q", str)
		}

	case primitive.KindDuration:
		str, ok := v.(string)
		if !ok {
			return fmt.Sprintf("want duration string, got %T", v)
		}

		if _, err := time.ParseDuration(str); err != nil {
			return fmt.Sprintf("invalid duration %q", str)
		}

	case primitive.KindEnumLike:
		switch v.(type) {
		case string, float64, int:
		default:
			return fmt.Sprintf("want string or integer, got %T", v)
		}

	default:
		if !k.IsNumber() {
			return fmt.Sprintf("unchecked primitive kind %s", k.Label())
		}

		f, ok := asFloat(v)
		if !ok {
			return fmt.Sprintf("want %s, got %T", k.Label(), v)
		}

		if k.IsInteger() && math.Trunc(f) != f {
			return fmt.Sprintf("want %s, got non-integral number %v", k.Label(), f)
		}

		if k.IsUnsigned() && f < 0 {
			return fmt.Sprintf("want %s, got negative number %v", k.Label(), f)
		}
	}

	return ""
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}

	if len(key) > 0 && key[0] == '[' {
		return base + key
	}

	return base + "." + key
}
