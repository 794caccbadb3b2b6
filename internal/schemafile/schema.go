package schemafile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"shapekit/primitive"
)

var (
	// ErrBadExpr is returned when a shape expression is malformed.
	ErrBadExpr = errors.New("schemafile: invalid shape expression")
	// ErrUnknownRef is returned when an expression references a shape the
	// document does not declare.
	ErrUnknownRef = errors.New("schemafile: unknown shape reference")
	// ErrCyclicRef is returned when named shapes reference each other in
	// a cycle.
	ErrCyclicRef = errors.New("schemafile: cyclic shape reference")
)

// Document is a parsed schema file: named shape expressions in
// declaration order, not yet resolved.
type Document struct {
	// Version of the schema format (for future compatibility).
	Version string

	names []string
	defs  map[string]*expr
}

// Names returns the declared shape names in declaration order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

// exprKind discriminates the parsed shape expression forms.
type exprKind int

const (
	exprInvalid exprKind = iota
	exprNever
	exprAny
	exprUnknown
	exprPrim
	exprRef
	exprObject
	exprArray
	exprTuple
	exprFunc
	exprUnion
)

// expr is one parsed shape expression, pre-resolution.
type expr struct {
	kind exprKind

	prim    primitive.KindEnum
	ref     string
	fields  []fieldExpr
	elem    *expr
	elems   []*expr
	params  []*expr
	result  *expr
	members []*expr

	line int
}

type fieldExpr struct {
	name     string
	optional bool
	typ      *expr
}

// parseExpr turns one YAML node into a shape expression. Scalars are
// primitives, sentinels, or references; mappings carry exactly one of the
// structural forms.
func parseExpr(n *yaml.Node) (*expr, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return parseScalarExpr(n)

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("%w: line %d: want exactly one of object/array/tuple/func/union", ErrBadExpr, n.Line)
		}

		form := n.Content[0].Value
		body := n.Content[1]

		switch form {
		case "object":
			return parseObjectExpr(body)
		case "array":
			elem, err := parseExpr(body)
			if err != nil {
				return nil, err
			}

			return &expr{kind: exprArray, elem: elem, line: n.Line}, nil
		case "tuple":
			elems, err := parseExprList(body)
			if err != nil {
				return nil, err
			}

			return &expr{kind: exprTuple, elems: elems, line: n.Line}, nil
		case "union":
			members, err := parseExprList(body)
			if err != nil {
				return nil, err
			}

			if len(members) < 2 {
				return nil, fmt.Errorf("%w: line %d: union needs at least two members", ErrBadExpr, n.Line)
			}

			return &expr{kind: exprUnion, members: members, line: n.Line}, nil
		case "func":
			return parseFuncExpr(body)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown form %q", ErrBadExpr, n.Line, form)
		}

	default:
		return nil, fmt.Errorf("%w: line %d: want scalar or mapping", ErrBadExpr, n.Line)
	}
}

func parseScalarExpr(n *yaml.Node) (*expr, error) {
	name := n.Value

	switch name {
	case "never":
		return &expr{kind: exprNever, line: n.Line}, nil
	case "any":
		return &expr{kind: exprAny, line: n.Line}, nil
	case "unknown":
		return &expr{kind: exprUnknown, line: n.Line}, nil
	}

	if k := primitive.FromName(name); k != 0 {
		return &expr{kind: exprPrim, prim: k, line: n.Line}, nil
	}

	if name == "" {
		return nil, fmt.Errorf("%w: line %d: empty shape expression", ErrBadExpr, n.Line)
	}

	return &expr{kind: exprRef, ref: name, line: n.Line}, nil
}

func parseObjectExpr(n *yaml.Node) (*expr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: object body must be a mapping", ErrBadExpr, n.Line)
	}

	out := &expr{kind: exprObject, line: n.Line}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		optional := strings.HasSuffix(key, "?")
		name := strings.TrimSuffix(key, "?")

		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty field name", ErrBadExpr, n.Content[i].Line)
		}

		typ, err := parseExpr(n.Content[i+1])
		if err != nil {
			return nil, err
		}

		out.fields = append(out.fields, fieldExpr{name: name, optional: optional, typ: typ})
	}

	return out, nil
}

func parseExprList(n *yaml.Node) ([]*expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: want a sequence", ErrBadExpr, n.Line)
	}

	out := make([]*expr, 0, len(n.Content))

	for _, c := range n.Content {
		e, err := parseExpr(c)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// parseFuncExpr parses {params: [...], result: ...}. Both keys are
// optional: no params means a zero-parameter callable, no result means an
// unknown result.
func parseFuncExpr(n *yaml.Node) (*expr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: func body must be a mapping", ErrBadExpr, n.Line)
	}

	out := &expr{kind: exprFunc, line: n.Line}

	for i := 0; i+1 < len(n.Content); i += 2 {
		switch key := n.Content[i].Value; key {
		case "params":
			params, err := parseExprList(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			out.params = params
		case "result":
			result, err := parseExpr(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			out.result = result
		default:
			return nil, fmt.Errorf("%w: line %d: unknown func key %q", ErrBadExpr, n.Content[i].Line, key)
		}
	}

	return out, nil
}
