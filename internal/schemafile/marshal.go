package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shapekit/shape"
)

// Marshal serializes resolved shapes back to schema YAML, in the order
// given by names. References are already inlined at this point, so the
// output is fully expanded; readonly markings have no file syntax and are
// dropped.
func Marshal(names []string, shapes map[string]*shape.Shape) ([]byte, error) {
	shapesNode := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range names {
		s, ok := shapes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
		}

		shapesNode.Content = append(shapesNode.Content, scalarNode(name), shapeNode(s))
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode("version"), scalarNode("1"),
			scalarNode("shapes"), shapesNode,
		},
	}

	return yaml.Marshal(root)
}

// WriteFile writes resolved shapes to the given path as schema YAML.
func WriteFile(path string, names []string, shapes map[string]*shape.Shape) error {
	data, err := Marshal(names, shapes)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

func shapeNode(s *shape.Shape) *yaml.Node {
	if s == nil {
		return scalarNode("unknown")
	}

	switch s.Kind {
	case shape.KindNever, shape.KindAny, shape.KindUnknown:
		return scalarNode(s.Kind.String())

	case shape.KindPrimitive:
		return scalarNode(s.Prim.Label())

	case shape.KindArray:
		return oneKeyNode("array", shapeNode(s.Elem))

	case shape.KindTuple:
		return oneKeyNode("tuple", listNode(s.Elems))

	case shape.KindUnion:
		return oneKeyNode("union", listNode(s.Members))

	case shape.KindFunc:
		body := &yaml.Node{Kind: yaml.MappingNode}
		if len(s.Params) > 0 {
			body.Content = append(body.Content, scalarNode("params"), listNode(s.Params))
		}

		body.Content = append(body.Content, scalarNode("result"), shapeNode(s.Result))

		return oneKeyNode("func", body)

	case shape.KindObject:
		body := &yaml.Node{Kind: yaml.MappingNode}

		for _, f := range s.Fields {
			key := f.Name
			if f.Optional {
				key += "?"
			}

			body.Content = append(body.Content, scalarNode(key), shapeNode(f.Type))
		}

		return oneKeyNode("object", body)

	default:
		return scalarNode("never")
	}
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func oneKeyNode(key string, body *yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{scalarNode(key), body}}
}

func listNode(list []*shape.Shape) *yaml.Node {
	out := &yaml.Node{Kind: yaml.SequenceNode}

	for _, s := range list {
		out.Content = append(out.Content, shapeNode(s))
	}

	return out
}
