package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a schema file. Files ending in .json or
// .jsonc are stripped of comments and trailing commas first; everything
// else is treated as YAML (of which JSON is a subset anyway).
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	return Parse(data)
}

// Parse parses schema data into a Document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBadExpr)
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrBadExpr)
	}

	doc := &Document{
		Version: "1",
		defs:    make(map[string]*expr),
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i].Value
		val := top.Content[i+1]

		switch key {
		case "version":
			doc.Version = val.Value
		case "shapes":
			if err := parseShapes(doc, val); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown document key %q", ErrBadExpr, top.Content[i].Line, key)
		}
	}

	return doc, nil
}

func parseShapes(doc *Document, n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: shapes must be a mapping", ErrBadExpr, n.Line)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		if name == "" {
			return fmt.Errorf("%w: line %d: empty shape name", ErrBadExpr, n.Content[i].Line)
		}

		if _, dup := doc.defs[name]; dup {
			return fmt.Errorf("%w: line %d: duplicate shape %q", ErrBadExpr, n.Content[i].Line, name)
		}

		e, err := parseExpr(n.Content[i+1])
		if err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}

		doc.names = append(doc.names, name)
		doc.defs[name] = e
	}

	return nil
}
