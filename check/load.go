package check

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadValue reads a JSON or JSONC data file and decodes it into the
// map[string]any / []any / scalar representation the checker walks.
// Comments and trailing commas are stripped before decoding, so hand-kept
// fixture files may be annotated.
func LoadValue(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var v any
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}

	return v, nil
}
