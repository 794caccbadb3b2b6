package check_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapekit/check"
)

func TestLoadValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.jsonc")

	data := `{
		// annotated fixture
		"id": 7,
		"tags": ["a", "b"],
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	v, err := check.LoadValue(path)
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), obj["id"])
	assert.Len(t, obj["tags"], 2)
}

func TestLoadValueMissingFile(t *testing.T) {
	_, err := check.LoadValue(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
