package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shapekit/internal/suggest"
)

func TestClosest(t *testing.T) {
	candidates := []string{"User", "Settings", "Feed"}

	assert.Equal(t, "User", suggest.Closest("Usr", candidates))
	assert.Equal(t, "Settings", suggest.Closest("settings", candidates))
	assert.Equal(t, "Feed", suggest.Closest("Feeed", candidates))
}

func TestClosestNoMatch(t *testing.T) {
	candidates := []string{"User", "Settings"}

	assert.Empty(t, suggest.Closest("Wombat", candidates))
	assert.Empty(t, suggest.Closest("User", nil))
}
