package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shapekit/shape"
	"shapekit/transform"
)

func TestFlatten(t *testing.T) {
	t.Run("triply nested array yields the innermost element", func(t *testing.T) {
		nested := shape.ArrayOf(shape.ArrayOf(shape.ArrayOf(num())))
		assert.True(t, shape.Equal(num(), transform.Flatten(nested)))
	})

	t.Run("single layer", func(t *testing.T) {
		assert.True(t, shape.Equal(str(), transform.Flatten(shape.ArrayOf(str()))))
	})

	t.Run("object elements survive unchanged", func(t *testing.T) {
		elem := shape.Object(shape.Field{Name: "title", Type: str()})
		got := transform.Flatten(shape.ArrayOf(shape.ArrayOf(elem)))
		assert.True(t, shape.Equal(elem, got))
	})

	t.Run("non-array returns unchanged", func(t *testing.T) {
		obj := complexObject()
		assert.True(t, shape.Equal(obj, transform.Flatten(obj)))
		assert.True(t, shape.Equal(str(), transform.Flatten(str())))
	})

	t.Run("result is detached from input", func(t *testing.T) {
		elem := shape.Object(shape.Field{Name: "title", Type: str()})
		in := shape.ArrayOf(elem)

		got := transform.Flatten(in)
		got.Fields[0].Optional = true
		assert.False(t, elem.Fields[0].Optional)
	})
}
