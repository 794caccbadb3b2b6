package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapekit/shape"
	"shapekit/transform"
)

func TestArgs(t *testing.T) {
	t.Run("preserves parameter order and types", func(t *testing.T) {
		fn := shape.FuncOf([]*shape.Shape{str(), num(), boo()}, str())

		got := transform.Args(fn)
		require.Equal(t, shape.KindTuple, got.Kind)
		require.Len(t, got.Elems, 3)
		assert.True(t, shape.Equal(str(), got.Elems[0]))
		assert.True(t, shape.Equal(num(), got.Elems[1]))
		assert.True(t, shape.Equal(boo(), got.Elems[2]))
	})

	t.Run("zero parameters yield the empty tuple", func(t *testing.T) {
		fn := shape.FuncOf(nil, str())

		got := transform.Args(fn)
		require.Equal(t, shape.KindTuple, got.Kind)
		assert.Empty(t, got.Elems)
		assert.False(t, transform.IsNever(got), "empty tuple is a valid result, not a rejection")
	})

	t.Run("non-callable yields never", func(t *testing.T) {
		assert.True(t, transform.IsNever(transform.Args(str())))
		assert.True(t, transform.IsNever(transform.Args(complexObject())))
		assert.True(t, transform.IsNever(transform.Args(nil)))
	})
}

func TestReturnType(t *testing.T) {
	t.Run("callable yields its result shape", func(t *testing.T) {
		fn := shape.FuncOf([]*shape.Shape{str()}, boo())
		assert.True(t, shape.Equal(boo(), transform.ReturnType(fn)))
	})

	t.Run("nil result defaults to unknown", func(t *testing.T) {
		fn := shape.FuncOf(nil, nil)
		assert.True(t, transform.IsUnknown(transform.ReturnType(fn)))
	})

	t.Run("non-callable yields never", func(t *testing.T) {
		assert.True(t, transform.IsNever(transform.ReturnType(str())))
		assert.True(t, transform.IsNever(transform.ReturnType(nil)))
	})
}
