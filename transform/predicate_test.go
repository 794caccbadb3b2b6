package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shapekit/shape"
	"shapekit/transform"
)

func TestIsUnion(t *testing.T) {
	assert.True(t, transform.IsUnion(shape.Union(str(), num())))
	assert.True(t, transform.IsUnion(shape.Union(str(), num(), boo())))

	assert.False(t, transform.IsUnion(str()), "single shape is not a union")
	assert.False(t, transform.IsUnion(shape.Union(str(), shape.Prim(str().Prim))),
		"duplicate members collapse to a single shape")
	assert.False(t, transform.IsUnion(complexObject()))
	assert.False(t, transform.IsUnion(nil))
}

func TestSentinelPredicates(t *testing.T) {
	assert.True(t, transform.IsNever(shape.Never()))
	assert.False(t, transform.IsNever(shape.Any()))
	assert.False(t, transform.IsNever(nil))

	assert.True(t, transform.IsAny(shape.Any()))
	assert.False(t, transform.IsAny(shape.Unknown()), "unknown is not the escape hatch")

	assert.True(t, transform.IsUnknown(shape.Unknown()))
	assert.False(t, transform.IsUnknown(shape.Any()))
	assert.False(t, transform.IsUnknown(str()))
}
