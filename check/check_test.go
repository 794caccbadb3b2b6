package check_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapekit/check"
	"shapekit/primitive"
	"shapekit/shape"
	"shapekit/transform"
)

func userShape() *shape.Shape {
	return shape.Object(
		shape.Field{Name: "id", Type: shape.Prim(primitive.KindInt)},
		shape.Field{Name: "name", Type: shape.Prim(primitive.KindString)},
		shape.Field{Name: "tags", Type: shape.ArrayOf(shape.Prim(primitive.KindString)), Optional: true},
		shape.Field{Name: "profile", Type: shape.Object(
			shape.Field{Name: "theme", Type: shape.Prim(primitive.KindString)},
		)},
		shape.Field{Name: "getFullName", Type: shape.FuncOf(nil, shape.Prim(primitive.KindString))},
	)
}

func decode(t *testing.T, data string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(data), &v))

	return v
}

func TestValueConforming(t *testing.T) {
	v := decode(t, `{
		"id": 7,
		"name": "ada",
		"tags": ["x", "y"],
		"profile": {"theme": "dark"}
	}`)

	d := check.Value(v, userShape())
	assert.True(t, d.IsValid(), "diagnostics: %v", d.Errors)
	assert.Empty(t, d.Warnings)
}

func TestValueFindings(t *testing.T) {
	t.Run("type mismatch carries the dotted path", func(t *testing.T) {
		v := decode(t, `{"id": 7, "name": "ada", "profile": {"theme": 42}}`)

		d := check.Named("User", v, userShape())
		require.True(t, d.HasErrors())
		assert.Equal(t, check.CodeTypeMismatch, d.Errors[0].Code)
		assert.Equal(t, "profile.theme", d.Errors[0].FieldPath)
		assert.Equal(t, "User", d.Errors[0].Shape)
	})

	t.Run("required field absent", func(t *testing.T) {
		v := decode(t, `{"id": 7, "profile": {"theme": "dark"}}`)

		d := check.Value(v, userShape())
		require.Len(t, d.Errors, 1)
		assert.Equal(t, check.CodeMissingField, d.Errors[0].Code)
		assert.Equal(t, "name", d.Errors[0].FieldPath)
	})

	t.Run("optional field absent is fine", func(t *testing.T) {
		v := decode(t, `{"id": 7, "name": "ada", "profile": {"theme": "dark"}}`)
		assert.True(t, check.Value(v, userShape()).IsValid())
	})

	t.Run("undeclared field warns", func(t *testing.T) {
		v := decode(t, `{"id": 7, "name": "ada", "profile": {"theme": "dark"}, "extra": 1}`)

		d := check.Value(v, userShape())
		assert.True(t, d.IsValid())
		require.Len(t, d.Warnings, 1)
		assert.Equal(t, check.CodeUnexpectedField, d.Warnings[0].Code)
		assert.Equal(t, "extra", d.Warnings[0].FieldPath)
	})

	t.Run("callable field present in data is an error", func(t *testing.T) {
		v := decode(t, `{"id": 7, "name": "ada", "profile": {"theme": "dark"}, "getFullName": "nope"}`)

		d := check.Value(v, userShape())
		require.Len(t, d.Errors, 1)
		assert.Equal(t, check.CodeUncheckableField, d.Errors[0].Code)
	})

	t.Run("non-integral number for integer kind", func(t *testing.T) {
		v := decode(t, `{"id": 7.5, "name": "ada", "profile": {"theme": "dark"}}`)

		d := check.Value(v, userShape())
		require.Len(t, d.Errors, 1)
		assert.Equal(t, "id", d.Errors[0].FieldPath)
	})

	t.Run("array element paths are indexed", func(t *testing.T) {
		v := decode(t, `{"id": 7, "name": "ada", "tags": ["ok", 3], "profile": {"theme": "dark"}}`)

		d := check.Value(v, userShape())
		require.Len(t, d.Errors, 1)
		assert.Equal(t, "tags[1]", d.Errors[0].FieldPath)
	})
}

func TestDeepPartialAcceptsSparseValues(t *testing.T) {
	sparse := decode(t, `{"profile": {}}`)

	strict := check.Value(sparse, userShape())
	assert.True(t, strict.HasErrors(), "strict shape rejects sparse value")

	relaxed := check.Value(sparse, transform.DeepPartial(userShape()))
	assert.True(t, relaxed.IsValid(), "diagnostics: %v", relaxed.Errors)
}

func TestSentinels(t *testing.T) {
	t.Run("any and unknown accept everything", func(t *testing.T) {
		assert.True(t, check.Value(decode(t, `{"x": [1, "two"]}`), shape.Any()).IsValid())
		assert.True(t, check.Value(nil, shape.Unknown()).IsValid())
	})

	t.Run("never accepts nothing", func(t *testing.T) {
		d := check.Value("anything", shape.Never())
		require.Len(t, d.Errors, 1)
		assert.Equal(t, check.CodeNeverTyped, d.Errors[0].Code)
	})
}

func TestUnion(t *testing.T) {
	u := shape.Union(
		shape.Prim(primitive.KindString),
		shape.Object(shape.Field{Name: "id", Type: shape.Prim(primitive.KindInt)}),
	)

	assert.True(t, check.Value("hello", u).IsValid())
	assert.True(t, check.Value(decode(t, `{"id": 3}`), u).IsValid())

	d := check.Value(true, u)
	require.Len(t, d.Errors, 1)
	assert.Equal(t, check.CodeNoUnionMatch, d.Errors[0].Code)
}

func TestTupleAndScalars(t *testing.T) {
	tup := shape.TupleOf(shape.Prim(primitive.KindString), shape.Prim(primitive.KindFloat64))

	assert.True(t, check.Value(decode(t, `["a", 1.5]`), tup).IsValid())
	assert.True(t, check.Value(decode(t, `["a"]`), tup).HasErrors())
	assert.True(t, check.Value(decode(t, `["a", "b"]`), tup).HasErrors())

	assert.True(t, check.Value("2024-01-02T15:04:05Z", shape.Prim(primitive.KindTime)).IsValid())
	assert.True(t, check.Value("not a time", shape.Prim(primitive.KindTime)).HasErrors())
	assert.True(t, check.Value("2h45m", shape.Prim(primitive.KindDuration)).IsValid())
	assert.True(t, check.Value("soon", shape.Prim(primitive.KindDuration)).HasErrors())
	assert.True(t, check.Value(float64(-1), shape.Prim(primitive.KindUint8)).HasErrors())
}

func TestInvalidPrimitiveKind(t *testing.T) {
	// a zero KindEnum never comes out of the schema loader, but a
	// hand-built shape must fail the check rather than slip through
	d := check.Value(float64(1), shape.Prim(0))
	require.Len(t, d.Errors, 1)
	assert.Contains(t, d.Errors[0].Message, "unchecked primitive kind")
}
