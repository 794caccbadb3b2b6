package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapekit/shape"
	"shapekit/transform"
)

func TestDeepPartial(t *testing.T) {
	t.Run("marks every depth optional", func(t *testing.T) {
		got := transform.DeepPartial(complexObject())

		for _, f := range got.Fields {
			assert.True(t, f.Optional, "top-level field %q", f.Name)
		}

		user, ok := got.FieldByName("user")
		require.True(t, ok)
		profile, ok := user.Type.FieldByName("profile")
		require.True(t, ok)
		assert.True(t, profile.Optional)

		settings, ok := profile.Type.FieldByName("settings")
		require.True(t, ok)
		theme, ok := settings.Type.FieldByName("theme")
		require.True(t, ok)
		assert.True(t, theme.Optional)
	})

	t.Run("recurses through array elements", func(t *testing.T) {
		got := transform.DeepPartial(complexObject())

		posts, ok := got.FieldByName("posts")
		require.True(t, ok)
		title, ok := posts.Type.Elem.FieldByName("title")
		require.True(t, ok)
		assert.True(t, title.Optional)
	})

	t.Run("callable fields are marked but not recursed into", func(t *testing.T) {
		withArgs := shape.Object(
			shape.Field{Name: "handler", Type: shape.FuncOf(
				[]*shape.Shape{shape.Object(shape.Field{Name: "payload", Type: str()})},
				str(),
			)},
		)

		got := transform.DeepPartial(withArgs)

		handler, ok := got.FieldByName("handler")
		require.True(t, ok)
		assert.True(t, handler.Optional)
		assert.False(t, handler.Type.Params[0].Fields[0].Optional)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		orig := complexObject()
		_ = transform.DeepPartial(orig)

		for _, f := range orig.Fields {
			assert.False(t, f.Optional)
		}
	})
}
