package transform_test

import (
	"shapekit/primitive"
	"shapekit/shape"
)

func str() *shape.Shape  { return shape.Prim(primitive.KindString) }
func num() *shape.Shape  { return shape.Prim(primitive.KindFloat64) }
func boo() *shape.Shape  { return shape.Prim(primitive.KindBool) }
func intg() *shape.Shape { return shape.Prim(primitive.KindInt) }

// complexObject mirrors a typical nested domain record: scalar fields,
// nested objects three levels deep, an array-valued field, and a
// callable-valued field.
func complexObject() *shape.Shape {
	settings := shape.Object(
		shape.Field{Name: "theme", Type: str()},
		shape.Field{Name: "notifications", Type: boo()},
	)

	profile := shape.Object(
		shape.Field{Name: "name", Type: str()},
		shape.Field{Name: "settings", Type: settings},
	)

	user := shape.Object(
		shape.Field{Name: "id", Type: intg()},
		shape.Field{Name: "profile", Type: profile},
	)

	return shape.Object(
		shape.Field{Name: "user", Type: user},
		shape.Field{Name: "posts", Type: shape.ArrayOf(shape.Object(
			shape.Field{Name: "title", Type: str()},
		))},
		shape.Field{Name: "getFullName", Type: shape.FuncOf(nil, str())},
	)
}
