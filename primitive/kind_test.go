package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shapekit/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindEnumLike
	// KindEnumLike
	// KindDuration
	// KindTime
	// KindEnum(0)
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected primitive.KindEnum
	}{
		{"string", primitive.KindString},
		{"int", primitive.KindInt},
		{"number", primitive.KindFloat64},
		{"float", primitive.KindFloat64},
		{"float64", primitive.KindFloat64},
		{"bool", primitive.KindBool},
		{"time", primitive.KindTime},
		{"datetime", primitive.KindTime},
		{"duration", primitive.KindDuration},
		{"byte", primitive.KindUint8},
		{"nosuchkind", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, primitive.FromName(tt.name))
		})
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.Equal(t, k, primitive.FromName(k.Label()), "label %q must resolve back to its kind", k.Label())
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, primitive.KindInt.IsNumber())
	assert.True(t, primitive.KindInt.IsInteger())
	assert.True(t, primitive.KindInt.IsSigned())
	assert.False(t, primitive.KindInt.IsUnsigned())
	assert.False(t, primitive.KindInt.IsFloat())

	assert.True(t, primitive.KindUint16.IsUnsigned())
	assert.False(t, primitive.KindUint16.IsSigned())

	assert.True(t, primitive.KindFloat32.IsFloat())
	assert.True(t, primitive.KindFloat32.IsNumber())
	assert.False(t, primitive.KindFloat32.IsInteger())

	assert.False(t, primitive.KindString.IsNumber())
	assert.False(t, primitive.KindBool.IsNumber())
	assert.False(t, primitive.KindTime.IsNumber())
}
