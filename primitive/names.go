package primitive

// labels are the schema-file spellings of each kind. Label is what shape
// rendering and schema marshalling emit; FromName accepts a few extra
// aliases on top of these.
var labels = map[KindEnum]string{
	KindInt:      "int",
	KindInt8:     "int8",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint:     "uint",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindBool:     "bool",
	KindString:   "string",
	KindTime:     "time",
	KindDuration: "duration",
	KindEnumLike: "enum",
}

var names map[string]KindEnum

func init() {
	names = make(map[string]KindEnum, len(labels)+2)
	for k, l := range labels {
		names[l] = k
	}

	// aliases accepted in schema files
	names["number"] = KindFloat64
	names["float"] = KindFloat64
	names["byte"] = KindUint8
	names["rune"] = KindInt32
	names["datetime"] = KindTime
}

// Label returns the schema-file spelling of k, or the stringer name for
// kinds without one.
func (k KindEnum) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}

	return k.String()
}

// FromName returns the kind named by a schema-file spelling or alias.
// Returns the zero KindEnum when the name is not a primitive.
func FromName(name string) KindEnum {
	return names[name]
}
