// Package codec serializes resolved shape sets to CBOR and back. Encoding
// uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. The same logical
// schema always produces identical bytes, so encoded schemas can be
// content-addressed and diffed.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"shapekit/primitive"
	"shapekit/shape"
)

// ErrBadData is returned when decoding input that is not an encoded
// schema, including unknown kind or primitive tags from a newer writer.
var ErrBadData = errors.New("codec: invalid schema data")

var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// wire tags are frozen: they are the on-disk format, independent of the
// in-memory iota order of shape.Kind and primitive.KindEnum.
const (
	wireNever = iota
	wireAny
	wireUnknown
	wirePrimitive
	wireObject
	wireArray
	wireTuple
	wireFunc
	wireUnion
)

type wireFile struct {
	Version int                   `cbor:"1,keyasint"`
	Shapes  map[string]*wireShape `cbor:"2,keyasint"`
}

type wireShape struct {
	Kind     int          `cbor:"1,keyasint"`
	Prim     string       `cbor:"2,keyasint,omitempty"`
	Fields   []wireField  `cbor:"3,keyasint,omitempty"`
	Elem     *wireShape   `cbor:"4,keyasint,omitempty"`
	ReadOnly bool         `cbor:"5,keyasint,omitempty"`
	Elems    []*wireShape `cbor:"6,keyasint,omitempty"`
	Params   []*wireShape `cbor:"7,keyasint,omitempty"`
	Result   *wireShape   `cbor:"8,keyasint,omitempty"`
	Members  []*wireShape `cbor:"9,keyasint,omitempty"`
}

type wireField struct {
	Name     string     `cbor:"1,keyasint"`
	Type     *wireShape `cbor:"2,keyasint"`
	Optional bool       `cbor:"3,keyasint,omitempty"`
	ReadOnly bool       `cbor:"4,keyasint,omitempty"`
}

// Encode serializes a resolved shape set deterministically.
func Encode(shapes map[string]*shape.Shape) ([]byte, error) {
	file := wireFile{Version: 1, Shapes: make(map[string]*wireShape, len(shapes))}

	for name, s := range shapes {
		w, err := toWire(s)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}

		file.Shapes[name] = w
	}

	return encMode.Marshal(file)
}

// Decode deserializes an encoded shape set.
func Decode(data []byte) (map[string]*shape.Shape, error) {
	var file wireFile
	if err := decMode.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}

	if file.Version != 1 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadData, file.Version)
	}

	out := make(map[string]*shape.Shape, len(file.Shapes))

	for name, w := range file.Shapes {
		s, err := fromWire(w)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}

		out[name] = s
	}

	return out, nil
}

func toWire(s *shape.Shape) (*wireShape, error) {
	if s == nil {
		return nil, nil
	}

	w := &wireShape{ReadOnly: s.ReadOnly}

	switch s.Kind {
	case shape.KindNever:
		w.Kind = wireNever
	case shape.KindAny:
		w.Kind = wireAny
	case shape.KindUnknown:
		w.Kind = wireUnknown
	case shape.KindPrimitive:
		w.Kind = wirePrimitive
		w.Prim = s.Prim.Label()
	case shape.KindObject:
		w.Kind = wireObject
	case shape.KindArray:
		w.Kind = wireArray
	case shape.KindTuple:
		w.Kind = wireTuple
	case shape.KindFunc:
		w.Kind = wireFunc
	case shape.KindUnion:
		w.Kind = wireUnion
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrBadData, s.Kind)
	}

	var err error

	if w.Elem, err = toWire(s.Elem); err != nil {
		return nil, err
	}

	if w.Result, err = toWire(s.Result); err != nil {
		return nil, err
	}

	if w.Elems, err = toWireList(s.Elems); err != nil {
		return nil, err
	}

	if w.Params, err = toWireList(s.Params); err != nil {
		return nil, err
	}

	if w.Members, err = toWireList(s.Members); err != nil {
		return nil, err
	}

	for _, f := range s.Fields {
		ft, err := toWire(f.Type)
		if err != nil {
			return nil, err
		}

		w.Fields = append(w.Fields, wireField{
			Name:     f.Name,
			Type:     ft,
			Optional: f.Optional,
			ReadOnly: f.ReadOnly,
		})
	}

	return w, nil
}

func toWireList(list []*shape.Shape) ([]*wireShape, error) {
	if list == nil {
		return nil, nil
	}

	out := make([]*wireShape, len(list))

	for i, s := range list {
		w, err := toWire(s)
		if err != nil {
			return nil, err
		}

		out[i] = w
	}

	return out, nil
}

func fromWire(w *wireShape) (*shape.Shape, error) {
	if w == nil {
		return nil, nil
	}

	s := &shape.Shape{ReadOnly: w.ReadOnly}

	switch w.Kind {
	case wireNever:
		s.Kind = shape.KindNever
	case wireAny:
		s.Kind = shape.KindAny
	case wireUnknown:
		s.Kind = shape.KindUnknown
	case wirePrimitive:
		s.Kind = shape.KindPrimitive

		s.Prim = primitive.FromName(w.Prim)
		if s.Prim == 0 {
			return nil, fmt.Errorf("%w: unknown primitive %q", ErrBadData, w.Prim)
		}
	case wireObject:
		s.Kind = shape.KindObject
	case wireArray:
		s.Kind = shape.KindArray
	case wireTuple:
		s.Kind = shape.KindTuple
	case wireFunc:
		s.Kind = shape.KindFunc
	case wireUnion:
		s.Kind = shape.KindUnion
	default:
		return nil, fmt.Errorf("%w: unknown kind tag %d", ErrBadData, w.Kind)
	}

	var err error

	if s.Elem, err = fromWire(w.Elem); err != nil {
		return nil, err
	}

	if s.Result, err = fromWire(w.Result); err != nil {
		return nil, err
	}

	if s.Elems, err = fromWireList(w.Elems); err != nil {
		return nil, err
	}

	if s.Params, err = fromWireList(w.Params); err != nil {
		return nil, err
	}

	if s.Members, err = fromWireList(w.Members); err != nil {
		return nil, err
	}

	for _, f := range w.Fields {
		ft, err := fromWire(f.Type)
		if err != nil {
			return nil, err
		}

		s.Fields = append(s.Fields, shape.Field{
			Name:     f.Name,
			Type:     ft,
			Optional: f.Optional,
			ReadOnly: f.ReadOnly,
		})
	}

	return s, nil
}

func fromWireList(list []*wireShape) ([]*shape.Shape, error) {
	if list == nil {
		return nil, nil
	}

	out := make([]*shape.Shape, len(list))

	for i, w := range list {
		s, err := fromWire(w)
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}
