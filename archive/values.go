package archive

import (
	"encoding/binary"

	"github.com/hupe1980/meshkit/codec"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
)

// encodingBinary is the record encoding of built-in value types.
const encodingBinary = "binary"

// ValueCodec encodes single attribute values of type T.
// DecodeValue receives exactly the bytes produced by AppendValue.
type ValueCodec[T comparable] interface {
	AppendValue(dst []byte, v T) ([]byte, error)
	DecodeValue(src []byte) (T, error)
}

// fixedCodec encodes fixed-size values with encoding/binary.
type fixedCodec[T comparable] struct{}

func (fixedCodec[T]) AppendValue(dst []byte, v T) ([]byte, error) {
	return binary.Append(dst, binary.LittleEndian, v)
}

func (fixedCodec[T]) DecodeValue(src []byte) (T, error) {
	var v T
	n, err := binary.Decode(src, binary.LittleEndian, &v)
	if err != nil {
		return v, err
	}
	if n != len(src) {
		return v, core.Corruptionf("value has %d trailing bytes", len(src)-n)
	}
	return v, nil
}

type intCodec struct{}

func (intCodec) AppendValue(dst []byte, v int) ([]byte, error) {
	return binary.AppendVarint(dst, int64(v)), nil
}

func (intCodec) DecodeValue(src []byte) (int, error) {
	v, n := binary.Varint(src)
	if n != len(src) {
		return 0, core.Corruptionf("invalid varint")
	}
	return int(v), nil
}

type uintCodec struct{}

func (uintCodec) AppendValue(dst []byte, v uint) ([]byte, error) {
	return binary.AppendUvarint(dst, uint64(v)), nil
}

func (uintCodec) DecodeValue(src []byte) (uint, error) {
	v, n := binary.Uvarint(src)
	if n != len(src) {
		return 0, core.Corruptionf("invalid uvarint")
	}
	return uint(v), nil
}

type stringCodec struct{}

func (stringCodec) AppendValue(dst []byte, v string) ([]byte, error) {
	return append(dst, v...), nil
}

func (stringCodec) DecodeValue(src []byte) (string, error) {
	return string(src), nil
}

// codecValue adapts a codec.Codec to ValueCodec.
type codecValue[T comparable] struct {
	c codec.Codec
}

func (cv codecValue[T]) AppendValue(dst []byte, v T) ([]byte, error) {
	if a, ok := cv.c.(codec.Appender); ok {
		return a.Append(dst, v)
	}
	b, err := cv.c.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

func (cv codecValue[T]) DecodeValue(src []byte) (T, error) {
	var v T
	err := cv.c.Unmarshal(src, &v)
	return v, err
}

func registerBuiltins(r *Registry) {
	Register[bool](r, fixedCodec[bool]{})
	Register[int](r, intCodec{})
	Register[int8](r, fixedCodec[int8]{})
	Register[int16](r, fixedCodec[int16]{})
	Register[int32](r, fixedCodec[int32]{})
	Register[int64](r, fixedCodec[int64]{})
	Register[uint](r, uintCodec{})
	Register[uint8](r, fixedCodec[uint8]{})
	Register[uint16](r, fixedCodec[uint16]{})
	Register[uint32](r, fixedCodec[uint32]{})
	Register[uint64](r, fixedCodec[uint64]{})
	Register[float32](r, fixedCodec[float32]{})
	Register[float64](r, fixedCodec[float64]{})
	Register[string](r, stringCodec{})
	Register[[2]float64](r, fixedCodec[[2]float64]{})
	Register[[3]float64](r, fixedCodec[[3]float64]{})
	Register[core.Index](r, fixedCodec[core.Index]{})
	Register[geom.Point](r, fixedCodec[geom.Point]{})
	Register[geom.Vector](r, fixedCodec[geom.Vector]{})
}
