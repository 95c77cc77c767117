// Package codec encodes attribute values of custom types.
//
// Archives record the codec name in their header and select the codec by
// name on load, so a value written with one codec is never decoded with
// another.
package codec

import "github.com/cockroachdb/errors"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Appender is implemented by codecs that can encode into an existing buffer.
type Appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

// Default returns the codec used when none is configured.
func Default() Codec {
	return GoJSON{}
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default()
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(errors.Wrapf(err, "codec %s marshal failed", c.Name()))
	}
	return b
}
