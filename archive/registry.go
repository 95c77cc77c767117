package archive

import (
	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/codec"
	"github.com/hupe1980/meshkit/core"
)

// Registry maps value type tags to their codecs.
// A Registry is built once and then only read; it is safe for concurrent
// reads but not for registration concurrent with use.
type Registry struct {
	types        map[string]*typeEntry
	defaultCodec codec.Codec
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDefaultCodec sets the codec used by RegisterCodec when called with a
// nil codec. Defaults to codec.Default().
func WithDefaultCodec(c codec.Codec) RegistryOption {
	return func(r *Registry) {
		r.defaultCodec = c
	}
}

// NewRegistry returns a registry holding the built-in value types: bool,
// sized integers, int, uint, float32, float64, string, [2]float64,
// [3]float64, core.Index, geom.Point and geom.Vector.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		types:        make(map[string]*typeEntry),
		defaultCodec: codec.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	registerBuiltins(r)
	return r
}

// Register binds T to c, replacing any previous binding.
func Register[T comparable](r *Registry, c ValueCodec[T]) {
	r.types[attribute.TypeTag[T]()] = newTypeEntry(encodingBinary, c, nil)
}

// RegisterCodec binds T to a general purpose codec. A nil codec selects the
// registry default. Archives record the codec name; on load a value written
// with another built-in codec is decoded with that codec.
func RegisterCodec[T comparable](r *Registry, c codec.Codec) {
	if c == nil {
		c = r.defaultCodec
	}
	r.types[attribute.TypeTag[T]()] = newCodecEntry[T](c)
}

func newCodecEntry[T comparable](c codec.Codec) *typeEntry {
	return newTypeEntry[T](c.Name(), codecValue[T]{c: c}, newCodecEntry[T])
}

// Registered reports whether values of type tag can be archived.
func (r *Registry) Registered(tag string) bool {
	_, ok := r.types[tag]
	return ok
}

// entry returns the type entry able to decode tag written with encoding.
func (r *Registry) entry(tag, encoding string) (*typeEntry, error) {
	e, ok := r.types[tag]
	if !ok {
		return nil, core.NotFoundf("no codec registered for type %s", tag)
	}
	if e.encoding == encoding {
		return e, nil
	}
	if e.rebind != nil {
		if c, ok := codec.ByName(encoding); ok {
			return e.rebind(c), nil
		}
	}
	return nil, core.Corruptionf("type %s written with encoding %q, registered with %q", tag, encoding, e.encoding)
}

// typeEntry writes and reads the records of one value type.
type typeEntry struct {
	encoding string
	write    func(a attribute.Attribute, pb *payloadBuffer) error
	read     func(h recordHeader, props attribute.Properties, n int, pb *payloadBuffer) (attribute.Attribute, error)
	rebind   func(c codec.Codec) *typeEntry
}

func newTypeEntry[T comparable](encoding string, vc ValueCodec[T], rebind func(codec.Codec) *typeEntry) *typeEntry {
	return &typeEntry{
		encoding: encoding,
		write: func(a attribute.Attribute, pb *payloadBuffer) error {
			return writeAttribute(a, vc, pb)
		},
		read: func(h recordHeader, props attribute.Properties, n int, pb *payloadBuffer) (attribute.Attribute, error) {
			return readAttribute(h, props, n, vc, pb)
		},
		rebind: rebind,
	}
}
