package archive

import (
	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/core"
)

// SchemaVersion identifies the layout of an attribute record payload.
type SchemaVersion uint8

const (
	// SchemaV1 records carry the assignable and interpolable properties.
	SchemaV1 SchemaVersion = 1
	// SchemaV2 adds the transferable property.
	SchemaV2 SchemaVersion = 2
	// SchemaV3 adds the persistent property.
	SchemaV3 SchemaVersion = 3

	// CurrentSchema is the version written by default.
	CurrentSchema = SchemaV3
)

// Valid reports whether v is a known schema version.
func (v SchemaVersion) Valid() bool {
	return v >= SchemaV1 && v <= CurrentSchema
}

type propertiesV1 struct {
	Assignable   bool
	Interpolable bool
}

type propertiesV2 struct {
	propertiesV1
	Transferable bool
}

// migrateV1 upgrades V1 properties. V1 attributes were always transferred.
func migrateV1(p propertiesV1) propertiesV2 {
	return propertiesV2{propertiesV1: p, Transferable: true}
}

// migrateV2 upgrades V2 properties. Every written V2 attribute was persistent.
func migrateV2(p propertiesV2) attribute.Properties {
	return attribute.Properties{
		Assignable:   p.Assignable,
		Interpolable: p.Interpolable,
		Transferable: p.Transferable,
		Persistent:   true,
	}
}

func decodePropertiesV1(pb *payloadBuffer) attribute.Properties {
	p := propertiesV1{Assignable: pb.readBool(), Interpolable: pb.readBool()}
	return migrateV2(migrateV1(p))
}

func decodePropertiesV2(pb *payloadBuffer) attribute.Properties {
	p := propertiesV2{
		propertiesV1: propertiesV1{Assignable: pb.readBool(), Interpolable: pb.readBool()},
		Transferable: pb.readBool(),
	}
	return migrateV2(p)
}

func decodePropertiesV3(pb *payloadBuffer) attribute.Properties {
	return attribute.Properties{
		Assignable:   pb.readBool(),
		Interpolable: pb.readBool(),
		Transferable: pb.readBool(),
		Persistent:   pb.readBool(),
	}
}

// propertyDecoders dispatches on the record schema version.
var propertyDecoders = [...]func(*payloadBuffer) attribute.Properties{
	SchemaV1: decodePropertiesV1,
	SchemaV2: decodePropertiesV2,
	SchemaV3: decodePropertiesV3,
}

func encodeProperties(p attribute.Properties, v SchemaVersion, pb *payloadBuffer) {
	pb.writeBool(p.Assignable)
	pb.writeBool(p.Interpolable)
	if v >= SchemaV2 {
		pb.writeBool(p.Transferable)
	}
	if v >= SchemaV3 {
		pb.writeBool(p.Persistent)
	}
}

// recordHeader precedes every record payload.
type recordHeader struct {
	name     string
	tag      string
	encoding string
	kind     attribute.Kind
	schema   SchemaVersion
}

func (h recordHeader) write(pb *payloadBuffer) {
	pb.writeString(h.name)
	pb.writeString(h.tag)
	pb.writeString(h.encoding)
	pb.writeUint8(uint8(h.kind))
	pb.writeUint8(uint8(h.schema))
}

func readRecordHeader(pb *payloadBuffer) recordHeader {
	return recordHeader{
		name:     pb.readString(),
		tag:      pb.readString(),
		encoding: pb.readString(),
		kind:     attribute.Kind(pb.readUint8()),
		schema:   SchemaVersion(pb.readUint8()),
	}
}

func writeValue[T comparable](v T, vc ValueCodec[T], pb *payloadBuffer) {
	if pb.err != nil {
		return
	}
	b, err := vc.AppendValue(nil, v)
	if err != nil {
		pb.fail(err)
		return
	}
	pb.writeBytes(b)
}

func readValue[T comparable](vc ValueCodec[T], pb *payloadBuffer) T {
	var zero T
	b := pb.readBytes()
	if pb.err != nil {
		return zero
	}
	v, err := vc.DecodeValue(b)
	if err != nil {
		pb.fail(core.WrapCorruption(err, "decode value"))
		return zero
	}
	return v
}

// writeAttribute writes the kind-specific payload of a, without properties.
func writeAttribute[T comparable](a attribute.Attribute, vc ValueCodec[T], pb *payloadBuffer) error {
	switch at := a.(type) {
	case *attribute.Variable[T]:
		writeValue(at.DefaultValue(), vc, pb)
		pb.writeUint64(uint64(at.Size()))
		for _, v := range at.Values() {
			writeValue(v, vc, pb)
		}
	case *attribute.Constant[T]:
		writeValue(at.Get(), vc, pb)
	case *attribute.Sparse[T]:
		writeValue(at.DefaultValue(), vc, pb)
		pb.writeUint64(uint64(at.NbValues()))
		for i, v := range at.Entries() {
			pb.writeUint32(uint32(i))
			writeValue(v, vc, pb)
		}
	default:
		return core.InvalidArgumentf("attribute %s: %s attributes cannot be archived", a.Name(), a.Kind())
	}
	return pb.err
}

func readAttribute[T comparable](h recordHeader, props attribute.Properties, n int, vc ValueCodec[T], pb *payloadBuffer) (attribute.Attribute, error) {
	switch h.kind {
	case attribute.KindVariable:
		def := readValue(vc, pb)
		count := pb.readCount(1)
		if pb.err == nil && count != n {
			return nil, core.Corruptionf("attribute %s has %d values for %d elements", h.name, count, n)
		}
		values := make([]T, count)
		for i := range values {
			values[i] = readValue(vc, pb)
		}
		if err := pb.corruption("attribute " + h.name); err != nil {
			return nil, err
		}
		return attribute.NewVariableFromValues(h.name, def, values, props), nil

	case attribute.KindConstant:
		v := readValue(vc, pb)
		if err := pb.corruption("attribute " + h.name); err != nil {
			return nil, err
		}
		return attribute.NewConstant(h.name, v, props), nil

	case attribute.KindSparse:
		def := readValue(vc, pb)
		count := pb.readCount(5)
		s := attribute.NewSparse(h.name, def, props)
		for range count {
			i := core.Index(pb.readUint32())
			v := readValue(vc, pb)
			if pb.err == nil && i.Int() >= n {
				return nil, core.Corruptionf("attribute %s has value for element %d of %d", h.name, i, n)
			}
			s.SetValue(i, v)
		}
		if err := pb.corruption("attribute " + h.name); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, core.Corruptionf("attribute %s has unsupported kind %d", h.name, h.kind)
	}
}
