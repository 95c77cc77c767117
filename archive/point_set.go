package archive

import (
	"io"

	"github.com/google/uuid"

	"github.com/hupe1980/meshkit/collection"
	"github.com/hupe1980/meshkit/core"
)

// WritePointSet writes the identifier, representation and persistent vertex
// attributes of ps to w.
func WritePointSet(w io.Writer, r *Registry, ps *collection.PointSet, optFns ...Option) error {
	opts, err := newOptions(optFns)
	if err != nil {
		return err
	}
	id := ps.ID()

	pb := newPayloadBuffer(nil)
	pb.buf = append(pb.buf, id[:]...)
	pb.writeString(string(ps.Impl()))
	if err := encodeStore(pb, r, ps.VertexAttributes(), opts); err != nil {
		return err
	}
	return writeFramed(w, contentPointSet, pb.buf, opts)
}

// ReadPointSet reads a point set archive written by WritePointSet.
func ReadPointSet(rd io.Reader, r *Registry, optFns ...Option) (*collection.PointSet, error) {
	opts, err := newOptions(optFns)
	if err != nil {
		return nil, err
	}
	var ps *collection.PointSet
	err = readFramed(rd, contentPointSet, opts, func(pb *payloadBuffer) error {
		id, err := uuid.FromBytes(pb.read(len(uuid.UUID{})))
		if err != nil {
			return core.WrapCorruption(err, "point set identifier")
		}
		impl := collection.Impl(pb.readString())
		if err := pb.corruption("point set header"); err != nil {
			return err
		}
		s, err := decodeStore(pb, r, opts)
		if err != nil {
			return err
		}
		ps, err = collection.RestorePointSet(id, impl, s, collection.WithLogger(opts.logger))
		if err != nil {
			return core.WrapCorruption(err, "point set attributes")
		}
		return nil
	})
	return ps, err
}
