package archive

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/metric"
)

// WriteStore writes the persistent attributes of s to w.
func WriteStore(w io.Writer, r *Registry, s *attribute.Store, optFns ...Option) error {
	opts, err := newOptions(optFns)
	if err != nil {
		return err
	}
	pb := newPayloadBuffer(nil)
	if err := encodeStore(pb, r, s, opts); err != nil {
		return err
	}
	return writeFramed(w, contentStore, pb.buf, opts)
}

// ReadStore reads a store archive written by WriteStore.
func ReadStore(rd io.Reader, r *Registry, optFns ...Option) (*attribute.Store, error) {
	opts, err := newOptions(optFns)
	if err != nil {
		return nil, err
	}
	var s *attribute.Store
	err = readFramed(rd, contentStore, opts, func(pb *payloadBuffer) error {
		var err error
		s, err = decodeStore(pb, r, opts)
		return err
	})
	return s, err
}

func writeFramed(w io.Writer, c content, body []byte, opts options) (err error) {
	start := time.Now()
	var n int
	defer func() {
		opts.metrics.RecordArchive(metric.ArchiveSave, n, time.Since(start), err)
	}()

	data, err := frame(c, body, opts.compression)
	if err != nil {
		return err
	}
	n, err = w.Write(data)
	if err != nil {
		return errors.Wrap(err, "write archive")
	}
	if opts.logger != nil {
		opts.logger.Debug("archive written",
			slog.Int("bytes", n),
			slog.Int("raw", len(body)),
			slog.String("compression", opts.compression.String()),
		)
	}
	return nil
}

func readFramed(rd io.Reader, c content, opts options, decode func(pb *payloadBuffer) error) (err error) {
	start := time.Now()
	var n int
	defer func() {
		opts.metrics.RecordArchive(metric.ArchiveLoad, n, time.Since(start), err)
	}()

	data, err := io.ReadAll(rd)
	if err != nil {
		return errors.Wrap(err, "read archive")
	}
	n = len(data)

	body, err := unframe(data, c)
	if err != nil {
		return err
	}
	pb := newPayloadBuffer(body)
	if err := decode(pb); err != nil {
		return err
	}
	if pb.remaining() != 0 {
		return core.Corruptionf("%d trailing bytes after last record", pb.remaining())
	}
	return nil
}

func encodeStore(pb *payloadBuffer, r *Registry, s *attribute.Store, opts options) error {
	type pending struct {
		header recordHeader
		entry  *typeEntry
		attr   attribute.Attribute
	}

	var records []pending
	for _, name := range s.Names() {
		a, err := s.Attribute(name)
		if err != nil {
			return err
		}
		if a.Kind() == attribute.KindComputed || !a.Properties().Persistent {
			continue
		}
		e, ok := r.types[a.Type()]
		if !ok {
			err := core.NotFoundf("attribute %s: no codec registered for type %s", name, a.Type())
			if opts.strict {
				return err
			}
			opts.skip(recordHeader{name: name, tag: a.Type()}, err)
			continue
		}
		records = append(records, pending{
			header: recordHeader{name: name, tag: a.Type(), encoding: e.encoding, kind: a.Kind(), schema: opts.schema},
			entry:  e,
			attr:   a,
		})
	}

	pb.writeUint64(uint64(s.NbElements()))
	pb.writeUint32(uint32(len(records)))
	for _, rec := range records {
		rec.header.write(pb)

		payload := newPayloadBuffer(nil)
		encodeProperties(rec.attr.Properties(), rec.header.schema, payload)
		if err := rec.entry.write(rec.attr, payload); err != nil {
			return errors.Wrapf(err, "attribute %s", rec.header.name)
		}
		pb.writeBytes(payload.buf)
	}
	return pb.err
}

func decodeStore(pb *payloadBuffer, r *Registry, opts options) (*attribute.Store, error) {
	nbElements := pb.readUint64()
	nbRecords := pb.readUint32()
	if err := pb.corruption("store header"); err != nil {
		return nil, err
	}
	if nbElements > uint64(core.MaxIndex) {
		return nil, core.Corruptionf("element count %d exceeds index range", nbElements)
	}
	n := int(nbElements)

	s := attribute.NewStore(attribute.WithLogger(opts.logger))
	s.Resize(n)
	prev := ""
	for i := range nbRecords {
		h := readRecordHeader(pb)
		payload := newPayloadBuffer(pb.readBytes())
		if err := pb.corruption("record header"); err != nil {
			return nil, err
		}
		if i > 0 && h.name <= prev {
			return nil, core.Corruptionf("record %q out of order after %q", h.name, prev)
		}
		prev = h.name

		if !h.schema.Valid() {
			return nil, core.Corruptionf("attribute %s: unknown schema version %d", h.name, h.schema)
		}
		e, err := r.entry(h.tag, h.encoding)
		if err != nil {
			if !errors.Is(err, core.ErrNotFound) {
				return nil, err
			}
			if opts.strict {
				return nil, core.WrapCorruption(err, "attribute "+h.name)
			}
			opts.skip(h, err)
			continue
		}

		props := propertyDecoders[h.schema](payload)
		a, err := e.read(h, props, n, payload)
		if err != nil {
			return nil, err
		}
		if payload.remaining() != 0 {
			return nil, core.Corruptionf("attribute %s: %d trailing payload bytes", h.name, payload.remaining())
		}
		if err := s.Attach(h.name, a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MarshalStore returns the archive of s as bytes.
func MarshalStore(r *Registry, s *attribute.Store, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteStore(&buf, r, s, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalStore reads a store archive from data.
func UnmarshalStore(r *Registry, data []byte, opts ...Option) (*attribute.Store, error) {
	return ReadStore(bytes.NewReader(data), r, opts...)
}
