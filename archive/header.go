package archive

import (
	"hash/crc32"

	"github.com/Masterminds/semver/v3"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/internal/conv"
)

const (
	// Magic identifies meshkit archives ("MKAR").
	Magic = 0x52414b4d

	// FormatVersion is the container format written by this package.
	FormatVersion = "1.1.0"

	// readableFormats are the container formats this package reads.
	readableFormats = ">= 1.1.0, < 2.0.0"
)

// content is the kind of object stored in an archive.
type content uint8

const (
	contentStore    content = 1
	contentPointSet content = 2
)

var readable = mustConstraint(readableFormats)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

type header struct {
	version     string
	content     content
	compression Compression
	checksum    uint32
	rawLen      uint64
	storedLen   uint64
}

// frame compresses body and prepends the header.
func frame(c content, body []byte, compression Compression) ([]byte, error) {
	stored, applied, err := compress(body, compression)
	if err != nil {
		return nil, err
	}
	h := header{
		version:     FormatVersion,
		content:     c,
		compression: applied,
		checksum:    crc32.ChecksumIEEE(stored),
		rawLen:      uint64(len(body)),
		storedLen:   uint64(len(stored)),
	}

	pb := newPayloadBuffer(make([]byte, 0, 40+len(stored)))
	pb.writeUint32(Magic)
	pb.writeString(h.version)
	pb.writeUint8(uint8(h.content))
	pb.writeUint8(uint8(h.compression))
	pb.writeUint32(h.checksum)
	pb.writeUint64(h.rawLen)
	pb.writeUint64(h.storedLen)
	if pb.err != nil {
		return nil, pb.err
	}
	return append(pb.buf, stored...), nil
}

// unframe validates the header and returns the decompressed body.
func unframe(data []byte, want content) ([]byte, error) {
	pb := newPayloadBuffer(data)
	if magic := pb.readUint32(); pb.err == nil && magic != Magic {
		return nil, core.Corruptionf("invalid magic: %#x", magic)
	}
	h := header{version: pb.readString()}
	if err := pb.corruption("archive header"); err != nil {
		return nil, err
	}

	v, err := semver.NewVersion(h.version)
	if err != nil {
		return nil, core.WrapCorruption(err, "archive format version")
	}
	if !readable.Check(v) {
		return nil, core.Corruptionf("unsupported archive format version %s (readable: %s)", v, readableFormats)
	}

	h.content = content(pb.readUint8())
	h.compression = Compression(pb.readUint8())
	h.checksum = pb.readUint32()
	h.rawLen = pb.readUint64()
	h.storedLen = pb.readUint64()
	if err := pb.corruption("archive header"); err != nil {
		return nil, err
	}
	if h.content != want {
		return nil, core.Corruptionf("archive holds content %d, expected %d", h.content, want)
	}

	storedLen, err := conv.Uint64ToInt(h.storedLen)
	if err != nil {
		return nil, core.WrapCorruption(err, "archive header")
	}
	rawLen, err := conv.Uint64ToInt(h.rawLen)
	if err != nil {
		return nil, core.WrapCorruption(err, "archive header")
	}
	stored := pb.read(storedLen)
	if err := pb.corruption("archive body"); err != nil {
		return nil, err
	}
	if pb.remaining() != 0 {
		return nil, core.Corruptionf("%d trailing bytes after archive body", pb.remaining())
	}
	if crc32.ChecksumIEEE(stored) != h.checksum {
		return nil, core.Corruptionf("checksum mismatch")
	}
	return decompress(stored, h.compression, rawLen)
}

func errInvalidSchema(v SchemaVersion) error {
	return core.InvalidArgumentf("unknown schema version %d", v)
}

func errInvalidCompression(c Compression) error {
	return core.InvalidArgumentf("unknown compression %d", c)
}
