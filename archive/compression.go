package archive

import (
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/meshkit/core"
)

// Compression selects the body compression of an archive.
type Compression uint8

const (
	// CompressionNone stores the body as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression returns the compression named name.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, core.InvalidArgumentf("unknown compression %q", name)
	}
}

const (
	// maxBodySize bounds the decompressed body of an archive.
	maxBodySize = 1 << 34

	// lz4MaxRatio is the largest expansion of an LZ4 block.
	lz4MaxRatio = 255
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxBodySize))
}

// compress returns the stored form of body and the compression actually
// applied. Bodies that do not shrink below 90% are stored uncompressed.
func compress(body []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(body) == 0 {
		return body, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(body)))
		n, err := lz4.CompressBlock(body, buf, nil)
		if err != nil {
			return nil, CompressionNone, err
		}
		out = buf[:n]
	case CompressionZSTD:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, CompressionNone, err
		}
		out = enc.EncodeAll(body, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, CompressionNone, core.InvalidArgumentf("unknown compression %d", c)
	}

	if len(out) == 0 || float64(len(out)) > float64(len(body))*0.9 {
		return body, CompressionNone, nil
	}
	return out, c, nil
}

// checkRawLen rejects header lengths the stored body cannot expand to.
func checkRawLen(stored []byte, c Compression, rawLen int) error {
	if int64(rawLen) > maxBodySize {
		return core.Corruptionf("body length %d exceeds %d", rawLen, maxBodySize)
	}
	switch c {
	case CompressionLZ4:
		if rawLen > len(stored)*lz4MaxRatio+16 {
			return core.Corruptionf("body length %d exceeds lz4 bound of %d stored bytes", rawLen, len(stored))
		}
	case CompressionZSTD:
		var h zstd.Header
		if err := h.Decode(stored); err != nil {
			return core.WrapCorruption(err, "zstd frame header")
		}
		if h.HasFCS && h.FrameContentSize != uint64(rawLen) {
			return core.Corruptionf("body length %d, zstd frame holds %d", rawLen, h.FrameContentSize)
		}
	}
	return nil
}

// decompress restores a body of rawLen bytes.
func decompress(stored []byte, c Compression, rawLen int) ([]byte, error) {
	if err := checkRawLen(stored, c, rawLen); err != nil {
		return nil, err
	}
	switch c {
	case CompressionNone:
		if len(stored) != rawLen {
			return nil, core.Corruptionf("body length %d, expected %d", len(stored), rawLen)
		}
		return stored, nil
	case CompressionLZ4:
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, out)
		if err != nil {
			return nil, core.WrapCorruption(err, "lz4 body")
		}
		if n != rawLen {
			return nil, core.Corruptionf("decompressed size %d, expected %d", n, rawLen)
		}
		return out, nil
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)
		// Frames without a content size grow the buffer while decoding.
		out, err := dec.DecodeAll(stored, make([]byte, 0, min(rawLen, len(stored)*lz4MaxRatio)))
		if err != nil {
			return nil, core.WrapCorruption(err, "zstd body")
		}
		if len(out) != rawLen {
			return nil, core.Corruptionf("decompressed size %d, expected %d", len(out), rawLen)
		}
		return out, nil
	default:
		return nil, core.Corruptionf("unknown compression %d", c)
	}
}
