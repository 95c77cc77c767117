package archive

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/hupe1980/meshkit/core"
)

// payloadBuffer appends or consumes little-endian fields. The first error
// sticks and turns every later call into a no-op.
type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

func (p *payloadBuffer) remaining() int {
	return len(p.buf) - p.pos
}

func (p *payloadBuffer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *payloadBuffer) writeUint8(v uint8) {
	if p.err != nil {
		return
	}
	p.buf = append(p.buf, v)
}

func (p *payloadBuffer) writeBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	p.writeUint8(b)
}

func (p *payloadBuffer) writeUint32(v uint32) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
}

func (p *payloadBuffer) writeUint64(v uint64) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint64(p.buf, v)
}

func (p *payloadBuffer) writeString(s string) {
	if p.err != nil {
		return
	}
	if len(s) > math.MaxUint16 {
		p.err = core.InvalidArgumentf("string too long: %d", len(s))
		return
	}
	p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(len(s)))
	p.buf = append(p.buf, s...)
}

// writeBytes writes b prefixed with its uvarint length.
func (p *payloadBuffer) writeBytes(b []byte) {
	if p.err != nil {
		return
	}
	p.buf = binary.AppendUvarint(p.buf, uint64(len(b)))
	p.buf = append(p.buf, b...)
}

func (p *payloadBuffer) read(n int) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || p.remaining() < n {
		p.err = io.ErrUnexpectedEOF
		return nil
	}
	b := p.buf[p.pos : p.pos+n]
	p.pos += n
	return b
}

func (p *payloadBuffer) readUint8() uint8 {
	b := p.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *payloadBuffer) readBool() bool {
	switch v := p.readUint8(); v {
	case 0:
		return false
	case 1:
		return true
	default:
		p.fail(core.Corruptionf("invalid bool byte %d", v))
		return false
	}
}

func (p *payloadBuffer) readUint32() uint32 {
	b := p.read(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *payloadBuffer) readUint64() uint64 {
	b := p.read(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (p *payloadBuffer) readString() string {
	b := p.read(2)
	if b == nil {
		return ""
	}
	return string(p.read(int(binary.LittleEndian.Uint16(b))))
}

func (p *payloadBuffer) readBytes() []byte {
	if p.err != nil {
		return nil
	}
	l, n := binary.Uvarint(p.buf[p.pos:])
	if n <= 0 || l > uint64(p.remaining()-n) {
		p.err = io.ErrUnexpectedEOF
		return nil
	}
	p.pos += n
	return p.read(int(l))
}

// readCount reads a uint64 element count bounded by the bytes left, given
// that every element takes at least minSize bytes.
func (p *payloadBuffer) readCount(minSize int) int {
	c := p.readUint64()
	if p.err != nil {
		return 0
	}
	if c > uint64(p.remaining()/max(minSize, 1)) {
		p.err = core.Corruptionf("count %d exceeds remaining %d bytes", c, p.remaining())
		return 0
	}
	return int(c)
}

// corruption converts the sticky error into a core.ErrCorruption error.
func (p *payloadBuffer) corruption(what string) error {
	if p.err == nil {
		return nil
	}
	return core.WrapCorruption(p.err, what)
}
