package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// DefaultMaxBytesLen is the default cap on length-prefixed values (16MB).
	// A corrupt length prefix must not translate into an unbounded allocation.
	DefaultMaxBytesLen = 16 << 20
)

// ErrValueTooLarge is returned when a length-prefixed value exceeds the
// decoder's configured limit.
var ErrValueTooLarge = errors.New("length-prefixed value too large")

// Decoder reads primitive-width binary values sequentially from an encoded
// stream. Reads are strictly order-dependent: each call consumes the bytes
// of exactly one value, and a failed read leaves the stream position
// undefined. Decoders fail fast on malformed or truncated input and never
// synthesize values on error.
type Decoder interface {
	ReadInt() (int32, error)
	ReadLong() (int64, error)
	ReadFloat() (float32, error)
	ReadDouble() (float64, error)
	ReadBool() (bool, error)
	ReadBytes() ([]byte, error)
	ReadString() (string, error)
}

// StreamDecoder decodes big-endian fixed-width primitives from an io.Reader.
// Wire format: int 4 bytes, long 8 bytes, float 4 bytes (IEEE 754),
// double 8 bytes (IEEE 754), bool 1 byte, bytes/string 4-byte length prefix
// followed by the payload.
//
// A read that finds the stream exhausted at a value boundary returns io.EOF;
// a read truncated mid-value returns io.ErrUnexpectedEOF.
type StreamDecoder struct {
	r        io.Reader
	buf      [8]byte
	consumed int64
	maxBytes int
}

// NewStreamDecoder creates a decoder reading from r.
func NewStreamDecoder(r io.Reader) *StreamDecoder {
	return &StreamDecoder{
		r:        r,
		maxBytes: DefaultMaxBytesLen,
	}
}

// SetMaxBytesLen overrides the cap on length-prefixed values.
func (d *StreamDecoder) SetMaxBytesLen(n int) {
	d.maxBytes = n
}

// BytesRead returns the total number of bytes consumed from the stream.
func (d *StreamDecoder) BytesRead() int64 {
	return d.consumed
}

// fill reads exactly n bytes into the scratch buffer. io.ReadFull returns
// io.EOF when no bytes were available and io.ErrUnexpectedEOF on a partial
// read; both pass through unchanged.
func (d *StreamDecoder) fill(n int) error {
	read, err := io.ReadFull(d.r, d.buf[:n])
	d.consumed += int64(read)
	return err
}

// ReadInt reads one signed 32-bit integer.
func (d *StreamDecoder) ReadInt() (int32, error) {
	if err := d.fill(4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d.buf[:4])), nil
}

// ReadLong reads one signed 64-bit integer.
func (d *StreamDecoder) ReadLong() (int64, error) {
	if err := d.fill(8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(d.buf[:8])), nil
}

// ReadFloat reads one 32-bit IEEE 754 float.
func (d *StreamDecoder) ReadFloat() (float32, error) {
	if err := d.fill(4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(d.buf[:4])), nil
}

// ReadDouble reads one 64-bit IEEE 754 float.
func (d *StreamDecoder) ReadDouble() (float64, error) {
	if err := d.fill(8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(d.buf[:8])), nil
}

// ReadBool reads one byte; zero is false, anything else is true.
func (d *StreamDecoder) ReadBool() (bool, error) {
	if err := d.fill(1); err != nil {
		return false, err
	}
	return d.buf[0] != 0, nil
}

// ReadBytes reads a 4-byte length prefix followed by that many bytes.
// The returned slice is freshly allocated and owned by the caller.
func (d *StreamDecoder) ReadBytes() ([]byte, error) {
	if err := d.fill(4); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(d.buf[:4])
	if int64(length) > int64(d.maxBytes) {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrValueTooLarge, length, d.maxBytes)
	}
	if length == 0 {
		return []byte{}, nil
	}
	payload := make([]byte, length)
	read, err := io.ReadFull(d.r, payload)
	d.consumed += int64(read)
	if err != nil {
		// A missing payload after a length prefix is always mid-value.
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (d *StreamDecoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
