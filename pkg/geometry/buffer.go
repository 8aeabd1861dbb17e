package geometry

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// BufferType tags a Buffer as holding vertex or index data.
type BufferType uint8

// Buffer types.
const (
	BufferTypeVertex BufferType = iota
	BufferTypeIndex
)

// String returns the buffer type name.
func (t BufferType) String() string {
	if t == BufferTypeIndex {
		return "index"
	}
	return "vertex"
}

// Buffer is a growable byte store with an element size. Vertex buffers use
// the binding stride as element size, index buffers the index width.
type Buffer struct {
	bufferType  BufferType
	elementSize uint32
	data        []byte
}

// NewBuffer creates an empty buffer.
func NewBuffer(bufferType BufferType, elementSize uint32) *Buffer {
	return &Buffer{bufferType: bufferType, elementSize: elementSize}
}

// Type returns the buffer type.
func (b *Buffer) Type() BufferType { return b.bufferType }

// ElementSize returns the size in bytes of one element.
func (b *Buffer) ElementSize() uint32 { return b.elementSize }

// Size returns the number of bytes stored.
func (b *Buffer) Size() uint32 { return uint32(len(b.data)) }

// Data returns the stored bytes. The slice aliases the buffer until the next append.
func (b *Buffer) Data() []byte { return b.data }

// SetSize resizes the byte store to exactly n bytes. Growth is zero filled.
func (b *Buffer) SetSize(n uint32) {
	if int(n) <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = append(b.data, make([]byte, int(n)-len(b.data))...)
}

// AppendBytes appends raw bytes.
func (b *Buffer) AppendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// ElementCount returns the number of elements stored, rounding a trailing
// partial element up. A partial element is a misuse and trips an assertion.
func (b *Buffer) ElementCount() uint32 {
	if b.elementSize == 0 {
		return 0
	}
	size := uint32(len(b.data))
	assertf(size%b.elementSize == 0,
		"%s buffer size %d is not a multiple of element size %d", b.bufferType, size, b.elementSize)
	return (size + b.elementSize - 1) / b.elementSize
}

// Append appends the little-endian encoding of values. T must be a
// fixed-size type such as uint16, float32 or an mgl32 vector.
func Append[T any](b *Buffer, values ...T) {
	if len(values) == 0 {
		return
	}
	var data any = values
	if len(values) == 1 {
		data = values[0]
	}
	out, err := binary.Append(b.data, binary.LittleEndian, data)
	if err != nil {
		panic(errors.AssertionFailedf("buffer append of %T: %v", values[0], err))
	}
	b.data = out
}

func (b *Buffer) clone() Buffer {
	c := *b
	c.data = append([]byte(nil), b.data...)
	return c
}
