// Package buffer provides a growable byte buffer that expands its
// backing storage in fixed-size blocks. Appends amortize allocation by
// rounding capacity up to the next block multiple instead of growing
// byte by byte.
package buffer

import (
	"bytes"
	"fmt"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/internal/mathutil"
)

// DefaultBlockSize is the allocation granularity used by New.
const DefaultBlockSize = 1024

// Buffer accumulates bytes, expanding capacity in block multiples.
type Buffer struct {
	buf   []byte
	block int
}

// New constructs an empty buffer with the default block size.
func New() *Buffer {
	return NewBlock(DefaultBlockSize)
}

// NewBlock constructs an empty buffer that grows in blockSize byte
// steps. A non-positive blockSize falls back to DefaultBlockSize.
func NewBlock(blockSize int) *Buffer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Buffer{buf: make([]byte, 0, blockSize), block: blockSize}
}

// NewString constructs a buffer seeded with the bytes of s.
func NewString(s string) *Buffer {
	b := New()
	b.AppendString(s)
	return b
}

// Len returns the number of bytes stored.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the allocated capacity, always a block multiple.
func (b *Buffer) Cap() int { return cap(b.buf) }

// BlockSize returns the allocation granularity.
func (b *Buffer) BlockSize() int { return b.block }

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool { return len(b.buf) == 0 }

// Append adds raw bytes to the end of the buffer.
func (b *Buffer) Append(data []byte) *Buffer {
	b.grow(len(data))
	b.buf = append(b.buf, data...)
	return b
}

// AppendByte adds a single byte to the end of the buffer.
func (b *Buffer) AppendByte(data byte) *Buffer {
	b.grow(1)
	b.buf = append(b.buf, data)
	return b
}

// AppendString adds the bytes of s to the end of the buffer.
func (b *Buffer) AppendString(s string) *Buffer {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
	return b
}

// grow ensures capacity for n more bytes, reallocating to the next
// block multiple when the current backing array is too small.
func (b *Buffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := mathutil.CeilDiv(need, b.block) * b.block
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

// At returns the byte at index. Returns collection.ErrOutOfRange when
// index is outside [0, Len).
func (b *Buffer) At(index int) (byte, error) {
	if index < 0 || index >= len(b.buf) {
		return 0, fmt.Errorf("at %d: %w", index, collection.ErrOutOfRange)
	}
	return b.buf[index], nil
}

// Front returns the first byte. Returns collection.ErrEmpty on an
// empty buffer.
func (b *Buffer) Front() (byte, error) {
	if len(b.buf) == 0 {
		return 0, fmt.Errorf("front: %w", collection.ErrEmpty)
	}
	return b.buf[0], nil
}

// Back returns the last byte. Returns collection.ErrEmpty on an empty
// buffer.
func (b *Buffer) Back() (byte, error) {
	if len(b.buf) == 0 {
		return 0, fmt.Errorf("back: %w", collection.ErrEmpty)
	}
	return b.buf[len(b.buf)-1], nil
}

// Section copies out the bytes between start and end, both inclusive.
// Returns collection.ErrOutOfRange when the range does not lie within
// the stored data.
func (b *Buffer) Section(start, end int) ([]byte, error) {
	if start < 0 || end < start || start >= len(b.buf) || end >= len(b.buf) {
		return nil, fmt.Errorf("section [%d, %d]: %w", start, end, collection.ErrOutOfRange)
	}
	out := make([]byte, end-start+1)
	copy(out, b.buf[start:end+1])
	return out, nil
}

// Find returns the index of the first occurrence of search, or -1 when
// the pattern is absent. An empty pattern matches at index 0.
func (b *Buffer) Find(search []byte) int {
	return bytes.Index(b.buf, search)
}

// FindString is Find for a string pattern.
func (b *Buffer) FindString(search string) int {
	return bytes.Index(b.buf, []byte(search))
}

// Contains reports whether the pattern occurs in the buffer.
func (b *Buffer) Contains(search []byte) bool {
	return b.Find(search) >= 0
}

// Equal reports whether two buffers hold the same bytes. Block size
// and capacity do not take part in the comparison.
func (b *Buffer) Equal(rhs *Buffer) bool {
	if rhs == nil {
		return false
	}
	return bytes.Equal(b.buf, rhs.buf)
}

// Clear drops the stored bytes while keeping the allocated capacity.
func (b *Buffer) Clear() {
	b.buf = b.buf[:0]
}

// Bytes returns a copy of the stored data.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// String renders the stored bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Clone returns an independent buffer with the same block size and
// contents.
func (b *Buffer) Clone() *Buffer {
	out := NewBlock(b.block)
	out.Append(b.buf)
	return out
}
