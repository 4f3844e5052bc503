package secmem

import "runtime"

// Buffer is an owned, growable byte sequence that is zeroed before its
// storage is released. Growing copies into a new array and wipes the old one.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a Buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// NewBufferLen allocates a Buffer holding n zero bytes.
func NewBufferLen(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{data: make([]byte, n)}
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// At returns the byte at position i.
func (b *Buffer) At(i int) byte {
	return b.data[i]
}

// Set overwrites the byte at position i.
func (b *Buffer) Set(i int, c byte) {
	b.data[i] = c
}

// Append adds c to the end of the buffer.
func (b *Buffer) Append(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// AppendString adds every byte of s to the end of the buffer.
func (b *Buffer) AppendString(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// IndexByte reports the first position of c, or -1.
func (b *Buffer) IndexByte(c byte) int {
	if b == nil {
		return -1
	}
	for i, v := range b.data {
		if v == c {
			return i
		}
	}
	return -1
}

// Bytes exposes the live storage. The slice is invalid after Wipe.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// String returns a copy of the contents. Go strings are immutable, so the copy
// cannot be wiped; callers that need wipe guarantees should use Bytes.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Wipe zeroes the full capacity and releases the storage. Safe to call more
// than once and on a nil receiver.
func (b *Buffer) Wipe() {
	if b == nil || b.data == nil {
		return
	}
	Wipe(b.data[:cap(b.data)])
	b.data = nil
}

func (b *Buffer) grow(n int) {
	if len(b.data)+n <= cap(b.data) {
		return
	}
	next := make([]byte, len(b.data), 2*cap(b.data)+n)
	copy(next, b.data)
	Wipe(b.data[:cap(b.data)])
	b.data = next
}

// Wipe overwrites p with zero bytes.
func Wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}
