// Copyright 2026 bytealike
// SPDX-License-Identifier: Apache-2.0

package membuf

import "math"

// Buffer owns a single heap allocation that is made once and never resized
// in place. Size may be larger than requested, in case the underlying
// allocator over-allocated. To "grow" a buffer, allocate a new one
// initialized from the old one's bytes and move-assign it over the old,
// or use Grow which does exactly that.
//
// Buffer is move-only. Move, MoveFrom and Swap transfer the allocation and
// leave the source empty; copying the struct itself would create two owners
// of one allocation and is not supported. Keep a single owner and pass
// *Buffer around. The runtime does not enforce this discipline.
//
// The zero value is an empty buffer.
type Buffer struct {
	// data spans the entire usable allocation: len(data) == cap(data).
	// nil exactly when the buffer is empty.
	data  []byte
	alloc Allocator
}

// Allocate returns an uninitialized buffer of at least size bytes from the
// Heap allocator. See AllocateIn.
func Allocate(size int) (Buffer, error) {
	return AllocateIn(Heap{}, size)
}

// AllocateIn returns an uninitialized buffer of at least size bytes from
// alloc. size must be non-negative and below math.MaxInt32; this is a
// precondition, checked with -tags debug.
//
// A size of 0 yields an empty buffer without touching the allocator.
// Otherwise the request is rounded up to the next multiple of 8 and the
// buffer adopts the allocator's actual usable size, which may be larger
// still. Returns ErrAllocateFailed if the allocator cannot satisfy the
// request; no buffer exists in that case.
func AllocateIn(alloc Allocator, size int) (Buffer, error) {
	assertSize("membuf.AllocateIn", size)
	if size == 0 {
		return Buffer{}, nil
	}
	block := alloc.Alloc(roundUp8(size))
	if block == nil {
		return Buffer{}, ErrAllocateFailed
	}
	return Buffer{data: block[:cap(block)], alloc: alloc}, nil
}

// AllocateFrom returns a buffer of at least size bytes from the Heap
// allocator, with init copied to its front. See AllocateFromIn.
func AllocateFrom(size int, init []byte) (Buffer, error) {
	return AllocateFromIn(Heap{}, size, init)
}

// AllocateFromIn is AllocateIn followed by copying init into the start of
// the new buffer. len(init) must not exceed size; this is a precondition,
// checked with -tags debug. Bytes past the copied prefix are uninitialized.
func AllocateFromIn(alloc Allocator, size int, init []byte) (Buffer, error) {
	assertInit("membuf.AllocateFromIn", len(init), size)
	buffer, err := AllocateIn(alloc, size)
	if err != nil {
		return buffer, err
	}
	if len(init) > 0 {
		copy(buffer.data[:min(len(init), size)], init)
	}
	return buffer, nil
}

func roundUp8(v int) int {
	return (v + 7) &^ 7
}

// Size returns the usable size of the allocation, which is at least the
// rounded-up size requested at construction.
func (buffer *Buffer) Size() int {
	return len(buffer.data)
}

// Empty reports whether the buffer holds no allocation.
func (buffer *Buffer) Empty() bool {
	return len(buffer.data) == 0
}

// At returns the byte at index i. i must satisfy 0 <= i < Size; violations
// panic in every build mode, with a method-qualified message under
// -tags debug.
func (buffer *Buffer) At(i int) byte {
	assertIndex("Buffer.At", i, len(buffer.data))
	return buffer.data[i]
}

// Set stores v at index i. Same bounds contract as At.
func (buffer *Buffer) Set(i int, v byte) {
	assertIndex("Buffer.Set", i, len(buffer.data))
	buffer.data[i] = v
}

// Bytes returns the buffer's full range as a mutable flat byte slice.
// The slice aliases the allocation; it is invalidated by Release or by
// moving the buffer away.
func (buffer *Buffer) Bytes() []byte {
	return buffer.data
}

// Interval returns a mutable view spanning the buffer's full range.
func (buffer *Buffer) Interval() Interval {
	return Interval{data: buffer.data}
}

// ConstInterval returns a read-only view spanning the buffer's full range.
func (buffer *Buffer) ConstInterval() ConstInterval {
	return ConstInterval{data: buffer.data}
}

// Move transfers the allocation out of buffer and returns it as a new
// Buffer. The receiver is left empty. The underlying data address is
// unchanged by the transfer.
func (buffer *Buffer) Move() Buffer {
	moved := Buffer{data: buffer.data, alloc: buffer.alloc}
	buffer.data, buffer.alloc = nil, nil
	return moved
}

// MoveFrom releases the receiver's current allocation, then takes over the
// source's allocation and leaves the source empty. Exactly one allocation
// is freed, never two, never zero (unless the receiver was empty).
// Moving a buffer onto itself is a no-op.
func (buffer *Buffer) MoveFrom(source *Buffer) {
	if buffer == source {
		return
	}
	buffer.Release()
	buffer.data, buffer.alloc = source.data, source.alloc
	source.data, source.alloc = nil, nil
}

// Swap exchanges the allocations of two buffers in constant time without
// allocating.
func (buffer *Buffer) Swap(other *Buffer) {
	buffer.data, other.data = other.data, buffer.data
	buffer.alloc, other.alloc = other.alloc, buffer.alloc
}

// Release returns the allocation to its allocator and empties the buffer.
// Releasing an empty buffer is a no-op, so Release runs at most once per
// allocation. Under the Heap allocator Release is optional; allocators
// that recycle or account for blocks rely on it.
func (buffer *Buffer) Release() {
	if buffer.data == nil {
		return
	}
	buffer.alloc.Free(buffer.data)
	buffer.data, buffer.alloc = nil, nil
}

// Grow replaces the buffer with a fresh allocation of at least size bytes
// from the same allocator, initialized with the current contents, and
// releases the old allocation. size must be at least Size; this is a
// precondition, checked with -tags debug. An empty buffer grows from the
// Heap allocator.
//
// On error the buffer is left unchanged.
func (buffer *Buffer) Grow(size int) error {
	assertGrow("Buffer.Grow", size, len(buffer.data))
	alloc := buffer.alloc
	if alloc == nil {
		alloc = Heap{}
	}
	grown, err := AllocateFromIn(alloc, size, buffer.data)
	if err != nil {
		return err
	}
	buffer.MoveFrom(&grown)
	return nil
}

// sizeLimit bounds allocation requests so that any interval over the
// buffer fits in a signed 32-bit length.
const sizeLimit = math.MaxInt32
