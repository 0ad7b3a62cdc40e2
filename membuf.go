// Package membuf provides a move-only, heap-backed byte buffer that exposes
// the allocator's actual usable capacity instead of hiding it.
//
// Allocators commonly round requests up to internal size classes. Buffer
// reports the full rounded-up capacity as its size, so callers can use every
// byte the allocator already reserved without a second allocation.
package membuf

import "slices"

// Allocator provides raw memory blocks for Buffer.
//
// Alloc returns a block with cap(block) >= size, or nil if the memory is
// unavailable. The entire capacity of the returned block is usable; an
// implementation that over-allocates reports the surplus through cap.
// Free returns a block previously obtained from Alloc. A block must be
// freed at most once.
//
// The Heap allocator satisfies this interface for ordinary use; the track
// subpackage provides an accounting implementation for tests.
type Allocator interface {
	Alloc(size int) []byte
	Free(block []byte)
}

// Heap allocates blocks from the Go heap.
//
// Alloc grows a nil slice into the requested size, which lands the block on
// a runtime malloc size class; the reported capacity is the size class, so
// it may exceed the request (a 1000-byte request commonly yields a 1024-byte
// block). Free is a no-op: unreferenced blocks are reclaimed by the garbage
// collector.
type Heap struct{}

var _ Allocator = Heap{}

// Alloc returns a block with cap >= size. The block's contents are
// unspecified; callers must not rely on them.
func (Heap) Alloc(size int) []byte {
	block := slices.Grow([]byte(nil), size)
	return block[:cap(block)]
}

// Free is a no-op; the garbage collector reclaims the block.
func (Heap) Free([]byte) {}
