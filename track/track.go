// Package track provides an allocation-accounting membuf.Allocator for
// tests. It counts Alloc and Free calls, refuses frees of blocks it does
// not own, and can deny allocations on demand to exercise failure paths.
package track

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bytealike/membuf"
)

// Allocator wraps another allocator and accounts for every block it hands
// out. Blocks are identified by their base address, so a double free or a
// free of a foreign block panics instead of silently unbalancing the
// counters. It is safe for concurrent use by multiple goroutines.
//
// Allocator requires no initialization - just declare and use:
//
//	var a track.Allocator
//	buffer, err := membuf.AllocateIn(&a, 64)
type Allocator struct {
	// Inner satisfies the allocations; nil means membuf.Heap.
	Inner membuf.Allocator

	mu     sync.Mutex
	live   map[unsafe.Pointer]int
	allocs int
	frees  int
	denied int
}

var _ membuf.Allocator = (*Allocator)(nil)

// Alloc obtains a block from the inner allocator and records it.
// Returns nil while denials from DenyNext remain.
func (a *Allocator) Alloc(size int) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.denied > 0 {
		a.denied--
		return nil
	}

	inner := a.Inner
	if inner == nil {
		inner = membuf.Heap{}
	}
	block := inner.Alloc(size)
	if block == nil {
		return nil
	}

	if a.live == nil {
		a.live = make(map[unsafe.Pointer]int)
	}
	a.live[unsafe.Pointer(unsafe.SliceData(block))] = cap(block)
	a.allocs++
	return block
}

// Free records the release of block and passes it to the inner allocator.
// Panics if block was not obtained from this Allocator or was already freed.
func (a *Allocator) Free(block []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	base := unsafe.Pointer(unsafe.SliceData(block))
	if _, ok := a.live[base]; !ok {
		panic(fmt.Sprintf("track.Free: block %p not live", base))
	}
	delete(a.live, base)
	a.frees++

	inner := a.Inner
	if inner == nil {
		inner = membuf.Heap{}
	}
	inner.Free(block)
}

// DenyNext makes the next n Alloc calls return nil.
func (a *Allocator) DenyNext(n int) {
	a.mu.Lock()
	a.denied = n
	a.mu.Unlock()
}

// Allocs returns the number of successful Alloc calls so far.
func (a *Allocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// Frees returns the number of Free calls so far.
func (a *Allocator) Frees() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frees
}

// Live returns the number of blocks allocated and not yet freed.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}
