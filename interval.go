// Copyright 2026 bytealike
// SPDX-License-Identifier: Apache-2.0

package membuf

import "unsafe"

// Interval is a mutable, non-owning view over a contiguous byte range,
// typically a Buffer's full range or a window into one. It carries no
// lifetime tracking: the viewed bytes must stay alive, and the owning
// buffer must not be released or moved-from, while the view is in use.
//
// A view's length always fits in a signed 32-bit count; construction
// checks this precondition with -tags debug.
type Interval struct {
	data []byte
}

// NewInterval returns a view over window. Sub-views are made by slicing
// the window before construction.
func NewInterval(window []byte) Interval {
	assertWindow("membuf.NewInterval", len(window))
	return Interval{data: window}
}

// Len returns the number of bytes in the view.
func (iv Interval) Len() int {
	return len(iv.data)
}

// At returns the byte at index i. i must satisfy 0 <= i < Len; violations
// panic in every build mode.
func (iv Interval) At(i int) byte {
	assertIndex("Interval.At", i, len(iv.data))
	return iv.data[i]
}

// Set stores v at index i. Same bounds contract as At.
func (iv Interval) Set(i int, v byte) {
	assertIndex("Interval.Set", i, len(iv.data))
	iv.data[i] = v
}

// Bytes returns the viewed range as a byte slice, aliasing the underlying
// storage.
func (iv Interval) Bytes() []byte {
	return iv.data
}

// Const widens the view to read-only. There is no conversion back.
func (iv Interval) Const() ConstInterval {
	return ConstInterval{data: iv.data}
}

// Equal reports whether two views denote the same window: same start
// address and same length. It does not compare byte contents.
func (iv Interval) Equal(other Interval) bool {
	return sameWindow(iv.data, other.data)
}

// ConstInterval is the read-only counterpart of Interval. It is
// constructible from an Interval via Const, never the reverse.
type ConstInterval struct {
	data []byte
}

// NewConstInterval returns a read-only view over window.
func NewConstInterval(window []byte) ConstInterval {
	assertWindow("membuf.NewConstInterval", len(window))
	return ConstInterval{data: window}
}

// Len returns the number of bytes in the view.
func (iv ConstInterval) Len() int {
	return len(iv.data)
}

// At returns the byte at index i. i must satisfy 0 <= i < Len; violations
// panic in every build mode.
func (iv ConstInterval) At(i int) byte {
	assertIndex("ConstInterval.At", i, len(iv.data))
	return iv.data[i]
}

// ByteSlice returns a copy of the viewed bytes, keeping the view read-only.
func (iv ConstInterval) ByteSlice() []byte {
	c := make([]byte, len(iv.data))
	copy(c, iv.data)
	return c
}

// String returns the viewed bytes as a string.
func (iv ConstInterval) String() string {
	return string(iv.data)
}

// Equal reports whether two views denote the same window: same start
// address and same length. It does not compare byte contents.
func (iv ConstInterval) Equal(other ConstInterval) bool {
	return sameWindow(iv.data, other.data)
}

func sameWindow(a, b []byte) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b) && len(a) == len(b)
}
