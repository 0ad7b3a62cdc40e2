// Copyright 2026 bytealike
// SPDX-License-Identifier: Apache-2.0

package membuf

import "io"

// Writer fills a Buffer's fixed allocation through the standard Write
// method. The buffer's capacity is the hard size limit and the write
// position marks how much has been filled; the buffer is never grown.
//
// The Writer aliases the buffer's allocation. Releasing or moving the
// buffer away invalidates the Writer.
type Writer struct {
	data []byte
	n    int
}

var _ io.Writer = (*Writer)(nil)

// Writer returns a Writer positioned at the start of the buffer.
func (buffer *Buffer) Writer() *Writer {
	return &Writer{data: buffer.data}
}

// Write appends p after the bytes written so far.
// Returns ErrOutOfRange without writing anything if p does not fit in the
// remaining capacity.
func (w *Writer) Write(p []byte) (n int, err error) {
	n = len(p)
	if n > len(w.data)-w.n {
		return 0, ErrOutOfRange
	}
	copy(w.data[w.n:], p)
	w.n += n
	return
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.n
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.data[:w.n]
}

// Reset rewinds the write position to the start of the buffer.
func (w *Writer) Reset() {
	w.n = 0
}
