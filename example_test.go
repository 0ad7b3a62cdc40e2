package membuf_test

import (
	"fmt"

	"github.com/bytealike/membuf"
)

func Example() {
	// Allocate at least 16 bytes, initialized with a prefix. The actual
	// size is whatever the allocator really reserved, so it may be larger.
	buffer, _ := membuf.AllocateFrom(16, []byte("hello"))
	fmt.Println(string(buffer.Bytes()[:5]))
	fmt.Println(buffer.Size() >= 16)

	// Transfer ownership; the source is emptied.
	moved := buffer.Move()
	fmt.Println(buffer.Empty(), moved.Size() >= 16)

	// Output:
	// hello
	// true
	// true true
}

func ExampleBuffer_Grow() {
	buffer, _ := membuf.AllocateFrom(8, []byte("data"))

	// Grow allocates a new buffer, copies the contents over and releases
	// the old allocation. The buffer is never resized in place.
	buffer.Grow(1000)
	fmt.Println(string(buffer.Bytes()[:4]))
	fmt.Println(buffer.Size() >= 1000)

	// Output:
	// data
	// true
}

func ExampleBuffer_Writer() {
	buffer, _ := membuf.Allocate(16)

	w := buffer.Writer()
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	fmt.Println(string(w.Bytes()))

	// Output:
	// hello world
}
