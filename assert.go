//go:build debug

package membuf

import "fmt"

// assertSize panics unless 0 <= size < sizeLimit.
// Only enabled with -tags debug.
func assertSize(method string, size int) {
	if size < 0 || size >= sizeLimit {
		panic(fmt.Sprintf("%s: size %d out of [0, %d)", method, size, sizeLimit))
	}
}

// assertInit panics if the initializer is longer than the requested size.
// Only enabled with -tags debug.
func assertInit(method string, initSize, size int) {
	if initSize > size {
		panic(fmt.Sprintf("%s: initializer %d > size %d", method, initSize, size))
	}
}

// assertIndex panics if i is outside [0, size). Indexing stays bounds-checked
// by the runtime regardless; this names the violated method.
// Only enabled with -tags debug.
func assertIndex(method string, i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Sprintf("%s: index %d out of [0, %d)", method, i, size))
	}
}

// assertWindow panics if a view window does not fit a signed 32-bit length.
// Only enabled with -tags debug.
func assertWindow(method string, length int) {
	if length >= sizeLimit {
		panic(fmt.Sprintf("%s: window %d >= %d", method, length, sizeLimit))
	}
}

// assertGrow panics if the target size is below the current size.
// Only enabled with -tags debug.
func assertGrow(method string, size, current int) {
	if size < current {
		panic(fmt.Sprintf("%s: size %d < current %d", method, size, current))
	}
}
