//go:build !debug

package membuf

// assertSize is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertSize(string, int) {}

// assertInit is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertInit(string, int, int) {}

// assertIndex is a no-op in production; slice indexing stays bounds-checked
// by the runtime. Enable with -tags debug for named precondition panics.
func assertIndex(string, int, int) {}

// assertWindow is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertWindow(string, int) {}

// assertGrow is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertGrow(string, int, int) {}
