package membuf_test

import (
	"bytes"
	"testing"

	"github.com/bytealike/membuf"
)

func TestIntervalSpansBuffer(t *testing.T) {
	buffer, err := membuf.Allocate(24)
	if err != nil {
		t.Fatal(err)
	}
	n := buffer.Size()

	iv := buffer.Interval()
	if iv.Len() != n {
		t.Fatalf("Len=%d size=%d", iv.Len(), n)
	}

	iv.Set(n-1, 0x7F)
	if got := iv.At(n - 1); got != 0x7F {
		t.Errorf("got %#x", got)
	}
	if got := buffer.At(n - 1); got != 0x7F {
		t.Error("interval writes must land in the buffer")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("At(Len) should panic")
			}
		}()
		iv.At(n)
	}()
}

func TestIntervalEqual(t *testing.T) {
	p := make([]byte, 16)
	a := membuf.NewInterval(p)
	b := membuf.NewInterval(p)
	c := membuf.NewInterval(p[1:])
	d := membuf.NewInterval(p[:8])

	if !a.Equal(b) {
		t.Error("same window should be equal")
	}
	if a.Equal(c) {
		t.Error("different start should not be equal")
	}
	if a.Equal(d) {
		t.Error("different length should not be equal")
	}

	// identity, not content: equal bytes in distinct windows differ
	q := make([]byte, 16)
	if a.Equal(membuf.NewInterval(q)) {
		t.Error("distinct storage should not be equal")
	}
}

func TestConstIntervalWidening(t *testing.T) {
	buffer, err := membuf.AllocateFrom(8, []byte("hello"))
	if err != nil {
		t.Fatal(err)
	}

	ci := buffer.Interval().Const()
	if ci.Len() != buffer.Size() {
		t.Fatalf("Len=%d size=%d", ci.Len(), buffer.Size())
	}
	if !ci.Equal(buffer.ConstInterval()) {
		t.Error("widened view should equal the buffer's const view")
	}
	if got := ci.At(0); got != 'h' {
		t.Errorf("got %q", got)
	}
}

func TestConstIntervalByteSlice(t *testing.T) {
	p := []byte("hello")
	ci := membuf.NewConstInterval(p)

	c := ci.ByteSlice()
	if !bytes.Equal(c, p) {
		t.Fatalf("got %q", c)
	}
	c[0] = 'X'
	if p[0] != 'h' {
		t.Error("ByteSlice must return a copy")
	}
	if ci.String() != "hello" {
		t.Errorf("got %q", ci.String())
	}
}

func TestIntervalBytesAlias(t *testing.T) {
	buffer, err := membuf.Allocate(8)
	if err != nil {
		t.Fatal(err)
	}
	iv := buffer.Interval()
	iv.Bytes()[0] = 0x42
	if buffer.At(0) != 0x42 {
		t.Error("Bytes must alias the buffer")
	}
}
