package rt_test

import "testing"

func TestMemsetFillsRange(t *testing.T) {
	vm := newVM(t)
	ptr := vm.MakeManagedPtr(make([]byte, 8))
	vm.Memset(ptr, 2, 0x7F, 4)

	for i := 2; i < 6; i++ {
		if got := vm.Peek(ptr, i); got != 0x7F {
			t.Fatalf("byte %d = %#x, want %#x", i, got, 0x7F)
		}
	}
	if got := vm.Peek(ptr, 0); got != 0 {
		t.Fatalf("byte 0 untouched = %#x, want 0", got)
	}
}

func TestPokeThenPeekRoundTrips(t *testing.T) {
	vm := newVM(t)
	ptr := vm.MakeManagedPtr(make([]byte, 4))
	vm.Poke(ptr, 1, 0xAA)
	if got := vm.Peek(ptr, 1); got != 0xAA {
		t.Fatalf("Peek = %#x, want %#x", got, 0xAA)
	}
}

func TestMemmoveHandlesOverlap(t *testing.T) {
	vm := newVM(t)
	ptr := vm.MakeManagedPtr([]byte{1, 2, 3, 4, 5})
	// Shift the first four bytes right by one, the classic overlapping
	// memmove case plain copy-without-care would corrupt.
	vm.Memmove(ptr, ptr, 1, 0, 4)

	want := []byte{1, 1, 2, 3, 4}
	for i, w := range want {
		if got := vm.Peek(ptr, i); got != w {
			t.Fatalf("byte %d = %d, want %d", i, got, w)
		}
	}
}
