package rt

import "testing"

func TestRound8AlignsUp(t *testing.T) {
	cases := map[uint64]uint64{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 17: 24}
	for in, want := range cases {
		if got := round8(in); got != want {
			t.Errorf("round8(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRound16AlignsUp(t *testing.T) {
	cases := map[uint64]uint64{0: 0, 1: 16, 15: 16, 16: 16, 17: 32}
	for in, want := range cases {
		if got := round16(in); got != want {
			t.Errorf("round16(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestChunkSizeAddsHeader(t *testing.T) {
	if got := chunkSize(TagFloat, 8); got != 16 {
		t.Errorf("chunkSize(FLOAT, 8) = %d, want 16", got)
	}
	// vector tags round their payload to 16 instead of 8.
	if got := chunkSize(TagBits8x16, 16); got != 24 {
		t.Errorf("chunkSize(BITS8X16, 16) = %d, want 24", got)
	}
}

func TestHeapAllocateTracksStatsAndIsRetrievable(t *testing.T) {
	h := NewHeap(nil, 1<<16)
	handle := h.allocate(TagFloat, 8, func(o *Object) { o.Float = 3.5 })
	if h.Stats.Allocations != 1 {
		t.Fatalf("Allocations = %d, want 1", h.Stats.Allocations)
	}
	obj := h.Get(handle)
	if obj.Float != 3.5 {
		t.Errorf("Float = %v, want 3.5", obj.Float)
	}
	if obj.selfHandle != handle {
		t.Errorf("selfHandle = %d, want %d", obj.selfHandle, handle)
	}
}

func TestNeedsCollectionReflectsBudget(t *testing.T) {
	h := NewHeap(nil, 32)
	if h.needsCollection(16) {
		t.Fatal("16-byte chunk should fit in a fresh 32-byte heap")
	}
	h.allocate(TagFloat, 8, func(*Object) {})
	h.allocate(TagFloat, 8, func(*Object) {})
	if !h.needsCollection(16) {
		t.Fatal("heap should be full after two 16-byte chunks in a 32-byte budget")
	}
}

func TestAllocationsDoNotOverlap(t *testing.T) {
	h := NewHeap(nil, 1<<16)
	var objs []*Object
	for i := 0; i < 8; i++ {
		handle := h.allocate(TagBits64, 8, func(o *Object) { o.Bits64 = uint64(i) })
		objs = append(objs, h.Get(handle))
	}
	for i, o := range objs {
		if o.Bits64 != uint64(i) {
			t.Fatalf("object %d has Bits64=%d, want %d (allocations overlapped)", i, o.Bits64, i)
		}
	}
}
