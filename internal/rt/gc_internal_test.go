package rt

import "testing"

// TestCollectPreservesRootsAndRewritesHandles drives enough allocation
// through a small VM to force a real collection, then checks that a
// value rooted on the stack survives with its content intact when read
// through the stack slot the collector rewrote to the new semi-space.
func TestCollectPreservesRootsAndRewritesHandles(t *testing.T) {
	vm := NewVM("gc-test", 16, 512, 8)
	defer vm.Terminate()

	root := vm.MakeString("kept alive across collection")
	vm.Push(root)

	before := vm.Heap.Stats.Collections
	for i := 0; i < 64 && vm.Heap.Stats.Collections == before; i++ {
		vm.MakeString("churn")
	}

	top := vm.Top(len(vm.Stack) - 1)
	if vm.GetStr(top) != "kept alive across collection" {
		t.Fatalf("root value corrupted across collection: got %q", vm.GetStr(top))
	}
}

// TestCollectLeavesNoForwardTagObservable checks that after a
// collection finishes, nothing reachable from a VM's roots reports the
// transient FWD tag; it must only ever exist mid-cycle on the old,
// unreachable half.
func TestCollectLeavesNoForwardTagObservable(t *testing.T) {
	vm := NewVM("gc-fwd-test", 16, 512, 8)
	defer vm.Terminate()

	root := vm.MakeCon(7, []Value{vm.MakeString("a"), MakeInt(1)})
	vm.Push(root)

	before := vm.Heap.Stats.Collections
	for i := 0; i < 64 && vm.Heap.Stats.Collections == before; i++ {
		vm.MakeString("churn")
	}

	top := vm.Top(len(vm.Stack) - 1)
	obj := vm.Deref(top)
	if obj.Tag == TagForward {
		t.Fatal("root resolved to a FWD tag after collection")
	}
	for _, f := range obj.Fields {
		if f.IsImmediate() {
			continue
		}
		if vm.Deref(f).Tag == TagForward {
			t.Fatal("CON field resolved to a FWD tag after collection")
		}
	}
}

// TestCollectSharesStrOffsetRootAcrossCopy verifies that a STROFFSET and
// the STRING it shares still name the same post-collection root, rather
// than ending up pointing at two independent copies.
func TestCollectSharesStrOffsetRootAcrossCopy(t *testing.T) {
	vm := NewVM("gc-share-test", 16, 4096, 8)
	defer vm.Terminate()

	str := vm.MakeString("sharednext")
	tail := vm.StrTail(str)

	vm.Push(str)
	vm.Push(tail)

	before := vm.Heap.Stats.Collections
	for i := 0; i < 256 && vm.Heap.Stats.Collections == before; i++ {
		vm.MakeString("churn")
	}

	gotStr := vm.GetStr(vm.Top(0))
	gotTail := vm.GetStr(vm.Top(1))
	if gotStr != "sharednext" {
		t.Fatalf("root string corrupted: got %q", gotStr)
	}
	if gotTail != "harednext" {
		t.Fatalf("tail view corrupted: got %q", gotTail)
	}
	if root := vm.Deref(vm.Top(1)).Root; root != vm.Top(0).Handle() {
		t.Fatalf("STROFFSET root = %d, want the relocated STRING's handle %d", root, vm.Top(0).Handle())
	}
}
