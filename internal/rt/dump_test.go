package rt_test

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vexlang/vexrt/internal/rt"
)

func TestSnapshotRendersConTree(t *testing.T) {
	vm := newVM(t)
	tree := vm.MakeCon(2, []rt.Value{vm.MakeString("leaf"), rt.MakeInt(7)})

	snap := rt.Snapshot(vm, tree)
	if snap.Kind != "con" || snap.ConTag != 2 {
		t.Fatalf("unexpected snapshot root: %+v", snap)
	}
	if len(snap.Fields) != 2 {
		t.Fatalf("Fields len = %d, want 2", len(snap.Fields))
	}
	if snap.Fields[0].Kind != "string" || snap.Fields[0].Str != "leaf" {
		t.Errorf("field 0 = %+v, want string %q", snap.Fields[0], "leaf")
	}
	if snap.Fields[1].Kind != "int" || snap.Fields[1].Int != 7 {
		t.Errorf("field 1 = %+v, want int 7", snap.Fields[1])
	}
}

func TestDumpValueRoundTripsThroughMsgpack(t *testing.T) {
	vm := newVM(t)
	v := vm.MakeString("round trip me")

	data, err := rt.DumpValue(vm, v)
	if err != nil {
		t.Fatalf("DumpValue: %v", err)
	}
	snap, err := rt.LoadValueSnapshot(data)
	if err != nil {
		t.Fatalf("LoadValueSnapshot: %v", err)
	}
	if snap.Str != "round trip me" {
		t.Errorf("Str = %q, want %q", snap.Str, "round trip me")
	}
}

func TestDumpStatsReflectsAllocationCount(t *testing.T) {
	vm := newVM(t)
	vm.MakeString("a")
	vm.MakeString("b")

	data, err := rt.DumpStats(vm)
	if err != nil {
		t.Fatalf("DumpStats: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty msgpack-encoded stats")
	}
	var stats rt.HeapStats
	if err := msgpack.Unmarshal(data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Allocations != 2 {
		t.Errorf("Allocations = %d, want 2", stats.Allocations)
	}
}
