package rt

import "github.com/vexlang/vexrt/internal/bignum"

// dupBig duplicates a BIGINT magnitude for GC copy / cross-VM deep
// copy. BIGINT is traced into its own arena: the header moves with the
// Object, but the limb slice must never alias between the two
// semi-spaces, or between two VMs' heaps.
func dupBig(x bignum.Int) bignum.Int { return bignum.Dup(x) }

// MakeBigInt allocates a BIGINT object wrapping x (already duplicated by
// the caller if it came from another arena). Safe form: may collect.
func (vm *VM) MakeBigInt(x bignum.Int) Value {
	s := vm.RequireAlloc(chunkSize(TagBigInt, 0))
	v := s.vm.MakeBigIntOuter(x)
	s.DoneAlloc()
	return v
}

// MakeBigIntOuter is the outer-lock BIGINT constructor.
func (vm *VM) MakeBigIntOuter(x bignum.Int) Value {
	h := vm.Heap.allocate(TagBigInt, 0, func(o *Object) { o.Big = bignum.Dup(x) })
	return MakeHeap(h)
}
