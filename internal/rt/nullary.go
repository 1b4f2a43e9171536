package rt

import "sync"

// nullaryTable is the process-global table of 256 preallocated,
// out-of-heap CON objects of arity 0. It is shared across all VMs,
// immutable after init, and never collected; initializing it does not
// touch any VM's heap at all, so the collector never sees these objects
// and never needs to trace them.
var (
	nullaryOnce  sync.Once
	nullaryTable [256]Value
)

func init() { initNullaryTable() }

func initNullaryTable() {
	nullaryOnce.Do(func() {
		for i := range nullaryTable {
			obj := &Object{Tag: TagCon, ConTag: uint8(i)}
			nullaryTable[i] = MakeHeap(nullaryHandle(obj))
		}
	})
}

// nullaryHandles mirrors handles for the out-of-heap nullary objects.
// These never live in any VM's semi-space, so they need their own handle
// space; nullaryObjects is indexed directly by the CON tag instead of
// going through a semispace slot table.
var nullaryObjects [256]*Object

func nullaryHandle(obj *Object) Handle {
	tag := int(obj.ConTag)
	nullaryObjects[tag] = obj
	// Out-of-heap handles are encoded with the high bit set so they can
	// never collide with a real semi-space index (which starts at 1 and
	// is bounded by a VM's heap size); Heap.Get never sees these because
	// MakeCon/MakeConOuter return the cached nullaryTable Value directly
	// instead of dereferencing through a Heap.
	return Handle(nullaryHandleBase + uint32(tag))
}

const nullaryHandleBase = 1 << 31

// IsNullaryHandle reports whether h addresses the shared nullary table
// rather than some VM's heap.
func IsNullaryHandle(h Handle) bool { return uint32(h) >= nullaryHandleBase }

// NullaryObject dereferences a nullary-table Handle.
func NullaryObject(h Handle) *Object { return nullaryObjects[uint32(h)-nullaryHandleBase] }

// Deref dereferences v's Handle regardless of whether it addresses vm's
// own heap or the shared nullary table. It is the one place that
// distinction needs to be made explicit, because everywhere else (stack
// slots, CON fields, mailbox entries) a nullary CON is just another
// Value.
func (vm *VM) Deref(v Value) *Object {
	h := v.Handle()
	if IsNullaryHandle(h) {
		return NullaryObject(h)
	}
	return vm.Heap.Get(h)
}
