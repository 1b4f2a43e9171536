package rt

import (
	"sync"
	"sync/atomic"
)

// DefaultStackSize and DefaultHeapSize are convenience defaults: enough
// for small demo programs without tuning.
const (
	DefaultStackSize = 4096  // Value slots
	DefaultHeapSize  = 1 << 20
	DefaultInboxSize = 64 // mailbox entries
)

// activeVMs counts live VMs process-wide. A VM's allocation lock is only
// real (actually taken) while this is > 1: a lone VM has no peer that
// could ever contend for it, so single-threaded VMs elide the lock
// entirely. The did-lock decision is recorded once, at RequireAlloc
// time, and not re-derived at DoneAlloc time.
var activeVMs atomic.Int64

// VM is one execution context: its own stack, its own heap, two root
// registers, statistics, and (since every build here is the concurrent
// one) a mailbox and the locks that guard cross-VM messaging.
type VM struct {
	Name string

	Stack    []Value
	StackMax int

	Ret  Value
	Reg1 Value

	Heap *Heap

	Tracer Tracer

	inbox     []MailboxEntry
	inboxCap  int
	inboxMu   sync.Mutex
	inboxCond *sync.Cond

	allocMu sync.Mutex

	maxThreads int

	done       chan struct{}
	terminated atomic.Bool
}

// AllocScope is the scoped-acquisition guard returned by RequireAlloc
// and released by DoneAlloc. It records whether it actually took
// vm.allocMu so release matches acquire even if activeVMs changes in
// between.
type AllocScope struct {
	vm     *VM
	locked bool
}

// NewVM allocates a VM with the given stack slot count, heap byte size
// (per semi-space), and mailbox capacity, and registers it as live.
func NewVM(name string, stackSize int, heapSize uint64, inboxCap int) *VM {
	vm := &VM{
		Name:     name,
		Stack:    make([]Value, 0, stackSize),
		StackMax: stackSize,
		inboxCap: inboxCap,
	}
	vm.inboxCond = sync.NewCond(&vm.inboxMu)
	vm.Heap = NewHeap(vm, heapSize)
	vm.startWatchdog()
	activeVMs.Add(1)
	return vm
}

// DefaultVM is idris_vm(): a VM built from the package defaults.
func DefaultVM(name string) *VM {
	return NewVM(name, DefaultStackSize, DefaultHeapSize, DefaultInboxSize)
}

// Terminate releases vm's resources and returns its final statistics.
// Once terminated, vm must not be used again.
func (vm *VM) Terminate() HeapStats {
	activeVMs.Add(-1)
	vm.terminated.Store(true)
	close(vm.done)
	vm.inboxMu.Lock()
	vm.inboxCond.Broadcast()
	vm.inboxMu.Unlock()

	stats := vm.Heap.Stats
	vm.Stack = nil
	vm.inbox = nil
	vm.Heap = nil
	return stats
}

// RequireAlloc is a pre-reservation hint: if the requested chunk will
// not fit, collect now, before the caller takes any pointer it needs to
// keep live across the allocation. In a multi-VM process it also
// acquires vm's allocation lock so a peer's send cannot interleave a
// deep copy with this thread's own allocations. The lock is a plain
// sync.Mutex and is not reentrant: calling RequireAlloc again (or
// sending into vm) before the matching DoneAlloc deadlocks.
func (vm *VM) RequireAlloc(chunk uint64) *AllocScope {
	locked := activeVMs.Load() > 1
	if locked {
		vm.allocMu.Lock()
	}
	if vm.Heap.needsCollection(chunk) {
		vm.Heap.Collect()
	}
	return &AllocScope{vm: vm, locked: locked}
}

// DoneAlloc releases whatever RequireAlloc actually took.
func (s *AllocScope) DoneAlloc() {
	if s.locked {
		s.vm.allocMu.Unlock()
	}
}

// lockAlloc and unlockAlloc are used by SendMessage, which must hold the
// destination's allocation lock around the whole deep copy, independent
// of the RequireAlloc/DoneAlloc pairing any nested outer-lock
// constructor call might also want to use. Outer-lock constructors
// never call RequireAlloc themselves, so there is no re-entrant
// acquisition to resolve here, only the single top-level lock/unlock
// send already needs.
func (vm *VM) lockAlloc()   { vm.allocMu.Lock() }
func (vm *VM) unlockAlloc() { vm.allocMu.Unlock() }

// gcCounter is a consistent snapshot of vm's collection count, used by
// SendMessage to detect a collection racing the deep copy.
func (vm *VM) gcCounter() uint64 { return vm.Heap.Stats.Collections }
