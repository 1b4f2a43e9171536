package rt

// Handle is an opaque, process-local reference to a heap Object. It is an
// index into the owning Heap's active semi-space slot table, whose slot 0
// is never used, so Handle zero is never valid. Handles are only meaningful relative to the
// Heap that produced them and only between collections of that heap: a
// collection relocates every reachable Object and rewrites the Handles
// that reference it, but a Handle held outside the root set (stack, ret,
// reg1, mailbox) does not survive a collection.
type Handle uint32

// InvalidHandle is the zero Handle, used as a sentinel for "no object"
// (e.g. what Heap.allocate returns on the heap-exhausted path); the
// collector passes it through unchanged.
const InvalidHandle Handle = 0

// Valid reports whether h refers to a real slot.
func (h Handle) Valid() bool { return h != InvalidHandle }
