package rt

import "fortio.org/safecast"

const wordSize = 8

// round8 rounds n up to the next multiple of 8, the allocator's default
// chunk alignment.
func round8(n uint64) uint64 { return (n + 7) &^ 7 }

// round16 rounds n up to the next multiple of 16, used for the 128-bit
// vector lane tags.
func round16(n uint64) uint64 { return (n + 15) &^ 15 }

// chunkSize returns the nominal byte cost of an allocation carrying sz
// payload bytes under tag t: the payload rounded to the tag's alignment
// plus one machine word for the chunk-size header every allocation is
// prefixed with.
func chunkSize(t Tag, sz uint64) uint64 {
	if t.isVector() {
		return round16(sz) + wordSize
	}
	return round8(sz) + wordSize
}

// semispace is one half of a Heap: a bump-allocated slot table with a
// nominal byte budget. slots[0] is never used so the zero Handle stays
// invalid; new objects are appended and given Handle(len(slots)).
type semispace struct {
	slots []*Object
	bytes uint64 // consumed, nominal chunk-size accounting
	cap   uint64 // budget for this half
}

func newSemispace(byteCap uint64) *semispace {
	return &semispace{slots: make([]*Object, 1, 64), cap: byteCap}
}

func (s *semispace) fits(chunk uint64) bool { return s.bytes+chunk <= s.cap }

func (s *semispace) push(o *Object, chunk uint64) Handle {
	s.slots = append(s.slots, o)
	s.bytes += chunk
	return Handle(len(s.slots) - 1)
}

func (s *semispace) get(h Handle) *Object { return s.slots[h] }

// HeapStats tracks the counters a VM exposes through statistics.
type HeapStats struct {
	Allocations uint64
	Collections uint64
	BytesLive   uint64
	BytesCopied uint64
}

// Heap owns two equal-size semi-spaces and allocates exclusively out of
// the active one. It does not know about locking or thread-local
// "current VM" lookup; that is VM's job (vm.go). Heap is the bump
// allocator plus collector target.
type Heap struct {
	vm             *VM
	active, reserve *semispace
	size           uint64
	Stats          HeapStats
}

// NewHeap allocates a Heap with two semi-spaces of sizeBytes each, owned
// by vm. vm may be nil for heap-only unit tests that never need to
// collect (Heap.Collect dereferences vm for roots).
func NewHeap(vm *VM, sizeBytes uint64) *Heap {
	return &Heap{
		vm:      vm,
		active:  newSemispace(sizeBytes),
		reserve: newSemispace(sizeBytes),
		size:    sizeBytes,
	}
}

// allocate is the allocator entry point: round the request, try to fit
// it in the active space, invoke the collector and retry once on
// failure, fail fatally if it still does not fit.
func (h *Heap) allocate(t Tag, payloadBytes uint64, build func(*Object)) Handle {
	chunk := chunkSize(t, payloadBytes)
	if !h.active.fits(chunk) {
		h.Collect()
		if !h.active.fits(chunk) {
			fatalf(FatalHeapExhausted, "heap exhausted: cannot allocate %d bytes after collection", chunk)
			return InvalidHandle
		}
	}
	obj := &Object{Tag: t, size: chunk}
	build(obj)
	handle := h.active.push(obj, chunk)
	obj.selfHandle = handle
	h.Stats.Allocations++
	if h.vm != nil && h.vm.Tracer != nil {
		h.vm.Tracer.TraceHeapAlloc(h.vm, handle, t, chunk)
	}
	return handle
}

// Get dereferences a Handle in the active space. h must be a live
// Handle obtained from this Heap since its last collection.
func (h *Heap) Get(handle Handle) *Object { return h.active.get(handle) }

// needsCollection reports whether an allocation of chunk bytes would
// not fit in the active space as it stands right now; used by
// RequireAlloc's pre-reservation check.
func (h *Heap) needsCollection(chunk uint64) bool { return !h.active.fits(chunk) }

// bytesToCount is a safecast-checked helper used throughout the buffer
// and string code to turn a requested byte count into the uint64 the
// allocator wants, failing fatally rather than silently wrapping a
// negative or oversized int.
func bytesToCount(n int) uint64 {
	v, err := safecast.Conv[uint64](n)
	if err != nil {
		fatalf(FatalInternal, "size %d out of range: %v", n, err)
	}
	return v
}
