package rt

// SmallIntBits is the guaranteed width of the immediate integer encoding:
// values in [-2^(SmallIntBits-1), 2^(SmallIntBits-1)) fit without heap
// allocation. A C runtime could steal the low tag bit of a pointer-sized
// machine word for this; Go gives no safe way to do that, so Value is
// instead a small discriminated struct with the same externally
// observable semantics (O(1) immediate test, no allocation for small
// ints) built a different way.
const SmallIntBits = 31

// Value is the uniform reference type used on the stack, in registers,
// and inside every Object field: either a small-integer immediate or a
// Handle into some Heap's active semi-space.
type Value struct {
	imm bool
	n   int64
	h   Handle
}

// MakeInt returns the immediate Value for n. n is not range-checked
// against SmallIntBits: callers that need arbitrary precision go
// through the BIGINT arena (see bignum.go). The full int64 is stored,
// so values outside the SmallIntBits range are kept intact, not
// truncated.
func MakeInt(n int64) Value { return Value{imm: true, n: n} }

// MakeHeap wraps a Handle as a Value.
func MakeHeap(h Handle) Value { return Value{h: h} }

// Nil is the immediate integer 0, used as the placeholder for stack
// slots SetTop creates before they are overwritten. It is not Go's zero
// Value{}, which is a non-immediate Value holding InvalidHandle.
var Nil = MakeInt(0)

// IsImmediate reports whether v holds a small integer rather than a
// heap Handle.
func (v Value) IsImmediate() bool { return v.imm }

// Int returns the immediate payload. Callers must check IsImmediate
// first; calling this on a heap Value is undefined behavior the runtime
// does not guard against.
func (v Value) Int() int64 { return v.n }

// Handle returns the heap payload. Callers must check !IsImmediate
// first.
func (v Value) Handle() Handle { return v.h }
