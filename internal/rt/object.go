package rt

import "github.com/vexlang/vexrt/internal/bignum"

// Object is a heap-allocated record: a Tag plus the payload fields for
// that tag. Go has no C-style union, so every tag's payload field lives
// side by side on the struct rather than overlapping storage. size is
// the nominal chunk size in bytes used for heap budget accounting; it
// stands in for a machine-word chunk length prefix.
type Object struct {
	Tag  Tag
	size uint64

	// selfHandle is the Handle this object is currently reachable under
	// in its owning Heap's active space. Buffer growth needs to hand
	// back a Value for an Object it already has a pointer to without a
	// heap-wide reverse search; it is kept in sync by Heap.allocate and
	// by the collector's copy step.
	selfHandle Handle

	// CON
	ConTag   uint8
	Fields   []Value

	// FLOAT
	Float float64

	// STRING: nil Bytes with StrNull set is MKSTR(NULL)'s placeholder.
	Bytes   []byte
	StrNull bool

	// STROFFSET: Root must be a STRING, never another STROFFSET. The
	// constructor collapses chains to depth <= 1, see strings.go.
	Root   Handle
	Offset int

	// BIGINT
	Big bignum.Int

	// PTR: foreign, unmanaged; the collector copies the header only.
	Foreign any

	// MANAGEDPTR: inline-owned byte block.
	Managed []byte

	// BITS8/16/32/64
	Bits64 uint64

	// BITS8X16/16X8/32X4/64X2: 16 raw bytes, lane width determined by Tag.
	Vector [16]byte

	// BUFFER
	BufFill int
	Buf     []byte

	// FWD: set only while a collection is in progress.
	FwdTo Handle
}

// Arity returns the number of CON fields. Panics (via the caller's own
// bookkeeping, not a recovered panic) are not how this runtime reports
// tag misuse; callers are expected to check Tag == TagCon first, since
// all other primitive misuse is undefined behavior.
func (o *Object) Arity() int { return len(o.Fields) }
