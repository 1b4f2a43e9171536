package rt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vexlang/vexrt/internal/bignum"
)

// MakeString allocates a STRING object holding s's bytes. May collect.
func (vm *VM) MakeString(s string) Value {
	sc := vm.RequireAlloc(chunkSize(TagString, bytesToCount(len(s))))
	v := vm.MakeStringOuter(s)
	sc.DoneAlloc()
	return v
}

func (vm *VM) MakeStringOuter(s string) Value {
	h := vm.Heap.allocate(TagString, bytesToCount(len(s)), func(o *Object) {
		o.Bytes = []byte(s)
	})
	return MakeHeap(h)
}

// MakeNullString allocates the MKSTR(NULL) placeholder: an empty string
// whose internal pointer is marked null, distinguishable from MKSTR("")
// even though both read back as the empty byte sequence.
func (vm *VM) MakeNullString() Value {
	sc := vm.RequireAlloc(chunkSize(TagString, 0))
	v := vm.MakeNullStringOuter()
	sc.DoneAlloc()
	return v
}

func (vm *VM) MakeNullStringOuter() Value {
	h := vm.Heap.allocate(TagString, 0, func(o *Object) { o.StrNull = true })
	return MakeHeap(h)
}

// strOffsetChunk is the fixed chunk size of a STROFFSET allocation.
var strOffsetChunk = chunkSize(TagStrOffset, 0)

// makeStrOffsetOuter is the outer-lock STROFFSET constructor.
func (vm *VM) makeStrOffsetOuter(root Handle, offset int) Value {
	h := vm.Heap.allocate(TagStrOffset, 0, func(o *Object) {
		o.Root = root
		o.Offset = offset
	})
	return MakeHeap(h)
}

// resolveRoot reads a STRING or STROFFSET Value down to its root
// STRING's Handle, the root Object itself, and the cumulative offset.
// String offset chains are collapsed to depth <= 1 on creation, so a
// STROFFSET's Root field always names a STRING directly; no iteration
// needed.
func (vm *VM) resolveRoot(v Value) (rootHandle Handle, root *Object, offset int) {
	obj := vm.Deref(v)
	if obj.Tag == TagStrOffset {
		return obj.Root, vm.Deref(MakeHeap(obj.Root)), obj.Offset
	}
	return v.Handle(), obj, 0
}

// bytes returns the effective byte slice a STRING/STROFFSET Value reads
// as right now.
func (vm *VM) bytes(v Value) []byte {
	_, root, off := vm.resolveRoot(v)
	if off >= len(root.Bytes) {
		return nil
	}
	return root.Bytes[off:]
}

// GetStr reads a STRING/STROFFSET Value's content as a Go string.
func (vm *VM) GetStr(v Value) string { return string(vm.bytes(v)) }

// StrLen returns len(s) as an immediate int.
func (vm *VM) StrLen(v Value) Value { return MakeInt(int64(len(vm.bytes(v)))) }

// StrEq implements streq: byte-exact equality.
func (vm *VM) StrEq(a, b Value) Value {
	if string(vm.bytes(a)) == string(vm.bytes(b)) {
		return MakeInt(1)
	}
	return MakeInt(0)
}

// StrLt implements strlt: lexicographic byte comparison.
func (vm *VM) StrLt(a, b Value) Value {
	if string(vm.bytes(a)) < string(vm.bytes(b)) {
		return MakeInt(1)
	}
	return MakeInt(0)
}

// StrHead returns the first byte of s as an immediate int.
func (vm *VM) StrHead(v Value) Value {
	b := vm.bytes(v)
	if len(b) == 0 {
		return MakeInt(0)
	}
	return MakeInt(int64(b[0]))
}

// StrIndex returns the byte at position i as an immediate int.
func (vm *VM) StrIndex(v Value, i int) Value {
	b := vm.bytes(v)
	return MakeInt(int64(b[i]))
}

// StrTail prefers a STROFFSET view onto the same root when allocating
// one would not itself force a collection, which could move the root
// out from under a caller still holding the pre-offset Value;
// otherwise it copies the tail bytes into a fresh STRING.
func (vm *VM) StrTail(v Value) Value {
	rootHandle, root, off := vm.resolveRoot(v)
	if !vm.Heap.needsCollection(strOffsetChunk) {
		sc := vm.RequireAlloc(strOffsetChunk)
		out := vm.makeStrOffsetOuter(rootHandle, off+1)
		sc.DoneAlloc()
		return out
	}
	tail := root.Bytes
	if off+1 < len(tail) {
		tail = tail[off+1:]
	} else {
		tail = nil
	}
	return vm.MakeString(string(tail))
}

// StrCons implements strCons: prepend byte c to s.
func (vm *VM) StrCons(c byte, s Value) Value {
	b := vm.bytes(s)
	out := make([]byte, len(b)+1)
	out[0] = c
	copy(out[1:], b)
	return vm.MakeString(string(out))
}

// StrRev implements strRev: byte-reversed copy.
func (vm *VM) StrRev(s Value) Value {
	b := vm.bytes(s)
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return vm.MakeString(string(out))
}

// ReadStr implements readStr(handle): read one line, through the
// trailing '\n' or EOF, from the io.Reader a PTR Value wraps, and
// return it as a fresh STRING. A handle with no usable reader, or one
// that returns nothing at all, reads back as the empty string rather
// than erroring.
func (vm *VM) ReadStr(handle Value) Value {
	r, ok := vm.Deref(handle).Foreign.(io.Reader)
	if !ok {
		return vm.MakeString("")
	}
	var line []byte
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			line = append(line, b[0])
			if b[0] == '\n' {
				break
			}
		}
		if err != nil {
			break
		}
	}
	return vm.MakeString(string(line))
}

// Concat implements concat: a's bytes followed by b's bytes.
func (vm *VM) Concat(a, b Value) Value {
	return vm.MakeString(vm.GetStr(a) + vm.GetStr(b))
}

// CastIntStr implements castIntStr: decimal rendering of an immediate
// int.
func (vm *VM) CastIntStr(v Value) Value {
	return vm.MakeString(strconv.FormatInt(v.Int(), 10))
}

// CastBigIntStr renders a BIGINT's magnitude in decimal.
func (vm *VM) CastBigIntStr(big bignum.Int) Value {
	return vm.MakeString(bignum.FormatInt(big))
}

// CastStrInt implements castStrInt: parse a leading run of decimal
// digits (optionally signed) with strtol semantics, but only accept the
// result if the unparsed remainder is empty or exactly one '\n' or '\r';
// any other remainder yields 0. This is why
// castStrInt("123abc") = 0 even though a bare strtol would happily
// return 123.
func (vm *VM) CastStrInt(v Value) Value {
	s := vm.GetStr(v)
	n := 0
	for n < len(s) && (s[n] == '+' || s[n] == '-' || (s[n] >= '0' && s[n] <= '9')) {
		if n > 0 && (s[n] == '+' || s[n] == '-') {
			break
		}
		n++
	}
	digits := s[:n]
	rest := s[n:]
	if digits == "" || digits == "+" || digits == "-" {
		return MakeInt(0)
	}
	if rest != "" && rest != "\n" && rest != "\r" {
		return MakeInt(0)
	}
	val, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return MakeInt(0)
	}
	return MakeInt(val)
}

// CastFloatStr implements castFloatStr: "%g"-style formatting.
func (vm *VM) CastFloatStr(f float64) Value {
	return vm.MakeString(strconv.FormatFloat(f, 'g', -1, 64))
}

// CastStrFloat implements castStrFloat: strtod semantics, parsing as
// much of a leading float as possible, 0 on total failure.
func (vm *VM) CastStrFloat(v Value) float64 {
	s := strings.TrimSpace(vm.GetStr(v))
	n := len(s)
	for n > 0 {
		if f, err := strconv.ParseFloat(s[:n], 64); err == nil {
			return f
		}
		n--
	}
	return 0
}

// CastBitsStr implements castBitsStr: dispatch on the BITS8/16/32/64 tag
// and format as unsigned decimal, with the documented max widths 3, 5,
// 10, 20 digits.
func (vm *VM) CastBitsStr(v Value) Value {
	obj := vm.Deref(v)
	switch obj.Tag {
	case TagBits8:
		return vm.MakeString(fmt.Sprintf("%d", uint8(obj.Bits64)))
	case TagBits16:
		return vm.MakeString(fmt.Sprintf("%d", uint16(obj.Bits64)))
	case TagBits32:
		return vm.MakeString(fmt.Sprintf("%d", uint32(obj.Bits64)))
	case TagBits64:
		return vm.MakeString(fmt.Sprintf("%d", obj.Bits64))
	default:
		fatal(errs.unreachableTag("castBitsStr", obj.Tag))
		return Value{}
	}
}
