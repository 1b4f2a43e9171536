package rt

// This file gives every tag a safe/outer-lock constructor pair: the
// safe form may trigger a collection and is used when the caller has no
// other live heap references to protect; the outer-lock form assumes
// the caller already holds a RequireAlloc/DoneAlloc scope and therefore
// must neither lock nor collect. STRING/STROFFSET live in strings.go,
// BUFFER in buffer.go; both need extra bookkeeping beyond this pattern.

// MakeCon allocates a CON object (tag ctag, the given fields) and may
// collect.
func (vm *VM) MakeCon(ctag uint8, fields []Value) Value {
	if int(ctag) < 256 && len(fields) == 0 {
		return nullaryTable[ctag]
	}
	chunk := chunkSize(TagCon, uint64(len(fields))*wordSize)
	s := vm.RequireAlloc(chunk)
	v := vm.MakeConOuter(ctag, fields)
	s.DoneAlloc()
	return v
}

// MakeConOuter is the outer-lock CON constructor.
func (vm *VM) MakeConOuter(ctag uint8, fields []Value) Value {
	if int(ctag) < 256 && len(fields) == 0 {
		return nullaryTable[ctag]
	}
	h := vm.Heap.allocate(TagCon, uint64(len(fields))*wordSize, func(o *Object) {
		o.ConTag = ctag
		o.Fields = append([]Value(nil), fields...)
	})
	return MakeHeap(h)
}

// MakeFloat allocates a FLOAT object.
func (vm *VM) MakeFloat(f float64) Value {
	s := vm.RequireAlloc(chunkSize(TagFloat, 8))
	v := vm.MakeFloatOuter(f)
	s.DoneAlloc()
	return v
}

func (vm *VM) MakeFloatOuter(f float64) Value {
	h := vm.Heap.allocate(TagFloat, 8, func(o *Object) { o.Float = f })
	return MakeHeap(h)
}

// MakePtr allocates a PTR object wrapping a foreign, unmanaged pointer
// value. The collector copies only the header; the program must not
// rely on the runtime freeing whatever p refers to.
func (vm *VM) MakePtr(p any) Value {
	s := vm.RequireAlloc(chunkSize(TagPtr, wordSize))
	v := vm.MakePtrOuter(p)
	s.DoneAlloc()
	return v
}

func (vm *VM) MakePtrOuter(p any) Value {
	h := vm.Heap.allocate(TagPtr, wordSize, func(o *Object) { o.Foreign = p })
	return MakeHeap(h)
}

// MakeManagedPtr allocates a MANAGEDPTR object: an inline-owned byte
// block the runtime copies (unlike PTR) on GC and deep copy.
func (vm *VM) MakeManagedPtr(data []byte) Value {
	s := vm.RequireAlloc(chunkSize(TagManagedPtr, bytesToCount(len(data))))
	v := vm.MakeManagedPtrOuter(data)
	s.DoneAlloc()
	return v
}

func (vm *VM) MakeManagedPtrOuter(data []byte) Value {
	h := vm.Heap.allocate(TagManagedPtr, bytesToCount(len(data)), func(o *Object) {
		o.Managed = append([]byte(nil), data...)
	})
	return MakeHeap(h)
}

// MakeBits8/16/32/64 allocate single-scalar integer objects of the named
// width.
func (vm *VM) MakeBits8(v uint8) Value   { return vm.makeBits(TagBits8, uint64(v)) }
func (vm *VM) MakeBits16(v uint16) Value { return vm.makeBits(TagBits16, uint64(v)) }
func (vm *VM) MakeBits32(v uint32) Value { return vm.makeBits(TagBits32, uint64(v)) }
func (vm *VM) MakeBits64(v uint64) Value { return vm.makeBits(TagBits64, v) }

func (vm *VM) makeBits(t Tag, v uint64) Value {
	s := vm.RequireAlloc(chunkSize(t, 8))
	out := vm.makeBitsOuter(t, v)
	s.DoneAlloc()
	return out
}

func (vm *VM) makeBitsOuter(t Tag, v uint64) Value {
	h := vm.Heap.allocate(t, 8, func(o *Object) { o.Bits64 = v })
	return MakeHeap(h)
}

func (vm *VM) MakeBits8Outer(v uint8) Value   { return vm.makeBitsOuter(TagBits8, uint64(v)) }
func (vm *VM) MakeBits16Outer(v uint16) Value { return vm.makeBitsOuter(TagBits16, uint64(v)) }
func (vm *VM) MakeBits32Outer(v uint32) Value { return vm.makeBitsOuter(TagBits32, uint64(v)) }
func (vm *VM) MakeBits64Outer(v uint64) Value { return vm.makeBitsOuter(TagBits64, v) }

// MakeVectorFromScalars and MakeVectorFromBits build a 128-bit SIMD
// lane object from either 16 raw bytes or 16 tagged BITS8 Values; both
// paths end in the same 16-byte-aligned load.
func (vm *VM) MakeVectorFromScalars(t Tag, raw [16]byte) Value {
	s := vm.RequireAlloc(chunkSize(t, 16))
	v := vm.MakeVectorOuter(t, raw)
	s.DoneAlloc()
	return v
}

func (vm *VM) MakeVectorFromBits(t Tag, lanes [16]Value) Value {
	var raw [16]byte
	for i, v := range lanes {
		raw[i] = byte(vm.Deref(v).Bits64)
	}
	return vm.MakeVectorFromScalars(t, raw)
}

func (vm *VM) MakeVectorOuter(t Tag, raw [16]byte) Value {
	h := vm.Heap.allocate(t, 16, func(o *Object) { o.Vector = raw })
	return MakeHeap(h)
}
