package rt

// deepCopy implements doCopyTo: immediates pass through; a nullary CON
// aliases the shared table without copying; every other tag allocates a
// fresh object on dst and recurs into CON fields. The value graph is a
// finite DAG by construction, so plain recursion terminates; an
// explicit worklist would only earn its complexity for graphs far
// deeper than this runtime's expected scale.
//
// dst is passed explicitly rather than resolved through thread-local
// storage, so every allocation call this function makes already
// targets dst without any rebind/restore dance.
func deepCopy(src *VM, dst *VM, v Value) Value {
	if v.IsImmediate() {
		return v
	}
	h := v.Handle()
	if IsNullaryHandle(h) {
		return v
	}
	obj := src.Heap.Get(h)
	switch obj.Tag {
	case TagCon:
		if obj.Arity() == 0 && int(obj.ConTag) < 256 {
			return nullaryTable[obj.ConTag]
		}
		fields := make([]Value, obj.Arity())
		for i, f := range obj.Fields {
			fields[i] = deepCopy(src, dst, f)
		}
		return dst.MakeConOuter(obj.ConTag, fields)
	case TagFloat:
		return dst.MakeFloatOuter(obj.Float)
	case TagString:
		if obj.StrNull {
			return dst.MakeNullStringOuter()
		}
		return dst.MakeStringOuter(string(obj.Bytes))
	case TagStrOffset:
		root := src.Heap.Get(obj.Root)
		copied := dst.MakeStringOuter(string(root.Bytes))
		if obj.Offset == 0 {
			return copied
		}
		return dst.makeStrOffsetOuter(copied.Handle(), obj.Offset)
	case TagBuffer:
		return dst.makeBufferOuter(obj.Buf, obj.BufFill)
	case TagBigInt:
		return dst.MakeBigIntOuter(obj.Big)
	case TagPtr:
		return dst.MakePtrOuter(obj.Foreign)
	case TagManagedPtr:
		return dst.MakeManagedPtrOuter(obj.Managed)
	case TagBits8:
		return dst.MakeBits8Outer(uint8(obj.Bits64))
	case TagBits16:
		return dst.MakeBits16Outer(uint16(obj.Bits64))
	case TagBits32:
		return dst.MakeBits32Outer(uint32(obj.Bits64))
	case TagBits64:
		return dst.MakeBits64Outer(obj.Bits64)
	case TagBits8x16, TagBits16x8, TagBits32x4, TagBits64x2:
		return dst.MakeVectorOuter(obj.Tag, obj.Vector)
	default:
		fatal(errs.unreachableTag("doCopyTo", obj.Tag))
		return Value{}
	}
}
