package rt

import (
	"github.com/vexlang/vexrt/internal/bignum"
	"github.com/vmihailenco/msgpack/v5"
)

// ValueSnapshot is a heap-independent rendering of a Value, used for
// the diagnostic dump `vexrt dump` produces through a real wire codec
// (msgpack) instead of plain text, so its output can round-trip through
// other tools rather than only being human-readable.
type ValueSnapshot struct {
	Kind    string           `msgpack:"kind"`
	Int     int64            `msgpack:"int,omitempty"`
	ConTag  uint8            `msgpack:"con_tag,omitempty"`
	Fields  []ValueSnapshot  `msgpack:"fields,omitempty"`
	Float   float64          `msgpack:"float,omitempty"`
	Str     string           `msgpack:"str,omitempty"`
	Bits    uint64           `msgpack:"bits,omitempty"`
	Buf     []byte           `msgpack:"buf,omitempty"`
	BigDec  string           `msgpack:"big,omitempty"`
}

// Snapshot walks v (rooted in vm's heap or the shared nullary table)
// into a self-contained ValueSnapshot tree.
func Snapshot(vm *VM, v Value) ValueSnapshot {
	if v.IsImmediate() {
		return ValueSnapshot{Kind: "int", Int: v.Int()}
	}
	obj := vm.Deref(v)
	switch obj.Tag {
	case TagCon:
		fields := make([]ValueSnapshot, len(obj.Fields))
		for i, f := range obj.Fields {
			fields[i] = Snapshot(vm, f)
		}
		return ValueSnapshot{Kind: "con", ConTag: obj.ConTag, Fields: fields}
	case TagFloat:
		return ValueSnapshot{Kind: "float", Float: obj.Float}
	case TagString, TagStrOffset:
		return ValueSnapshot{Kind: "string", Str: vm.GetStr(v)}
	case TagBuffer:
		return ValueSnapshot{Kind: "buffer", Buf: append([]byte(nil), obj.Buf[:obj.BufFill]...)}
	case TagBigInt:
		return ValueSnapshot{Kind: "bigint", BigDec: bignum.FormatInt(obj.Big)}
	case TagBits8, TagBits16, TagBits32, TagBits64:
		return ValueSnapshot{Kind: obj.Tag.String(), Bits: obj.Bits64}
	case TagPtr:
		return ValueSnapshot{Kind: "ptr"}
	case TagManagedPtr:
		return ValueSnapshot{Kind: "managedptr", Buf: append([]byte(nil), obj.Managed...)}
	default:
		return ValueSnapshot{Kind: obj.Tag.String()}
	}
}

// DumpValue serializes v to msgpack bytes for `vexrt dump`.
func DumpValue(vm *VM, v Value) ([]byte, error) {
	return msgpack.Marshal(Snapshot(vm, v))
}

// LoadValueSnapshot decodes msgpack bytes produced by DumpValue. It
// does not reconstruct a live Value in any heap; a dump is inert data
// for inspection, not a rehydratable object.
func LoadValueSnapshot(data []byte) (ValueSnapshot, error) {
	var s ValueSnapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}

// DumpStats serializes vm's heap statistics.
func DumpStats(vm *VM) ([]byte, error) {
	return msgpack.Marshal(vm.Heap.Stats)
}
