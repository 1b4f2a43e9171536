package rt

import "fmt"

// Tag identifies the variant payload of a heap Object.
type Tag uint8

const (
	TagCon Tag = iota
	TagFloat
	TagString
	TagStrOffset
	TagBigInt
	TagPtr
	TagManagedPtr
	TagBits8
	TagBits16
	TagBits32
	TagBits64
	TagBits8x16
	TagBits16x8
	TagBits32x4
	TagBits64x2
	TagBuffer
	// TagForward (FWD) is stamped onto a slot during collection only; it
	// must never be observable outside a collection cycle.
	TagForward
)

func (t Tag) String() string {
	switch t {
	case TagCon:
		return "CON"
	case TagFloat:
		return "FLOAT"
	case TagString:
		return "STRING"
	case TagStrOffset:
		return "STROFFSET"
	case TagBigInt:
		return "BIGINT"
	case TagPtr:
		return "PTR"
	case TagManagedPtr:
		return "MANAGEDPTR"
	case TagBits8:
		return "BITS8"
	case TagBits16:
		return "BITS16"
	case TagBits32:
		return "BITS32"
	case TagBits64:
		return "BITS64"
	case TagBits8x16:
		return "BITS8X16"
	case TagBits16x8:
		return "BITS16X8"
	case TagBits32x4:
		return "BITS32X4"
	case TagBits64x2:
		return "BITS64X2"
	case TagBuffer:
		return "BUFFER"
	case TagForward:
		return "FWD"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// isVector reports whether t is one of the 128-bit SIMD lane tags, which
// require 16-byte alignment instead of the usual 8.
func (t Tag) isVector() bool {
	switch t {
	case TagBits8x16, TagBits16x8, TagBits32x4, TagBits64x2:
		return true
	default:
		return false
	}
}
