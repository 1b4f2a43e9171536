package bignum

import "strings"

// FormatInt renders x as a decimal string, including a leading '-' for
// negative magnitudes. Used by the runtime's CastBigIntStr primitive and
// by value snapshots to render a BIGINT in decimal.
func FormatInt(x Int) string {
	if x.IsZero() {
		return "0"
	}
	digits := formatMagnitude(x.Limbs)
	if x.Neg {
		return "-" + digits
	}
	return digits
}

// formatMagnitude converts a base-2^32 little-endian limb slice to
// decimal by repeated division by 1e9, the same chunking a GMP-free
// formatter uses to keep the division loop cheap.
func formatMagnitude(limbs []uint32) string {
	work := append([]uint32(nil), limbs...)
	const chunk = 1_000_000_000
	var groups []uint32
	for len(work) > 0 {
		var rem uint64
		for i := len(work) - 1; i >= 0; i-- {
			cur := rem<<32 | uint64(work[i])
			work[i] = uint32(cur / chunk)
			rem = cur % chunk
		}
		for len(work) > 0 && work[len(work)-1] == 0 {
			work = work[:len(work)-1]
		}
		groups = append(groups, uint32(rem))
	}
	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		if i == len(groups)-1 {
			b.WriteString(itoa(groups[i]))
		} else {
			s := itoa(groups[i])
			for len(s) < 9 {
				s = "0" + s
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
