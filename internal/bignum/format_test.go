package bignum_test

import (
	"testing"

	"github.com/vexlang/vexrt/internal/bignum"
)

func TestFormatIntSmallValues(t *testing.T) {
	cases := map[int64]string{
		0:     "0",
		1:     "1",
		-1:    "-1",
		42:    "42",
		-9999: "-9999",
	}
	for n, want := range cases {
		if got := bignum.FormatInt(bignum.FromInt64(n)); got != want {
			t.Errorf("FormatInt(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatIntCrossesLimbBoundary(t *testing.T) {
	// 1<<40 does not fit in a single 32-bit limb, exercising the
	// two-limb chunked-division path in formatMagnitude.
	x := bignum.FromInt64(1 << 40)
	if got, want := bignum.FormatInt(x), "1099511627776"; got != want {
		t.Errorf("FormatInt(1<<40) = %q, want %q", got, want)
	}
}

func TestDupIsIndependentOfSource(t *testing.T) {
	x := bignum.FromInt64(123456789)
	y := bignum.Dup(x)
	y.Limbs[0] = 0
	if bignum.FormatInt(x) == bignum.FormatInt(y) {
		t.Fatal("Dup should not alias the source's limb slice")
	}
}

func TestIsZero(t *testing.T) {
	if !bignum.FromInt64(0).IsZero() {
		t.Error("FromInt64(0) should be zero")
	}
	if bignum.FromInt64(1).IsZero() {
		t.Error("FromInt64(1) should not be zero")
	}
}
