package kyberx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrettReduce(t *testing.T) {
	for a := math.MinInt16; a <= math.MaxInt16; a++ {
		got := barrettReduce(int16(a))
		require.LessOrEqual(t, int(got), paramQ, "input %d", a)
		require.GreaterOrEqual(t, int(got), -paramQ, "input %d", a)

		want := a % paramQ
		if want < 0 {
			want += paramQ
		}
		require.Equal(t, want, (int(got)%paramQ+paramQ)%paramQ, "input %d", a)
	}
}

func TestConditionalSubQ(t *testing.T) {
	for a := 0; a < 2*paramQ; a++ {
		got := conditionalSubQ(int16(a))
		require.GreaterOrEqual(t, int(got), 0, "input %d", a)
		require.Less(t, int(got), paramQ, "input %d", a)
		require.Equal(t, a%paramQ, int(got), "input %d", a)
	}
}

func TestMontgomeryReduceUndoesMontgomeryFactor(t *testing.T) {
	// montgomeryReduce(x * 2^16) must land in the residue class of x. The
	// centered representative keeps x*2^16 inside the reduction domain
	// [-q*2^15, q*2^15).
	for x := 0; x < paramQ; x++ {
		centered := int32(x)
		if x > paramQ/2 {
			centered = int32(x) - paramQ
		}
		got := montgomeryReduce(centered << 16)
		require.Less(t, int(got), paramQ)
		require.Greater(t, int(got), -paramQ)
		require.Equal(t, x, (int(got)%paramQ+paramQ)%paramQ, "residue %d", x)
	}
}

func TestMontgomeryReduceBound(t *testing.T) {
	for _, a := range []int32{
		-paramQ * 32768, paramQ*32768 - 1, 0, 1, -1,
		65536, -65536, 3329 * 12345, -3329 * 12345,
	} {
		got := montgomeryReduce(a)
		require.Less(t, int(got), paramQ, "input %d", a)
		require.Greater(t, int(got), -paramQ, "input %d", a)

		// got * 2^16 must be congruent to a mod q.
		lhs := (int64(got) * 65536 % paramQ + paramQ) % paramQ
		rhs := (int64(a)%paramQ + paramQ) % paramQ
		require.Equal(t, rhs, lhs, "input %d", a)
	}
}

func TestModQMulMont(t *testing.T) {
	// modQMulMont(a, b) * 2^16 = a * b (mod q) for in-range operands.
	for _, pair := range [][2]int16{
		{0, 0}, {1, 1}, {paramQ - 1, paramQ - 1}, {17, 1441}, {2285, 1353}, {-1664, 1664},
	} {
		got := modQMulMont(pair[0], pair[1])
		lhs := ((int64(got)*65536)%paramQ + paramQ) % paramQ
		rhs := ((int64(pair[0])*int64(pair[1]))%paramQ + paramQ) % paramQ
		require.Equal(t, rhs, lhs, "operands %v", pair)
	}
}
