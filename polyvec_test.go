package kyberx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func testRandomCanonicalPolyVec(t *testing.T, pp *PublicParameter, domain byte) *PolyVec {
	t.Helper()
	rst := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polys[i] = testRandomCanonicalPoly(t, pp, domain+byte(i))
	}
	return rst
}

func TestCompressDecompressPolyVecIdempotent(t *testing.T) {
	for _, pp := range []*PublicParameter{InitializeKyber512(), InitializeKyber1024()} {
		compressed := make([]byte, pp.paramPolyVecCompressedBytes)
		sha3.ShakeSum128(compressed, []byte{'v', byte(pp.paramDU)})

		recompressed := pp.CompressPolyVec(pp.DecompressPolyVec(compressed))
		require.Equal(t, compressed, recompressed, "du=%d", pp.paramDU)
	}
}

func TestDecompressCompressPolyVecErrorBound(t *testing.T) {
	for _, pp := range []*PublicParameter{InitializeKyber512(), InitializeKyber1024()} {
		maxErr := (paramQ + (1 << (pp.paramDU + 1)) - 1) / (1 << (pp.paramDU + 1))

		v := testRandomCanonicalPolyVec(t, pp, 0x70)
		got := pp.DecompressPolyVec(pp.CompressPolyVec(v))

		for i := 0; i < pp.paramK; i++ {
			for j := 0; j < paramN; j++ {
				diff := int(got.polys[i].coeffs[j]) - int(v.polys[i].coeffs[j])
				if diff < 0 {
					diff = -diff
				}
				if paramQ-diff < diff {
					diff = paramQ - diff
				}
				require.LessOrEqual(t, diff, maxErr, "du=%d element %d coefficient %d", pp.paramDU, i, j)
			}
		}
	}
}

func TestNTTInvNTTPolyVec(t *testing.T) {
	pp := InitializeKyber768()
	v := testRandomCanonicalPolyVec(t, pp, 0x80)

	got := pp.NTTInvPolyVec(pp.NTTPolyVec(v))

	const rModQ = 2285
	for i := 0; i < pp.paramK; i++ {
		for j := 0; j < paramN; j++ {
			want := int16(int32(v.polys[i].coeffs[j]) * rModQ % paramQ)
			require.Equal(t, want, testCanonicalize(got.polys[i].coeffs[j]), "element %d coefficient %d", i, j)
		}
	}
}

func TestSerializePolyNTTVecRoundTrip(t *testing.T) {
	pp := InitializeKyber1024()

	v := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		v.polyNTTs[i] = &PolyNTT{coeffs: testRandomCanonicalPoly(t, pp, byte(0x90+i)).coeffs}
	}

	serialized := pp.serializePolyNTTVec(v)
	require.Len(t, serialized, pp.paramPolyVecBytes)

	got, err := pp.deserializePolyNTTVec(serialized)
	require.NoError(t, err)
	for i := 0; i < pp.paramK; i++ {
		require.True(t, pp.PolyNTTEqualCheck(v.polyNTTs[i], got.polyNTTs[i]), "element %d", i)
	}
}

func TestPolyVecZeroize(t *testing.T) {
	pp := InitializeKyber512()
	v := testRandomCanonicalPolyVec(t, pp, 0xA0)
	v.zeroize()
	for i := 0; i < pp.paramK; i++ {
		for j := 0; j < paramN; j++ {
			require.Zero(t, v.polys[i].coeffs[j])
		}
	}
}
