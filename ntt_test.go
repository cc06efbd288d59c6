package kyberx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// testRandomCanonicalPoly derives a deterministic polynomial with canonical
// coefficients from the given domain byte, via rejection sampling on a fixed
// XOF stream.
func testRandomCanonicalPoly(t *testing.T, pp *PublicParameter, domain byte) *Poly {
	t.Helper()
	xof := sha3.NewShake128()
	_, err := xof.Write([]byte{'t', 'e', 's', 't', domain})
	require.NoError(t, err)

	rst := pp.NewPoly()
	buf := make([]byte, 3*xofBlockBytes)
	_, err = xof.Read(buf)
	require.NoError(t, err)
	got := rejectionSampleUniform(rst.coeffs, 0, buf)
	for got < paramN {
		_, err = xof.Read(buf[:xofBlockBytes])
		require.NoError(t, err)
		got = rejectionSampleUniform(rst.coeffs, got, buf[:xofBlockBytes])
	}
	return rst
}

func testCanonicalize(coeff int16) int16 {
	return conditionalSubQ(barrettReduce(coeff))
}

// schoolbookNegacyclicMul multiplies in R_q by the definition of the ring:
// X^256 = -1.
func schoolbookNegacyclicMul(a *Poly, b *Poly) *Poly {
	acc := make([]int64, paramN)
	for i := 0; i < paramN; i++ {
		for j := 0; j < paramN; j++ {
			prod := int64(a.coeffs[i]) * int64(b.coeffs[j])
			if i+j < paramN {
				acc[(i+j)%paramN] += prod
			} else {
				acc[(i+j)%paramN] -= prod
			}
		}
	}
	rst := &Poly{coeffs: make([]int16, paramN)}
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = int16(((acc[i] % paramQ) + paramQ) % paramQ)
	}
	return rst
}

func TestNTTInvNTTIsMontgomeryScaledIdentity(t *testing.T) {
	pp := InitializeKyber768()
	p := testRandomCanonicalPoly(t, pp, 0x01)

	got := pp.NTTInvPoly(pp.NTTPoly(p))

	// The inverse transform leaves the Montgomery factor 2^16 = 2285 mod q on
	// every coefficient; it is cancelled by the basemul of any product path.
	const rModQ = 2285
	for i := 0; i < paramN; i++ {
		want := int16(int32(p.coeffs[i]) * rModQ % paramQ)
		require.Equal(t, want, testCanonicalize(got.coeffs[i]), "coefficient %d", i)
	}
}

func TestPolyNTTMulMatchesSchoolbook(t *testing.T) {
	pp := InitializeKyber768()
	a := testRandomCanonicalPoly(t, pp, 0x02)
	b := testRandomCanonicalPoly(t, pp, 0x03)

	got := pp.NTTInvPoly(pp.PolyNTTMul(pp.NTTPoly(a), pp.NTTPoly(b)))
	want := schoolbookNegacyclicMul(a, b)

	for i := 0; i < paramN; i++ {
		require.Equal(t, want.coeffs[i], testCanonicalize(got.coeffs[i]), "coefficient %d", i)
	}
}

func TestPolyNTTVecPointWiseAccMontMatchesSchoolbook(t *testing.T) {
	pp := InitializeKyber512()

	a := &PolyVec{polys: make([]*Poly, pp.paramK)}
	b := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		a.polys[i] = testRandomCanonicalPoly(t, pp, byte(0x10+i))
		b.polys[i] = testRandomCanonicalPoly(t, pp, byte(0x20+i))
	}

	got := pp.NTTInvPoly(pp.PolyNTTVecPointWiseAccMont(pp.NTTPolyVec(a), pp.NTTPolyVec(b)))

	want := make([]int64, paramN)
	for i := 0; i < pp.paramK; i++ {
		prod := schoolbookNegacyclicMul(a.polys[i], b.polys[i])
		for j := 0; j < paramN; j++ {
			want[j] += int64(prod.coeffs[j])
		}
	}

	for i := 0; i < paramN; i++ {
		require.Equal(t, int16(want[i]%paramQ), testCanonicalize(got.coeffs[i]), "coefficient %d", i)
	}
}
