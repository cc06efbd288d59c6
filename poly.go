package kyberx

import "log"

// Poly is a polynomial of the ring R_q in the standard (coefficient) domain.
// Coefficients are signed 16-bit; canonical representatives in [0, q) only
// after an explicit reduction.
type Poly struct {
	coeffs []int16
}

// PolyNTT is a polynomial in the NTT domain.
type PolyNTT struct {
	coeffs []int16
}

// NewPoly
func (pp *PublicParameter) NewPoly() *Poly {
	return &Poly{coeffs: make([]int16, paramN)}
}

// NewPolyNTT
func (pp *PublicParameter) NewPolyNTT() *PolyNTT {
	return &PolyNTT{coeffs: make([]int16, paramN)}
}

// PolyAdd adds coefficient-wise without reduction.
func (pp *PublicParameter) PolyAdd(a *Poly, b *Poly) *Poly {
	if len(a.coeffs) != paramN || len(b.coeffs) != paramN {
		log.Panic("PolyAdd: the input polynomials do not have paramN coefficients")
	}
	rst := pp.NewPoly()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
	return rst
}

// PolySub subtracts coefficient-wise without reduction.
func (pp *PublicParameter) PolySub(a *Poly, b *Poly) *Poly {
	if len(a.coeffs) != paramN || len(b.coeffs) != paramN {
		log.Panic("PolySub: the input polynomials do not have paramN coefficients")
	}
	rst := pp.NewPoly()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
	return rst
}

// PolyNTTAdd adds coefficient-wise in the NTT domain, without reduction.
func (pp *PublicParameter) PolyNTTAdd(a *PolyNTT, b *PolyNTT) *PolyNTT {
	if len(a.coeffs) != paramN || len(b.coeffs) != paramN {
		log.Panic("PolyNTTAdd: the input polynomials do not have paramN coefficients")
	}
	rst := pp.NewPolyNTT()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
	return rst
}

// PolyReduce Barrett-reduces every coefficient.
func (pp *PublicParameter) PolyReduce(p *Poly) *Poly {
	rst := pp.NewPoly()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = barrettReduce(p.coeffs[i])
	}
	return rst
}

// PolyNTTReduce Barrett-reduces every coefficient.
func (pp *PublicParameter) PolyNTTReduce(p *PolyNTT) *PolyNTT {
	rst := pp.NewPolyNTT()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = barrettReduce(p.coeffs[i])
	}
	return rst
}

// PolyNTTToMont brings every coefficient into Montgomery form by multiplying
// with 2^32 mod q = 1353 through the Montgomery multiplier.
func (pp *PublicParameter) PolyNTTToMont(p *PolyNTT) *PolyNTT {
	const f = int16((uint64(1) << 32) % paramQ)
	rst := pp.NewPolyNTT()
	for i := 0; i < paramN; i++ {
		rst.coeffs[i] = montgomeryReduce(int32(p.coeffs[i]) * int32(f))
	}
	return rst
}

// PolyNTTEqualCheck
func (pp *PublicParameter) PolyNTTEqualCheck(a *PolyNTT, b *PolyNTT) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a.coeffs) != paramN || len(b.coeffs) != paramN {
		return false
	}
	for i := 0; i < paramN; i++ {
		if a.coeffs[i] != b.coeffs[i] {
			return false
		}
	}
	return true
}

// PolyFromMsg maps a 32-byte message to a polynomial, bit i of the message
// selecting coefficient i as round(q/2) = 1665 or 0.
func (pp *PublicParameter) PolyFromMsg(msg []byte) *Poly {
	if len(msg) != paramSymBytes {
		log.Panic("PolyFromMsg: the input message does not have paramSymBytes bytes")
	}
	rst := pp.NewPoly()
	for i := 0; i < paramN/8; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> j) & 1)
			rst.coeffs[8*i+j] = mask & int16((paramQ+1)/2)
		}
	}
	return rst
}

// PolyToMsg recovers a 32-byte message from a polynomial by rounding each
// canonicalized coefficient to the nearest multiple of q/2. The rounding is a
// multiplication by a precomputed reciprocal, no secret-dependent division.
func (pp *PublicParameter) PolyToMsg(p *Poly) []byte {
	msg := make([]byte, paramSymBytes)
	for i := 0; i < paramN/8; i++ {
		for j := 0; j < 8; j++ {
			t := uint32(conditionalSubQ(barrettReduce(p.coeffs[8*i+j])))
			t = (t << 1) + (paramQ+1)/2
			t = ((t * 80635) >> 28) & 1
			msg[i] |= byte(t << j)
		}
	}
	return msg
}

// CompressPoly compresses to paramDV bits per coefficient and packs the
// result: two coefficients per byte for dv=4, eight coefficients in five
// bytes for dv=5. Rounding is via precomputed reciprocals of q.
func (pp *PublicParameter) CompressPoly(p *Poly) []byte {
	rst := make([]byte, pp.paramPolyCompressedBytes)
	t := make([]byte, 8)

	switch pp.paramDV {
	case 4:
		idx := 0
		for i := 0; i < paramN/8; i++ {
			for j := 0; j < 8; j++ {
				c := uint32(conditionalSubQ(barrettReduce(p.coeffs[8*i+j])))
				t[j] = byte((((c << 4) + (paramQ+1)/2) * 80635 >> 28) & 15)
			}
			rst[idx+0] = t[0] | (t[1] << 4)
			rst[idx+1] = t[2] | (t[3] << 4)
			rst[idx+2] = t[4] | (t[5] << 4)
			rst[idx+3] = t[6] | (t[7] << 4)
			idx += 4
		}
	case 5:
		idx := 0
		for i := 0; i < paramN/8; i++ {
			for j := 0; j < 8; j++ {
				c := uint32(conditionalSubQ(barrettReduce(p.coeffs[8*i+j])))
				t[j] = byte((((c << 5) + paramQ/2) * 40318 >> 27) & 31)
			}
			rst[idx+0] = (t[0] >> 0) | (t[1] << 5)
			rst[idx+1] = (t[1] >> 3) | (t[2] << 2) | (t[3] << 7)
			rst[idx+2] = (t[3] >> 1) | (t[4] << 4)
			rst[idx+3] = (t[4] >> 4) | (t[5] << 1) | (t[6] << 6)
			rst[idx+4] = (t[6] >> 2) | (t[7] << 3)
			idx += 5
		}
	default:
		log.Panic("CompressPoly: unsupported dv")
	}

	return rst
}

// DecompressPoly is the approximate inverse of CompressPoly.
func (pp *PublicParameter) DecompressPoly(serialized []byte) *Poly {
	if len(serialized) != pp.paramPolyCompressedBytes {
		log.Panic("DecompressPoly: the input does not have paramPolyCompressedBytes bytes")
	}
	rst := pp.NewPoly()

	switch pp.paramDV {
	case 4:
		idx := 0
		for i := 0; i < paramN/2; i++ {
			rst.coeffs[2*i+0] = int16(((uint16(serialized[idx]&15) * paramQ) + 8) >> 4)
			rst.coeffs[2*i+1] = int16(((uint16(serialized[idx]>>4) * paramQ) + 8) >> 4)
			idx++
		}
	case 5:
		t := make([]byte, 8)
		idx := 0
		for i := 0; i < paramN/8; i++ {
			t[0] = serialized[idx+0] >> 0
			t[1] = (serialized[idx+0] >> 5) | (serialized[idx+1] << 3)
			t[2] = serialized[idx+1] >> 2
			t[3] = (serialized[idx+1] >> 7) | (serialized[idx+2] << 1)
			t[4] = (serialized[idx+2] >> 4) | (serialized[idx+3] << 4)
			t[5] = serialized[idx+3] >> 1
			t[6] = (serialized[idx+3] >> 6) | (serialized[idx+4] << 2)
			t[7] = serialized[idx+4] >> 3
			idx += 5
			for j := 0; j < 8; j++ {
				rst.coeffs[8*i+j] = int16(((uint32(t[j]&31) * paramQ) + 16) >> 5)
			}
		}
	default:
		log.Panic("DecompressPoly: unsupported dv")
	}

	return rst
}

// zeroize wipes the coefficients. Used on secret and noise polynomials before
// they go out of scope.
func (p *Poly) zeroize() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

func (p *PolyNTT) zeroize() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

// clearBytes wipes a byte buffer holding secret material.
func clearBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
