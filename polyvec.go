package kyberx

import "log"

// PolyVec is a vector of paramK polynomials in the standard domain.
type PolyVec struct {
	polys []*Poly
}

// PolyNTTVec is a vector of paramK polynomials in the NTT domain.
type PolyNTTVec struct {
	polyNTTs []*PolyNTT
}

// NewPolyVec
func (pp *PublicParameter) NewPolyVec() *PolyVec {
	polys := make([]*Poly, pp.paramK)
	for i := 0; i < pp.paramK; i++ {
		polys[i] = pp.NewPoly()
	}
	return &PolyVec{polys: polys}
}

// NewPolyNTTVec
func (pp *PublicParameter) NewPolyNTTVec() *PolyNTTVec {
	polyNTTs := make([]*PolyNTT, pp.paramK)
	for i := 0; i < pp.paramK; i++ {
		polyNTTs[i] = pp.NewPolyNTT()
	}
	return &PolyNTTVec{polyNTTs: polyNTTs}
}

// NTTPolyVec transforms every element of the vector.
func (pp *PublicParameter) NTTPolyVec(polyVec *PolyVec) *PolyNTTVec {
	if len(polyVec.polys) != pp.paramK {
		log.Panic("NTTPolyVec: the input vector does not have paramK elements")
	}
	rst := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polyNTTs[i] = pp.NTTPoly(polyVec.polys[i])
	}
	return rst
}

// NTTInvPolyVec inverse-transforms every element of the vector.
func (pp *PublicParameter) NTTInvPolyVec(polyNTTVec *PolyNTTVec) *PolyVec {
	if len(polyNTTVec.polyNTTs) != pp.paramK {
		log.Panic("NTTInvPolyVec: the input vector does not have paramK elements")
	}
	rst := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polys[i] = pp.NTTInvPoly(polyNTTVec.polyNTTs[i])
	}
	return rst
}

// PolyVecAdd adds element-wise without reduction.
func (pp *PublicParameter) PolyVecAdd(a *PolyVec, b *PolyVec) *PolyVec {
	if len(a.polys) != pp.paramK || len(b.polys) != pp.paramK {
		log.Panic("PolyVecAdd: the input vectors do not have paramK elements")
	}
	rst := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polys[i] = pp.PolyAdd(a.polys[i], b.polys[i])
	}
	return rst
}

// PolyNTTVecAdd adds element-wise in the NTT domain, without reduction.
func (pp *PublicParameter) PolyNTTVecAdd(a *PolyNTTVec, b *PolyNTTVec) *PolyNTTVec {
	if len(a.polyNTTs) != pp.paramK || len(b.polyNTTs) != pp.paramK {
		log.Panic("PolyNTTVecAdd: the input vectors do not have paramK elements")
	}
	rst := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polyNTTs[i] = pp.PolyNTTAdd(a.polyNTTs[i], b.polyNTTs[i])
	}
	return rst
}

// PolyVecReduce Barrett-reduces every coefficient of every element.
func (pp *PublicParameter) PolyVecReduce(polyVec *PolyVec) *PolyVec {
	rst := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polys[i] = pp.PolyReduce(polyVec.polys[i])
	}
	return rst
}

// PolyNTTVecReduce Barrett-reduces every coefficient of every element.
func (pp *PublicParameter) PolyNTTVecReduce(polyNTTVec *PolyNTTVec) *PolyNTTVec {
	rst := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		rst.polyNTTs[i] = pp.PolyNTTReduce(polyNTTVec.polyNTTs[i])
	}
	return rst
}

// PolyNTTVecPointWiseAccMont computes the inner product of two vectors in the
// NTT domain, accumulating the basemul products and reducing once at the end.
// The result carries the factor 2^{-16} of the Montgomery multiplier.
func (pp *PublicParameter) PolyNTTVecPointWiseAccMont(a *PolyNTTVec, b *PolyNTTVec) *PolyNTT {
	if len(a.polyNTTs) != pp.paramK || len(b.polyNTTs) != pp.paramK {
		log.Panic("PolyNTTVecPointWiseAccMont: the input vectors do not have paramK elements")
	}
	rst := pp.PolyNTTMul(a.polyNTTs[0], b.polyNTTs[0])
	for i := 1; i < pp.paramK; i++ {
		rst = pp.PolyNTTAdd(rst, pp.PolyNTTMul(a.polyNTTs[i], b.polyNTTs[i]))
	}
	return pp.PolyNTTReduce(rst)
}

// CompressPolyVec compresses every element to paramDU bits per coefficient:
// four coefficients in five bytes for du=10, eight coefficients in eleven
// bytes for du=11.
func (pp *PublicParameter) CompressPolyVec(polyVec *PolyVec) []byte {
	if len(polyVec.polys) != pp.paramK {
		log.Panic("CompressPolyVec: the input vector does not have paramK elements")
	}
	rst := make([]byte, pp.paramPolyVecCompressedBytes)
	idx := 0

	switch pp.paramDU {
	case 10:
		t := make([]uint16, 4)
		for i := 0; i < pp.paramK; i++ {
			for j := 0; j < paramN/4; j++ {
				for k := 0; k < 4; k++ {
					c := uint64(conditionalSubQ(barrettReduce(polyVec.polys[i].coeffs[4*j+k])))
					t[k] = uint16((((c << 10) + (paramQ+1)/2) * 1290167 >> 32) & 0x3FF)
				}
				rst[idx+0] = byte(t[0] >> 0)
				rst[idx+1] = byte((t[0] >> 8) | (t[1] << 2))
				rst[idx+2] = byte((t[1] >> 6) | (t[2] << 4))
				rst[idx+3] = byte((t[2] >> 4) | (t[3] << 6))
				rst[idx+4] = byte(t[3] >> 2)
				idx += 5
			}
		}
	case 11:
		t := make([]uint16, 8)
		for i := 0; i < pp.paramK; i++ {
			for j := 0; j < paramN/8; j++ {
				for k := 0; k < 8; k++ {
					c := uint64(conditionalSubQ(barrettReduce(polyVec.polys[i].coeffs[8*j+k])))
					t[k] = uint16((((c << 11) + paramQ/2) * 645084 >> 31) & 0x7FF)
				}
				rst[idx+0] = byte(t[0] >> 0)
				rst[idx+1] = byte((t[0] >> 8) | (t[1] << 3))
				rst[idx+2] = byte((t[1] >> 5) | (t[2] << 6))
				rst[idx+3] = byte(t[2] >> 2)
				rst[idx+4] = byte((t[2] >> 10) | (t[3] << 1))
				rst[idx+5] = byte((t[3] >> 7) | (t[4] << 4))
				rst[idx+6] = byte((t[4] >> 4) | (t[5] << 7))
				rst[idx+7] = byte(t[5] >> 1)
				rst[idx+8] = byte((t[5] >> 9) | (t[6] << 2))
				rst[idx+9] = byte((t[6] >> 6) | (t[7] << 5))
				rst[idx+10] = byte(t[7] >> 3)
				idx += 11
			}
		}
	default:
		log.Panic("CompressPolyVec: unsupported du")
	}

	return rst
}

// DecompressPolyVec is the approximate inverse of CompressPolyVec.
func (pp *PublicParameter) DecompressPolyVec(serialized []byte) *PolyVec {
	if len(serialized) != pp.paramPolyVecCompressedBytes {
		log.Panic("DecompressPolyVec: the input does not have paramPolyVecCompressedBytes bytes")
	}
	rst := pp.NewPolyVec()
	idx := 0

	switch pp.paramDU {
	case 10:
		t := make([]uint16, 4)
		for i := 0; i < pp.paramK; i++ {
			for j := 0; j < paramN/4; j++ {
				t[0] = (uint16(serialized[idx+0]) >> 0) | (uint16(serialized[idx+1]) << 8)
				t[1] = (uint16(serialized[idx+1]) >> 2) | (uint16(serialized[idx+2]) << 6)
				t[2] = (uint16(serialized[idx+2]) >> 4) | (uint16(serialized[idx+3]) << 4)
				t[3] = (uint16(serialized[idx+3]) >> 6) | (uint16(serialized[idx+4]) << 2)
				idx += 5
				for k := 0; k < 4; k++ {
					rst.polys[i].coeffs[4*j+k] = int16((uint32(t[k]&0x3FF)*paramQ + 512) >> 10)
				}
			}
		}
	case 11:
		t := make([]uint16, 8)
		for i := 0; i < pp.paramK; i++ {
			for j := 0; j < paramN/8; j++ {
				t[0] = (uint16(serialized[idx+0]) >> 0) | (uint16(serialized[idx+1]) << 8)
				t[1] = (uint16(serialized[idx+1]) >> 3) | (uint16(serialized[idx+2]) << 5)
				t[2] = (uint16(serialized[idx+2]) >> 6) | (uint16(serialized[idx+3]) << 2) | (uint16(serialized[idx+4]) << 10)
				t[3] = (uint16(serialized[idx+4]) >> 1) | (uint16(serialized[idx+5]) << 7)
				t[4] = (uint16(serialized[idx+5]) >> 4) | (uint16(serialized[idx+6]) << 4)
				t[5] = (uint16(serialized[idx+6]) >> 7) | (uint16(serialized[idx+7]) << 1) | (uint16(serialized[idx+8]) << 9)
				t[6] = (uint16(serialized[idx+8]) >> 2) | (uint16(serialized[idx+9]) << 6)
				t[7] = (uint16(serialized[idx+9]) >> 5) | (uint16(serialized[idx+10]) << 3)
				idx += 11
				for k := 0; k < 8; k++ {
					rst.polys[i].coeffs[8*j+k] = int16((uint32(t[k]&0x7FF)*paramQ + 1024) >> 11)
				}
			}
		}
	default:
		log.Panic("DecompressPolyVec: unsupported du")
	}

	return rst
}

func (v *PolyVec) zeroize() {
	for _, p := range v.polys {
		p.zeroize()
	}
}

func (v *PolyNTTVec) zeroize() {
	for _, p := range v.polyNTTs {
		p.zeroize()
	}
}
