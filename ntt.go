package kyberx

// nttZetas holds the 128 powers of zeta = 17 mod q in bit-reversed order,
// stored in Montgomery form.
var nttZetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202, 3158, 622, 1577, 182, 962,
	2127, 1855, 1468, 573, 2004, 264, 383, 2500, 1458, 1727, 3199, 2648, 1017,
	732, 608, 1787, 411, 3124, 1758, 1223, 652, 2777, 1015, 2036, 1491, 3047,
	1785, 516, 3321, 3009, 2663, 1711, 2167, 126, 1469, 2476, 3239, 3058, 830,
	107, 1908, 3082, 2378, 2931, 961, 1821, 2604, 448, 2264, 677, 2054, 2226,
	430, 555, 843, 2078, 871, 1550, 105, 422, 587, 177, 3094, 3038, 2869, 1574,
	1653, 3083, 778, 1159, 3182, 2552, 1483, 2727, 1119, 1739, 644, 2457, 349,
	418, 329, 3173, 3254, 817, 1097, 603, 610, 1322, 2044, 1864, 384, 2114, 3193,
	1218, 1994, 2455, 220, 2142, 1670, 2144, 1799, 2051, 794, 1819, 2475, 2459,
	478, 3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// nttZetasInv holds the inverse twiddles in the order consumed by the inverse
// transform; the last entry is 128^{-1} * 2^32 mod q = 1441, which undoes the
// transform scaling in a single multiplication and leaves every coefficient
// multiplied by the Montgomery factor 2^16.
var nttZetasInv = [128]int16{
	1701, 1807, 1460, 2371, 2338, 2333, 308, 108, 2851, 870, 854, 1510, 2535,
	1278, 1530, 1185, 1659, 1187, 3109, 874, 1335, 2111, 136, 1215, 2945, 1465,
	1285, 2007, 2719, 2726, 2232, 2512, 75, 156, 3000, 2911, 2980, 872, 2685,
	1590, 2210, 602, 1846, 777, 147, 2170, 2551, 246, 1676, 1755, 460, 291, 235,
	3152, 2742, 2907, 3224, 1779, 2458, 1251, 2486, 2774, 2899, 1103, 1275, 2652,
	1065, 2881, 725, 1508, 2368, 398, 951, 247, 1421, 3222, 2499, 271, 90, 853,
	1860, 3203, 1162, 1618, 666, 320, 8, 2813, 1544, 282, 1838, 1293, 2314, 552,
	2677, 2106, 1571, 205, 2918, 1542, 2721, 2597, 2312, 681, 130, 1602, 1871,
	829, 2946, 3065, 1325, 2756, 1861, 1474, 1202, 2367, 3147, 1752, 2707, 171,
	3127, 3042, 1907, 1836, 1517, 359, 758, 1441,
}

// NTTPoly computes the negacyclic number-theoretic transform of a polynomial.
// Seven layers of Cooley-Tukey butterflies; the output coefficients are not
// reduced, callers must reduce before serializing.
func (pp *PublicParameter) NTTPoly(p *Poly) *PolyNTT {
	coeffs := make([]int16, paramN)
	copy(coeffs, p.coeffs)

	j := 0
	k := 1
	for l := 128; l >= 2; l >>= 1 {
		for start := 0; start < paramN; start = j + l {
			zeta := nttZetas[k]
			k++
			for j = start; j < start+l; j++ {
				t := modQMulMont(zeta, coeffs[j+l])
				coeffs[j+l] = coeffs[j] - t
				coeffs[j] = coeffs[j] + t
			}
		}
	}

	return &PolyNTT{coeffs}
}

// NTTInvPoly computes the inverse transform. The final pass multiplies every
// coefficient by nttZetasInv[127] = 1441, undoing the transform scaling; the
// output carries the Montgomery factor 2^16, which cancels the 2^{-16} that a
// basemul leaves on any product path.
func (pp *PublicParameter) NTTInvPoly(polyNTT *PolyNTT) *Poly {
	coeffs := make([]int16, paramN)
	copy(coeffs, polyNTT.coeffs)

	j := 0
	k := 0
	for l := 2; l <= 128; l <<= 1 {
		for start := 0; start < paramN; start = j + l {
			zeta := nttZetasInv[k]
			k++
			for j = start; j < start+l; j++ {
				t := coeffs[j]
				coeffs[j] = barrettReduce(t + coeffs[j+l])
				coeffs[j+l] = t - coeffs[j+l]
				coeffs[j+l] = modQMulMont(zeta, coeffs[j+l])
			}
		}
	}
	for j := 0; j < paramN; j++ {
		coeffs[j] = modQMulMont(coeffs[j], nttZetasInv[127])
	}

	return &Poly{coeffs}
}

// basemul multiplies the degree-one residues (a0 + a1 X) and (b0 + b1 X)
// modulo X^2 - zeta, all products through the Montgomery multiplier.
func basemul(a0, a1, b0, b1, zeta int16) (int16, int16) {
	return modQMulMont(modQMulMont(a1, b1), zeta) + modQMulMont(a0, b0),
		modQMulMont(a0, b1) + modQMulMont(a1, b0)
}

// PolyNTTMul multiplies two polynomials in the NTT domain: 128 independent
// basemuls over the residues modulo X^2 -+ zeta^{2 br(i)+1}. Every product
// carries the factor 2^{-16} of the Montgomery multiplier.
func (pp *PublicParameter) PolyNTTMul(a *PolyNTT, b *PolyNTT) *PolyNTT {
	rst := pp.NewPolyNTT()
	for i := 0; i < paramN/4; i++ {
		rst.coeffs[4*i+0], rst.coeffs[4*i+1] = basemul(
			a.coeffs[4*i+0], a.coeffs[4*i+1],
			b.coeffs[4*i+0], b.coeffs[4*i+1],
			nttZetas[64+i],
		)
		rst.coeffs[4*i+2], rst.coeffs[4*i+3] = basemul(
			a.coeffs[4*i+2], a.coeffs[4*i+3],
			b.coeffs[4*i+2], b.coeffs[4*i+3],
			-nttZetas[64+i],
		)
	}
	return rst
}
