package kyberx

// paramBarrettMultiplier = floor((2^26 + q/2) / q), the precomputed reciprocal
// of the Barrett reduction.
const paramBarrettMultiplier = 20159

// montgomeryReduce maps a in [-q*2^15, q*2^15) to a 16-bit integer congruent
// to a * 2^{-16} mod q, with absolute value smaller than q.
func montgomeryReduce(a int32) int16 {
	u := int16(a * int32(paramQInv))
	t := a - int32(u)*paramQ
	return int16(t >> 16)
}

// barrettReduce maps any 16-bit integer a to a representative of the same
// residue class with absolute value at most q; for the int16 input range the
// result is in fact in [0, q], so a single conditional subtraction
// canonicalizes it.
func barrettReduce(a int16) int16 {
	t := int16(int32(paramBarrettMultiplier) * int32(a) >> 26)
	return a - t*paramQ
}

// conditionalSubQ subtracts q from a if a >= q, without branching.
// For inputs in [0, 2q) the result is the canonical representative in [0, q).
func conditionalSubQ(a int16) int16 {
	a -= paramQ
	a += (a >> 15) & paramQ
	return a
}

// modQMulMont multiplies two coefficients, at least one of which is in
// Montgomery form, and returns the Montgomery-reduced product.
func modQMulMont(a int16, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}
