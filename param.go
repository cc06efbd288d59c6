package kyberx

import (
	"fmt"
	"log"
)

const (
	// paramN is the degree of the polynomial ring R_q = Z_q[X]/(X^N + 1).
	paramN = 256

	// paramQ is the prime modulus of the coefficient field.
	paramQ = 3329

	// paramQInv = q^{-1} mod 2^16, used by the Montgomery reduction.
	paramQInv = 62209

	// paramSymBytes is the byte length of seeds, coins and messages.
	paramSymBytes = 32

	// paramPolyBytes is the byte length of a full (uncompressed) polynomial:
	// 256 coefficients of 12 bits each.
	paramPolyBytes = 384
)

// PublicParameter carries the constants of one parameter set and all byte
// sizes derived from them. All operations of the scheme are methods on a
// PublicParameter, so that the three parameter sets share a single
// implementation.
type PublicParameter struct {
	// paramK is the module rank: the public matrix A is paramK x paramK
	// polynomials, keys are vectors of paramK polynomials.
	paramK int

	// paramEta1 bounds the centered-binomial noise of the secret and error
	// vectors in key generation and of the ephemeral secret in encryption.
	paramEta1 int

	// paramEta2 bounds the centered-binomial noise added to the ciphertext.
	paramEta2 int

	// paramDU and paramDV are the ciphertext compression widths in bits per
	// coefficient, for the vector part and the polynomial part respectively.
	paramDU int
	paramDV int

	paramPolyVecBytes           int
	paramPolyCompressedBytes    int
	paramPolyVecCompressedBytes int
	paramPublicKeyBytes         int
	paramSecretKeyBytes         int
	paramCiphertextBytes        int
}

// NewPublicParameter assembles a parameter set from its defining constants and
// derives the byte sizes. It rejects any tuple outside the three supported
// parameter sets.
func NewPublicParameter(paramK int, paramEta1 int, paramEta2 int, paramDU int, paramDV int) (*PublicParameter, error) {
	switch {
	case paramK == 2 && paramEta1 == 3 && paramEta2 == 2 && paramDU == 10 && paramDV == 4:
	case paramK == 3 && paramEta1 == 2 && paramEta2 == 2 && paramDU == 10 && paramDV == 4:
	case paramK == 4 && paramEta1 == 2 && paramEta2 == 2 && paramDU == 11 && paramDV == 5:
	default:
		return nil, fmt.Errorf("NewPublicParameter: unsupported parameter tuple (k=%d, eta1=%d, eta2=%d, du=%d, dv=%d)",
			paramK, paramEta1, paramEta2, paramDU, paramDV)
	}

	res := &PublicParameter{
		paramK:    paramK,
		paramEta1: paramEta1,
		paramEta2: paramEta2,
		paramDU:   paramDU,
		paramDV:   paramDV,
	}

	res.paramPolyVecBytes = paramK * paramPolyBytes
	res.paramPolyCompressedBytes = paramN * paramDV / 8
	res.paramPolyVecCompressedBytes = paramK * paramN * paramDU / 8
	res.paramPublicKeyBytes = res.paramPolyVecBytes + paramSymBytes
	res.paramSecretKeyBytes = res.paramPolyVecBytes
	res.paramCiphertextBytes = res.paramPolyVecCompressedBytes + res.paramPolyCompressedBytes

	return res, nil
}

// InitializeKyber512 returns the parameter set with k=2.
func InitializeKyber512() *PublicParameter {
	pp, err := NewPublicParameter(2, 3, 2, 10, 4)
	if err != nil {
		log.Panic(err)
	}
	return pp
}

// InitializeKyber768 returns the parameter set with k=3.
func InitializeKyber768() *PublicParameter {
	pp, err := NewPublicParameter(3, 2, 2, 10, 4)
	if err != nil {
		log.Panic(err)
	}
	return pp
}

// InitializeKyber1024 returns the parameter set with k=4.
func InitializeKyber1024() *PublicParameter {
	pp, err := NewPublicParameter(4, 2, 2, 11, 5)
	if err != nil {
		log.Panic(err)
	}
	return pp
}

// KeyGenSeedBytesLen returns the byte length of the key-generation seed.
func (pp *PublicParameter) KeyGenSeedBytesLen() int {
	return paramSymBytes
}

// MessageBytesLen returns the byte length of a plaintext message.
func (pp *PublicParameter) MessageBytesLen() int {
	return paramSymBytes
}

// CoinsBytesLen returns the byte length of the encryption randomness.
func (pp *PublicParameter) CoinsBytesLen() int {
	return paramSymBytes
}

// PolyNTTSerializeSize returns the byte length of one serialized polynomial.
func (pp *PublicParameter) PolyNTTSerializeSize() int {
	return paramPolyBytes
}

// PolyNTTVecSerializeSize returns the byte length of a serialized vector of
// paramK polynomials.
func (pp *PublicParameter) PolyNTTVecSerializeSize() int {
	return pp.paramPolyVecBytes
}

// PublicKeySerializeSize returns the byte length of a serialized public key.
func (pp *PublicParameter) PublicKeySerializeSize() int {
	return pp.paramPublicKeyBytes
}

// SecretKeySerializeSize returns the byte length of a serialized secret key.
func (pp *PublicParameter) SecretKeySerializeSize() int {
	return pp.paramSecretKeyBytes
}

// CiphertextSerializeSize returns the byte length of a ciphertext.
func (pp *PublicParameter) CiphertextSerializeSize() int {
	return pp.paramCiphertextBytes
}
