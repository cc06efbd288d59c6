package kyberx

import (
	"fmt"
)

// PublicKey is the encryption key: the vector t = A s + e in the NTT domain
// together with the 32-byte seed the matrix A was expanded from.
type PublicKey struct {
	t    *PolyNTTVec
	seed []byte
}

// SecretKey is the decryption key: the secret vector s in the NTT domain.
type SecretKey struct {
	s *PolyNTTVec
}

// Zeroize wipes the secret vector.
func (sk *SecretKey) Zeroize() {
	if sk.s != nil {
		sk.s.zeroize()
	}
}

// serializePolyNTT packs two canonicalized coefficients into three bytes.
// Coefficients are Barrett-reduced and brought to [0, q) first, so any
// in-range polynomial serializes to its unique 12-bit encoding.
func (pp *PublicParameter) serializePolyNTT(polyNTT *PolyNTT) []byte {
	rst := make([]byte, paramPolyBytes)
	for i := 0; i < paramN/2; i++ {
		t0 := uint16(conditionalSubQ(barrettReduce(polyNTT.coeffs[2*i])))
		t1 := uint16(conditionalSubQ(barrettReduce(polyNTT.coeffs[2*i+1])))
		rst[3*i+0] = byte(t0)
		rst[3*i+1] = byte(t0>>8) | byte(t1<<4)
		rst[3*i+2] = byte(t1 >> 4)
	}
	return rst
}

// deserializePolyNTT unpacks the 12-bit lanes written by serializePolyNTT.
func (pp *PublicParameter) deserializePolyNTT(serialized []byte) (*PolyNTT, error) {
	if len(serialized) != paramPolyBytes {
		return nil, fmt.Errorf("deserializePolyNTT: the input has length %d, rather than the expected %d", len(serialized), paramPolyBytes)
	}
	rst := pp.NewPolyNTT()
	for i := 0; i < paramN/2; i++ {
		rst.coeffs[2*i] = int16((uint16(serialized[3*i+0]) | (uint16(serialized[3*i+1]) << 8)) & 0xFFF)
		rst.coeffs[2*i+1] = int16(((uint16(serialized[3*i+1]) >> 4) | (uint16(serialized[3*i+2]) << 4)) & 0xFFF)
	}
	return rst, nil
}

// serializePolyNTTVec concatenates the element encodings.
func (pp *PublicParameter) serializePolyNTTVec(polyNTTVec *PolyNTTVec) []byte {
	rst := make([]byte, 0, pp.paramPolyVecBytes)
	for i := 0; i < pp.paramK; i++ {
		rst = append(rst, pp.serializePolyNTT(polyNTTVec.polyNTTs[i])...)
	}
	return rst
}

func (pp *PublicParameter) deserializePolyNTTVec(serialized []byte) (*PolyNTTVec, error) {
	if len(serialized) != pp.paramPolyVecBytes {
		return nil, fmt.Errorf("deserializePolyNTTVec: the input has length %d, rather than the expected %d", len(serialized), pp.paramPolyVecBytes)
	}
	rst := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		polyNTT, err := pp.deserializePolyNTT(serialized[i*paramPolyBytes : (i+1)*paramPolyBytes])
		if err != nil {
			return nil, err
		}
		rst.polyNTTs[i] = polyNTT
	}
	return rst, nil
}

// SerializePublicKey encodes the key vector followed by the matrix seed.
func (pp *PublicParameter) SerializePublicKey(pk *PublicKey) ([]byte, error) {
	if pk == nil || pk.t == nil || len(pk.t.polyNTTs) != pp.paramK {
		return nil, fmt.Errorf("SerializePublicKey: the input public key is nil or malformed")
	}
	if len(pk.seed) != paramSymBytes {
		return nil, fmt.Errorf("SerializePublicKey: the matrix seed has length %d, rather than the expected %d", len(pk.seed), paramSymBytes)
	}
	rst := make([]byte, 0, pp.paramPublicKeyBytes)
	rst = append(rst, pp.serializePolyNTTVec(pk.t)...)
	rst = append(rst, pk.seed...)
	return rst, nil
}

// DeserializePublicKey is the inverse of SerializePublicKey.
func (pp *PublicParameter) DeserializePublicKey(serialized []byte) (*PublicKey, error) {
	if len(serialized) != pp.paramPublicKeyBytes {
		return nil, fmt.Errorf("DeserializePublicKey: the input has length %d, rather than the expected %d", len(serialized), pp.paramPublicKeyBytes)
	}
	t, err := pp.deserializePolyNTTVec(serialized[:pp.paramPolyVecBytes])
	if err != nil {
		return nil, err
	}
	seed := make([]byte, paramSymBytes)
	copy(seed, serialized[pp.paramPolyVecBytes:])
	return &PublicKey{t: t, seed: seed}, nil
}

// SerializeSecretKey encodes the secret vector.
func (pp *PublicParameter) SerializeSecretKey(sk *SecretKey) ([]byte, error) {
	if sk == nil || sk.s == nil || len(sk.s.polyNTTs) != pp.paramK {
		return nil, fmt.Errorf("SerializeSecretKey: the input secret key is nil or malformed")
	}
	return pp.serializePolyNTTVec(sk.s), nil
}

// DeserializeSecretKey is the inverse of SerializeSecretKey.
func (pp *PublicParameter) DeserializeSecretKey(serialized []byte) (*SecretKey, error) {
	if len(serialized) != pp.paramSecretKeyBytes {
		return nil, fmt.Errorf("DeserializeSecretKey: the input has length %d, rather than the expected %d", len(serialized), pp.paramSecretKeyBytes)
	}
	s, err := pp.deserializePolyNTTVec(serialized)
	if err != nil {
		return nil, err
	}
	return &SecretKey{s: s}, nil
}
