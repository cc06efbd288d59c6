package kyberx

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// keyGen derives a key pair from a 32-byte seed. SHA3-512 splits the seed
// into the public matrix seed and the noise seed; the secret vector s and the
// error vector e are centered-binomial with eta1, and the published vector is
// t = A s + e, computed entirely in the NTT domain.
func (pp *PublicParameter) keyGen(seed []byte) (*PublicKey, *SecretKey, error) {
	if len(seed) != paramSymBytes {
		return nil, nil, fmt.Errorf("keyGen: the input seed has length %d, rather than the expected %d", len(seed), paramSymBytes)
	}

	hashed := sha3.Sum512(seed)
	publicSeed := make([]byte, paramSymBytes)
	noiseSeed := make([]byte, paramSymBytes)
	copy(publicSeed, hashed[:paramSymBytes])
	copy(noiseSeed, hashed[paramSymBytes:])
	clearBytes(hashed[:])
	defer clearBytes(noiseSeed)

	matrixA, err := pp.ExpandMatrixA(publicSeed, false)
	if err != nil {
		return nil, nil, err
	}

	s := &PolyVec{polys: make([]*Poly, pp.paramK)}
	e := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		if s.polys[i], err = pp.randomPolyCBD(noiseSeed, byte(i), pp.paramEta1); err != nil {
			return nil, nil, err
		}
		if e.polys[i], err = pp.randomPolyCBD(noiseSeed, byte(i+pp.paramK), pp.paramEta1); err != nil {
			return nil, nil, err
		}
	}

	sNTTRaw := pp.NTTPolyVec(s)
	sNTT := pp.PolyNTTVecReduce(sNTTRaw)
	eNTT := pp.NTTPolyVec(e)
	s.zeroize()
	e.zeroize()
	sNTTRaw.zeroize()

	t := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		t.polyNTTs[i] = pp.PolyNTTToMont(pp.PolyNTTVecPointWiseAccMont(matrixA[i], sNTT))
	}
	t = pp.PolyNTTVecReduce(pp.PolyNTTVecAdd(t, eNTT))
	eNTT.zeroize()

	return &PublicKey{t: t, seed: publicSeed}, &SecretKey{s: sNTT}, nil
}

// encrypt hides a 32-byte message under pk with the deterministic randomness
// coins: u = A^T r + e1 and v = t.r + e2 + msg, returned compressed as
// compress(u) || compress(v). Ephemeral secrets are wiped before returning.
func (pp *PublicParameter) encrypt(pk *PublicKey, msg []byte, coins []byte) ([]byte, error) {
	if len(msg) != paramSymBytes {
		return nil, fmt.Errorf("encrypt: the input message has length %d, rather than the expected %d", len(msg), paramSymBytes)
	}
	if len(coins) != paramSymBytes {
		return nil, fmt.Errorf("encrypt: the input coins have length %d, rather than the expected %d", len(coins), paramSymBytes)
	}

	kPoly := pp.PolyFromMsg(msg)
	defer kPoly.zeroize()

	matrixAT, err := pp.ExpandMatrixA(pk.seed, true)
	if err != nil {
		return nil, err
	}

	sp := &PolyVec{polys: make([]*Poly, pp.paramK)}
	ep := &PolyVec{polys: make([]*Poly, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		if sp.polys[i], err = pp.randomPolyCBD(coins, byte(i), pp.paramEta1); err != nil {
			return nil, err
		}
		if ep.polys[i], err = pp.randomPolyCBD(coins, byte(i+pp.paramK), pp.paramEta2); err != nil {
			return nil, err
		}
	}
	epp, err := pp.randomPolyCBD(coins, byte(2*pp.paramK), pp.paramEta2)
	if err != nil {
		return nil, err
	}
	defer ep.zeroize()
	defer epp.zeroize()

	spNTTRaw := pp.NTTPolyVec(sp)
	spNTT := pp.PolyNTTVecReduce(spNTTRaw)
	sp.zeroize()
	spNTTRaw.zeroize()
	defer spNTT.zeroize()

	bpNTT := &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
	for i := 0; i < pp.paramK; i++ {
		bpNTT.polyNTTs[i] = pp.PolyNTTVecPointWiseAccMont(matrixAT[i], spNTT)
	}
	bp := pp.PolyVecReduce(pp.PolyVecAdd(pp.NTTInvPolyVec(bpNTT), ep))

	v := pp.NTTInvPoly(pp.PolyNTTVecPointWiseAccMont(pk.t, spNTT))
	v = pp.PolyReduce(pp.PolyAdd(pp.PolyAdd(v, epp), kPoly))

	ct := make([]byte, 0, pp.paramCiphertextBytes)
	ct = append(ct, pp.CompressPolyVec(bp)...)
	ct = append(ct, pp.CompressPoly(v)...)
	return ct, nil
}

// decrypt recovers the message as round(v - s.u). It never rejects: any input
// of the right length decrypts to some 32-byte message, tampering detection
// belongs to the layer above.
func (pp *PublicParameter) decrypt(ct []byte, sk *SecretKey) ([]byte, error) {
	if len(ct) != pp.paramCiphertextBytes {
		return nil, fmt.Errorf("decrypt: the input ciphertext has length %d, rather than the expected %d", len(ct), pp.paramCiphertextBytes)
	}
	if sk == nil || sk.s == nil || len(sk.s.polyNTTs) != pp.paramK {
		return nil, fmt.Errorf("decrypt: the input secret key is nil or malformed")
	}

	bp := pp.DecompressPolyVec(ct[:pp.paramPolyVecCompressedBytes])
	v := pp.DecompressPoly(ct[pp.paramPolyVecCompressedBytes:])

	bpNTT := pp.NTTPolyVec(bp)
	mpAcc := pp.NTTInvPoly(pp.PolyNTTVecPointWiseAccMont(sk.s, bpNTT))
	mp := pp.PolyReduce(pp.PolySub(v, mpAcc))
	mpAcc.zeroize()
	defer mp.zeroize()

	return pp.PolyToMsg(mp), nil
}
