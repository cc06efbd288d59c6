package kyberx

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

var ErrLength = errors.New("invalid length")

// xofBlockBytes is the rate of SHAKE-128; the matrix expansion squeezes the
// stream one rate at a time once the initial buffer is exhausted.
const xofBlockBytes = 168

// RandomBytes returns a byte array with given length from crypto/rand.Reader
func RandomBytes(length int) []byte {
	res := make([]byte, 0, length)

	neededLen := length
	var tmp []byte
	for neededLen > 0 {
		tmp = make([]byte, neededLen)
		// n == len(b) if and only if err == nil.
		n, err := rand.Read(tmp)
		if err != nil {
			continue
		}
		res = append(res, tmp[:n]...)
		neededLen -= n
	}
	return res
}

// rejectionSampleUniform walks buf in groups of three bytes, splitting each
// group into two 12-bit candidates and accepting those smaller than q. It
// fills coeffs from position got onward and returns the new fill count,
// stopping when coeffs is full or buf is exhausted.
func rejectionSampleUniform(coeffs []int16, got int, buf []byte) int {
	j := 0
	for got < len(coeffs) && j+3 <= len(buf) {
		d1 := (uint16(buf[j]) | (uint16(buf[j+1]) << 8)) & 0xFFF
		d2 := ((uint16(buf[j+1]) >> 4) | (uint16(buf[j+2]) << 4)) & 0xFFF
		j += 3

		if d1 < paramQ {
			coeffs[got] = int16(d1)
			got++
		}
		if got < len(coeffs) && d2 < paramQ {
			coeffs[got] = int16(d2)
			got++
		}
	}
	return got
}

// randomPolyNTTInQ expands one matrix entry from the XOF keyed with
// seed||x||y. The accepted samples are the NTT-domain representation by
// definition, no further transform is applied. The acceptance rate is
// q/4096, so an initial squeeze of three rates almost always suffices; the
// stream is extended one rate at a time otherwise.
func (pp *PublicParameter) randomPolyNTTInQ(seed []byte, x byte, y byte) (*PolyNTT, error) {
	tmpSeed := make([]byte, len(seed)+2)
	copy(tmpSeed, seed)
	tmpSeed[len(seed)] = x
	tmpSeed[len(seed)+1] = y

	xof := sha3.NewShake128()
	xof.Reset()
	if _, err := xof.Write(tmpSeed); err != nil {
		return nil, err
	}

	rst := pp.NewPolyNTT()
	buf := make([]byte, 3*xofBlockBytes)
	if _, err := xof.Read(buf); err != nil {
		return nil, err
	}
	got := rejectionSampleUniform(rst.coeffs, 0, buf)
	for got < paramN {
		if _, err := xof.Read(buf[:xofBlockBytes]); err != nil {
			return nil, err
		}
		got = rejectionSampleUniform(rst.coeffs, got, buf[:xofBlockBytes])
	}
	return rst, nil
}

// ExpandMatrixA expands the paramK x paramK public matrix from a 32-byte
// seed. Entry (i,j) is sampled from the XOF keyed with seed||j||i, or
// seed||i||j when transposed, so that the transposed expansion of a seed is
// exactly the transpose of the plain expansion.
func (pp *PublicParameter) ExpandMatrixA(seed []byte, transposed bool) ([]*PolyNTTVec, error) {
	if len(seed) != paramSymBytes {
		return nil, fmt.Errorf("ExpandMatrixA: the input seed has length %d, rather than the expected %d", len(seed), paramSymBytes)
	}

	rst := make([]*PolyNTTVec, pp.paramK)
	for i := 0; i < pp.paramK; i++ {
		rst[i] = &PolyNTTVec{polyNTTs: make([]*PolyNTT, pp.paramK)}
		for j := 0; j < pp.paramK; j++ {
			x, y := byte(j), byte(i)
			if transposed {
				x, y = byte(i), byte(j)
			}
			entry, err := pp.randomPolyNTTInQ(seed, x, y)
			if err != nil {
				return nil, err
			}
			rst[i].polyNTTs[j] = entry
		}
	}
	return rst, nil
}

func load24LittleEndian(buf []byte) uint32 {
	rst := uint32(buf[0])
	rst |= uint32(buf[1]) << 8
	rst |= uint32(buf[2]) << 16
	return rst
}

func load32LittleEndian(buf []byte) uint32 {
	rst := uint32(buf[0])
	rst |= uint32(buf[1]) << 8
	rst |= uint32(buf[2]) << 16
	rst |= uint32(buf[3]) << 24
	return rst
}

// cbdEta2 samples a polynomial from the centered binomial distribution with
// eta = 2: each coefficient is the difference of two 2-bit Hamming weights,
// eight coefficients per 32-bit word of the input stream.
func (pp *PublicParameter) cbdEta2(buf []byte) *Poly {
	rst := pp.NewPoly()
	for i := 0; i < paramN/8; i++ {
		t := load32LittleEndian(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555
		for j := 0; j < 8; j++ {
			a := int16((d >> (4*j + 0)) & 0x3)
			b := int16((d >> (4*j + 2)) & 0x3)
			rst.coeffs[8*i+j] = a - b
		}
	}
	return rst
}

// cbdEta3 samples with eta = 3: difference of two 3-bit Hamming weights, four
// coefficients per 24-bit word.
func (pp *PublicParameter) cbdEta3(buf []byte) *Poly {
	rst := pp.NewPoly()
	for i := 0; i < paramN/4; i++ {
		t := load24LittleEndian(buf[3*i:])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249
		for j := 0; j < 4; j++ {
			a := int16((d >> (6*j + 0)) & 0x7)
			b := int16((d >> (6*j + 3)) & 0x7)
			rst.coeffs[4*i+j] = a - b
		}
	}
	return rst
}

// randomPolyCBD derives eta*64 bytes from SHAKE-256 over seed||nonce and
// feeds them to the centered binomial sampler. The intermediate stream is
// wiped before returning.
func (pp *PublicParameter) randomPolyCBD(seed []byte, nonce byte, eta int) (*Poly, error) {
	if len(seed) != paramSymBytes {
		return nil, fmt.Errorf("randomPolyCBD: the input seed has length %d, rather than the expected %d", len(seed), paramSymBytes)
	}

	tmpSeed := make([]byte, len(seed)+1)
	copy(tmpSeed, seed)
	tmpSeed[len(seed)] = nonce

	buf := make([]byte, eta*paramN/4)
	sha3.ShakeSum256(buf, tmpSeed)
	defer clearBytes(buf)
	defer clearBytes(tmpSeed)

	switch eta {
	case 2:
		return pp.cbdEta2(buf), nil
	case 3:
		return pp.cbdEta3(buf), nil
	default:
		return nil, fmt.Errorf("randomPolyCBD: unsupported eta %d", eta)
	}
}
