package kyberx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSetSizes(t *testing.T) {
	tests := []struct {
		name           string
		pp             *PublicParameter
		publicKeyLen   int
		secretKeyLen   int
		ciphertextLen  int
	}{
		{"Kyber512", InitializeKyber512(), 800, 768, 768},
		{"Kyber768", InitializeKyber768(), 1184, 1152, 1088},
		{"Kyber1024", InitializeKyber1024(), 1568, 1536, 1568},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.publicKeyLen, tc.pp.PublicKeySerializeSize())
			require.Equal(t, tc.secretKeyLen, tc.pp.SecretKeySerializeSize())
			require.Equal(t, tc.ciphertextLen, tc.pp.CiphertextSerializeSize())
			require.Equal(t, paramSymBytes, tc.pp.MessageBytesLen())
			require.Equal(t, paramSymBytes, tc.pp.CoinsBytesLen())
			require.Equal(t, paramSymBytes, tc.pp.KeyGenSeedBytesLen())
			require.Equal(t, paramPolyBytes, tc.pp.PolyNTTSerializeSize())
			require.Equal(t, tc.pp.paramK*paramPolyBytes, tc.pp.PolyNTTVecSerializeSize())
		})
	}
}

func TestNewPublicParameterRejectsUnsupportedTuples(t *testing.T) {
	cases := [][5]int{
		{1, 3, 2, 10, 4},
		{5, 2, 2, 11, 5},
		{2, 2, 2, 10, 4},
		{3, 2, 2, 11, 5},
		{4, 2, 2, 10, 4},
		{3, 3, 3, 10, 4},
	}
	for _, c := range cases {
		_, err := NewPublicParameter(c[0], c[1], c[2], c[3], c[4])
		require.Error(t, err, "tuple %v", c)
	}
}

func TestNewPublicParameterAcceptsSupportedTuples(t *testing.T) {
	cases := [][5]int{
		{2, 3, 2, 10, 4},
		{3, 2, 2, 10, 4},
		{4, 2, 2, 11, 5},
	}
	for _, c := range cases {
		pp, err := NewPublicParameter(c[0], c[1], c[2], c[3], c[4])
		require.NoError(t, err, "tuple %v", c)
		require.Equal(t, c[0], pp.paramK)
	}
}
