package kyberx

import "fmt"

// KeyGen generates a serialized key pair. A nil seed draws 32 fresh bytes
// from the system RNG; a caller-supplied seed must be exactly 32 bytes and
// makes the key pair deterministic.
func KeyGen(pp *PublicParameter, seed []byte) ([]byte, []byte, error) {
	if seed == nil {
		seed = RandomBytes(pp.KeyGenSeedBytesLen())
		defer clearBytes(seed)
	}
	if len(seed) != pp.KeyGenSeedBytesLen() {
		return nil, nil, fmt.Errorf("KeyGen: the input seed has length %d, rather than the expected %d: %w", len(seed), pp.KeyGenSeedBytesLen(), ErrLength)
	}

	pk, sk, err := pp.keyGen(seed)
	if err != nil {
		return nil, nil, err
	}
	defer sk.Zeroize()

	serializedPK, err := pp.SerializePublicKey(pk)
	if err != nil {
		return nil, nil, err
	}
	serializedSK, err := pp.SerializeSecretKey(sk)
	if err != nil {
		return nil, nil, err
	}
	return serializedPK, serializedSK, nil
}

// Encrypt encrypts a 32-byte message under a serialized public key, using the
// 32-byte coins as the deterministic encryption randomness.
func Encrypt(pp *PublicParameter, serializedPK []byte, msg []byte, coins []byte) ([]byte, error) {
	if len(serializedPK) != pp.PublicKeySerializeSize() {
		return nil, fmt.Errorf("Encrypt: the input public key has length %d, rather than the expected %d: %w", len(serializedPK), pp.PublicKeySerializeSize(), ErrLength)
	}
	if len(msg) != pp.MessageBytesLen() {
		return nil, fmt.Errorf("Encrypt: the input message has length %d, rather than the expected %d: %w", len(msg), pp.MessageBytesLen(), ErrLength)
	}
	if len(coins) != pp.CoinsBytesLen() {
		return nil, fmt.Errorf("Encrypt: the input coins have length %d, rather than the expected %d: %w", len(coins), pp.CoinsBytesLen(), ErrLength)
	}

	pk, err := pp.DeserializePublicKey(serializedPK)
	if err != nil {
		return nil, err
	}
	return pp.encrypt(pk, msg, coins)
}

// Decrypt decrypts a ciphertext under a serialized secret key. On inputs of
// the right length it always succeeds and returns 32 bytes; a tampered
// ciphertext yields a different message, never an error.
func Decrypt(pp *PublicParameter, serializedCT []byte, serializedSK []byte) ([]byte, error) {
	if len(serializedCT) != pp.CiphertextSerializeSize() {
		return nil, fmt.Errorf("Decrypt: the input ciphertext has length %d, rather than the expected %d: %w", len(serializedCT), pp.CiphertextSerializeSize(), ErrLength)
	}
	if len(serializedSK) != pp.SecretKeySerializeSize() {
		return nil, fmt.Errorf("Decrypt: the input secret key has length %d, rather than the expected %d: %w", len(serializedSK), pp.SecretKeySerializeSize(), ErrLength)
	}

	sk, err := pp.DeserializeSecretKey(serializedSK)
	if err != nil {
		return nil, err
	}
	defer sk.Zeroize()

	return pp.decrypt(serializedCT, sk)
}
