package schnorr

import (
	"crypto/rand"
)

// SeckeyVerify verifies that a 32-byte array is a valid secret key
func SeckeyVerify(seckey []byte) bool {
	if len(seckey) != 32 {
		return false
	}

	var scalar Scalar
	return scalar.setB32Seckey(seckey)
}

// SeckeyGenerate generates a new random secret key
func SeckeyGenerate() ([]byte, error) {
	seckey := make([]byte, 32)
	for {
		if _, err := rand.Read(seckey); err != nil {
			return nil, err
		}

		if SeckeyVerify(seckey) {
			return seckey, nil
		}
	}
}

// parseSeckey loads a secret key scalar, rejecting anything outside [1, n-1].
func parseSeckey(seckey []byte) (Scalar, error) {
	if len(seckey) != 32 {
		return ScalarZero, schnorrError(ErrInvalidSecretKey, "secret key must be 32 bytes")
	}

	var d Scalar
	if !d.setB32Seckey(seckey) {
		return ScalarZero, schnorrError(ErrInvalidSecretKey,
			"secret key must be an integer in the range 1..n-1")
	}
	return d, nil
}

// KeyGen derives the 32-byte x-only public key x(d*G) of a secret key d.
func KeyGen(seckey []byte) ([]byte, error) {
	d, err := parseSeckey(seckey)
	if err != nil {
		return nil, err
	}

	pk := EcmultGen(d).xOnly()
	return pk[:], nil
}
