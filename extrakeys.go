package schnorr

import (
	"bytes"
)

// XOnlyPubkey represents an x-only public key (32 bytes, just X coordinate).
// The point it stands for is always the one whose y coordinate is a quadratic
// residue.
type XOnlyPubkey struct {
	data  [32]byte
	point GroupElementAffine
}

// KeyPair represents a keypair consisting of a secret key and its x-only
// public key
type KeyPair struct {
	seckey [32]byte
	pubkey XOnlyPubkey
}

// XOnlyPubkeyParse parses a 32-byte sequence into an x-only public key
func XOnlyPubkeyParse(input32 []byte) (*XOnlyPubkey, error) {
	if len(input32) != 32 {
		return nil, schnorrError(ErrInvalidPubKeyLen, "public key must be 32 bytes")
	}

	var x FieldElement
	if x.setB32(input32) {
		return nil, schnorrError(ErrPubKeyXTooBig, "public key x coordinate is not below the field prime")
	}

	point, ok := setXQuad(x)
	if !ok {
		return nil, schnorrError(ErrPubKeyNotOnCurve, "public key x coordinate is not on the curve")
	}

	xonly := &XOnlyPubkey{point: point}
	copy(xonly.data[:], input32)
	return xonly, nil
}

// xonlyFromPoint builds the x-only key of a finite point. The stored point is
// the quadratic-residue lift, which may be the negation of p.
func xonlyFromPoint(p GroupElementAffine) XOnlyPubkey {
	return XOnlyPubkey{
		data:  p.xOnly(),
		point: p.cmov(p.negate(), !p.hasQuadY()),
	}
}

// Serialize serializes an x-only public key to 32 bytes
func (xonly *XOnlyPubkey) Serialize() [32]byte {
	return xonly.data
}

// XOnlyPubkeyCmp compares two x-only public keys lexicographically
// Returns: <0 if xonly1 < xonly2, >0 if xonly1 > xonly2, 0 if equal
func XOnlyPubkeyCmp(xonly1, xonly2 *XOnlyPubkey) int {
	if xonly1 == nil || xonly2 == nil {
		panic("xonly pubkey cannot be nil")
	}
	return bytes.Compare(xonly1.data[:], xonly2.data[:])
}

// KeyPairCreate creates a keypair from a secret key
func KeyPairCreate(seckey []byte) (*KeyPair, error) {
	d, err := parseSeckey(seckey)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{pubkey: xonlyFromPoint(EcmultGen(d))}
	copy(kp.seckey[:], seckey)
	return kp, nil
}

// KeyPairGenerate generates a new random keypair
func KeyPairGenerate() (*KeyPair, error) {
	seckey, err := SeckeyGenerate()
	if err != nil {
		return nil, err
	}
	defer clearBytes(seckey)

	return KeyPairCreate(seckey)
}

// Seckey returns a copy of the secret key bytes
func (kp *KeyPair) Seckey() []byte {
	seckey := make([]byte, 32)
	copy(seckey, kp.seckey[:])
	return seckey
}

// XOnlyPubkey returns the x-only public key of the keypair
func (kp *KeyPair) XOnlyPubkey() *XOnlyPubkey {
	xonly := kp.pubkey
	return &xonly
}

// Clear clears the secret key
func (kp *KeyPair) Clear() {
	clearBytes(kp.seckey[:])
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
