package schnorr

// SignatureSize is the size of an encoded signature: r || s.
const SignatureSize = 64

// Signature is a parsed signature: the x coordinate r of the nonce point and
// the scalar s.
type Signature struct {
	r FieldElement
	s Scalar
}

// ParseSignature parses a 64-byte signature, enforcing r < p and s < n.
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) != SignatureSize {
		return nil, schnorrError(ErrInvalidSigLen, "signature must be 64 bytes")
	}

	var r FieldElement
	if r.setB32(sig[:32]) {
		return nil, schnorrError(ErrSigRTooBig, "signature r is not below the field prime")
	}

	var s Scalar
	if s.setB32(sig[32:]) {
		return nil, schnorrError(ErrSigSTooBig, "signature s is not below the group order")
	}

	return &Signature{r: r, s: s}, nil
}

// Serialize returns the 64-byte encoding r || s.
func (sig *Signature) Serialize() [SignatureSize]byte {
	var b [SignatureSize]byte
	sig.r.getB32(b[:32])
	sig.s.getB32(b[32:])
	return b
}

// IsEqual reports whether two signatures are identical.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.equal(other.r) && sig.s.equal(other.s)
}
