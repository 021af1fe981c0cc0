package schnorr

// NonceFunctionDerive derives the deterministic nonce
// k0 = TaggedHash("BIPSchnorrDerive", seckey || msg) mod n.
//
// seckey must already be the normalized secret, i.e. the one whose public
// point has a quadratic-residue y.
func NonceFunctionDerive(seckey32, msg32 []byte) Scalar {
	return scalarFromHash(TaggedHash(bipSchnorrDeriveTag, seckey32, msg32))
}

// challenge computes e = TaggedHash("BIPSchnorr", r || pk || msg) mod n.
func challenge(r32, pk32, msg32 []byte) Scalar {
	return scalarFromHash(TaggedHash(bipSchnorrTag, r32, pk32, msg32))
}

// schnorrSign produces the signature of msg32 under d0 together with the
// nonce point R that it commits to. R always has a quadratic-residue y.
func schnorrSign(msg32 []byte, d0 Scalar) (sig [SignatureSize]byte, r GroupElementAffine, err error) {
	p := EcmultGen(d0)

	// The x-only public key denotes the point with square y, so sign with
	// the secret of that point.
	d := d0
	if !p.hasQuadY() {
		d = d0.negate()
	}

	d32 := d.bytes()
	k0 := NonceFunctionDerive(d32[:], msg32)
	clearBytes(d32[:])
	if k0.isZero() {
		return sig, Infinity, schnorrError(ErrZeroNonce,
			"derived nonce is zero, this happens only with negligible probability")
	}

	r = EcmultGen(k0)
	k := k0
	if !r.hasQuadY() {
		k = k0.negate()
		r = r.negate()
	}

	r32 := r.xOnly()
	p32 := p.xOnly()
	e := challenge(r32[:], p32[:], msg32)

	// s = k + e*d mod n
	s := k.add(e.mul(d))

	copy(sig[:32], r32[:])
	s.getB32(sig[32:])
	return sig, r, nil
}

// SchnorrSign creates a Schnorr signature of a 32-byte message with the
// keypair's secret key and writes it to sig64.
func SchnorrSign(sig64 []byte, msg32 []byte, keypair *KeyPair) error {
	if len(sig64) != SignatureSize {
		return schnorrError(ErrInvalidSigLen, "signature must be 64 bytes")
	}
	if len(msg32) != 32 {
		return schnorrError(ErrInvalidMessageLen, "message must be 32 bytes")
	}
	if keypair == nil {
		return schnorrError(ErrInvalidSecretKey, "keypair cannot be nil")
	}

	d, err := parseSeckey(keypair.seckey[:])
	if err != nil {
		return err
	}

	sig, _, err := schnorrSign(msg32, d)
	if err != nil {
		return err
	}
	copy(sig64, sig[:])
	return nil
}

// Sign signs a 32-byte message with a 32-byte secret key and returns the
// 64-byte signature. The result is fully determined by its inputs.
func Sign(msg, seckey []byte) ([]byte, error) {
	if len(msg) != 32 {
		return nil, schnorrError(ErrInvalidMessageLen, "message must be 32 bytes")
	}

	d, err := parseSeckey(seckey)
	if err != nil {
		return nil, err
	}

	sig, _, err := schnorrSign(msg, d)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}
