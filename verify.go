package schnorr

// schnorrVerify checks a parsed signature against a decoded public key. It
// has a single false outcome for every failure.
func schnorrVerify(sig *Signature, msg32 []byte, xonly *XOnlyPubkey) bool {
	r32 := sig.r.bytes()
	e := challenge(r32[:], xonly.data[:], msg32)

	// R = s*G - e*P
	r := EcmultCombined(sig.s, e.negate(), xonly.point)

	return r.hasQuadY() && r.x.equal(sig.r)
}

// SchnorrVerify verifies a 64-byte signature of a 32-byte message against an
// x-only public key. Malformed input is reported as false.
func SchnorrVerify(sig64 []byte, msg32 []byte, xonlyPubkey *XOnlyPubkey) bool {
	if len(msg32) != 32 || xonlyPubkey == nil {
		return false
	}
	// A zero XOnlyPubkey that did not come from a parser holds no point.
	if !xonlyPubkey.point.isValid() {
		return false
	}

	sig, err := ParseSignature(sig64)
	if err != nil {
		return false
	}

	return schnorrVerify(sig, msg32, xonlyPubkey)
}

// Verify verifies a 64-byte signature of a 32-byte message against a 32-byte
// x-only public key.
//
// Every failure, whether a wrong length, a public key that is not on the
// curve, an out of range r or s, or a failed equation, gives the same false
// result.
func Verify(msg, pubkey, sig []byte) bool {
	if len(msg) != 32 {
		return false
	}

	xonly, err := XOnlyPubkeyParse(pubkey)
	if err != nil {
		return false
	}

	return SchnorrVerify(sig, msg, xonly)
}
