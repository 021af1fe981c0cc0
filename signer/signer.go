// Package signer wraps the schnorr package behind a key-holder interface, so
// callers can sign and verify without handling raw key material directly.
package signer

// I is a key holder that can sign and verify 32-byte message digests.
//
// A holder initialised with InitPub can only verify.
type I interface {
	// Generate creates a fresh secret key from system entropy and derives
	// its x-only public key.
	Generate() error
	// InitSec initialises the secret (signing) key from the raw bytes, and
	// also derives the public key.
	InitSec(sec []byte) error
	// InitPub initialises the public (verification) key from a 32-byte
	// x-only encoding.
	InitPub(pub []byte) error
	// Sec returns the secret key bytes, or nil for a verify-only holder.
	Sec() []byte
	// Pub returns the 32-byte x-only public key.
	Pub() []byte
	// Sign creates a signature of a 32-byte message digest.
	Sign(msg []byte) (sig []byte, err error)
	// Verify checks a message digest and signature against the public key.
	// A signature that fails verification is reported as false with a nil
	// error.
	Verify(msg, sig []byte) (valid bool, err error)
	// Zero wipes the secret key.
	Zero()
}
