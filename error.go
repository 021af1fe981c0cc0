package schnorr

import (
	ecschnorr "github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind = ecschnorr.ErrorKind

// Error identifies an error related to key generation or signing. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
//
// Verification never returns an Error; it only reports false.
type Error = ecschnorr.Error

// These constants are used to identify a specific Error.
const (
	// ErrInvalidSecretKey is returned when a secret key is not 32 bytes or
	// its value is not in the range [1, n-1].
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidMessageLen is returned when a message is not a 32-byte
	// digest.
	ErrInvalidMessageLen = ErrorKind("ErrInvalidMessageLen")

	// ErrInvalidPubKeyLen is returned when an x-only public key is not 32
	// bytes.
	ErrInvalidPubKeyLen = ErrorKind("ErrInvalidPubKeyLen")

	// ErrInvalidSigLen is returned when a signature is not 64 bytes.
	ErrInvalidSigLen = ErrorKind("ErrInvalidSigLen")

	// ErrPubKeyXTooBig is returned when a public key x coordinate is not
	// below the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyNotOnCurve is returned when x^3 + 7 has no square root for a
	// public key x coordinate.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrSigRTooBig is returned when a signature r is not below the field
	// prime.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigSTooBig is returned when a signature s is not below the group
	// order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")

	// ErrZeroNonce is returned when the derived nonce is zero. This happens
	// only with negligible probability and is not retried.
	ErrZeroNonce = ErrorKind("ErrZeroNonce")

	// ErrInternalInvariant is the kind carried by panics raised when an
	// arithmetic precondition is violated, such as inverting zero.
	ErrInternalInvariant = ErrorKind("ErrInternalInvariant")
)

// schnorrError creates an Error given a set of arguments.
func schnorrError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
