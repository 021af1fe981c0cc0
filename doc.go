/*
Package schnorr implements the BIPSchnorr draft signature scheme over the
secp256k1 curve: x-only public keys, deterministic nonces and signatures whose
nonce point R always has a quadratic-residue y coordinate.

The three operations are

  - KeyGen: 32-byte secret key to 32-byte x-only public key
  - Sign: 32-byte message and secret key to 64-byte signature r || s
  - Verify: message, public key and signature to a boolean

Nonces are derived with TaggedHash("BIPSchnorrDerive", d || m) and challenges
with TaggedHash("BIPSchnorr", r || P || m). Signing the same message with the
same key always yields the same signature.

KeyGen and Sign report malformed input with an Error whose kind can be tested
with errors.Is. Verify never reports why a signature was rejected.

Field and scalar arithmetic is done on math/big integers and all values are
immutable, so every function in the package is safe for concurrent use.
*/
package schnorr
