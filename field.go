package schnorr

import (
	"math/big"
)

// FieldElement represents an element of the secp256k1 base field, an integer
// in [0, p) with p = 2^256 - 2^32 - 977.
//
// Field elements are immutable: every operation returns a new value and never
// modifies its operands, so they can be copied and shared freely. The zero
// value is the element 0.
type FieldElement struct {
	n *big.Int
}

// Field constants
var (
	// fieldPrime is the secp256k1 field prime p.
	fieldPrime = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// fieldPrimeMinus2 is the Fermat inversion exponent p - 2.
	fieldPrimeMinus2 = new(big.Int).Sub(fieldPrime, big.NewInt(2))

	// fieldQuadExp is the Euler criterion exponent (p - 1) / 2.
	fieldQuadExp = new(big.Int).Rsh(new(big.Int).Sub(fieldPrime, big.NewInt(1)), 1)

	// fieldSqrtExp is the square root exponent (p + 1) / 4, valid because
	// p = 3 mod 4.
	fieldSqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(1)), 2)

	// bigZero is shared and must never be written to.
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// Field element constants
var (
	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{n: big.NewInt(1)}

	// fieldCurveB is the constant b = 7 of y^2 = x^3 + b.
	fieldCurveB = FieldElement{n: big.NewInt(7)}
)

// fromHex parses a hex constant, panicking on malformed input since it is
// only used for package-level constants.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex constant: " + s)
	}
	return v
}

// newFieldElement reduces v modulo p and takes ownership of it.
func newFieldElement(v *big.Int) FieldElement {
	return FieldElement{n: v.Mod(v, fieldPrime)}
}

// fieldFromInt returns the field element for a small integer.
func fieldFromInt(a int64) FieldElement {
	return newFieldElement(big.NewInt(a))
}

// bigInt returns the underlying integer. The result must not be modified.
func (a FieldElement) bigInt() *big.Int {
	if a.n == nil {
		return bigZero
	}
	return a.n
}

// setB32 parses a 32-byte big-endian value. Values that are not below the
// field prime are rejected rather than reduced: overflow is reported and a is
// left unchanged.
func (a *FieldElement) setB32(b []byte) (overflow bool) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fieldPrime) >= 0 {
		return true
	}
	a.n = v
	return false
}

// getB32 writes the element as 32 bytes big endian.
func (a FieldElement) getB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}
	a.bigInt().FillBytes(b)
}

// bytes returns the 32-byte big-endian encoding.
func (a FieldElement) bytes() [32]byte {
	var b [32]byte
	a.getB32(b[:])
	return b
}

func (a FieldElement) isZero() bool {
	return a.bigInt().Sign() == 0
}

func (a FieldElement) isOdd() bool {
	return a.bigInt().Bit(0) == 1
}

func (a FieldElement) equal(b FieldElement) bool {
	return a.bigInt().Cmp(b.bigInt()) == 0
}

func (a FieldElement) add(b FieldElement) FieldElement {
	return newFieldElement(new(big.Int).Add(a.bigInt(), b.bigInt()))
}

func (a FieldElement) sub(b FieldElement) FieldElement {
	return newFieldElement(new(big.Int).Sub(a.bigInt(), b.bigInt()))
}

func (a FieldElement) negate() FieldElement {
	return newFieldElement(new(big.Int).Neg(a.bigInt()))
}

func (a FieldElement) mul(b FieldElement) FieldElement {
	return newFieldElement(new(big.Int).Mul(a.bigInt(), b.bigInt()))
}

func (a FieldElement) mulInt(m int64) FieldElement {
	return newFieldElement(new(big.Int).Mul(a.bigInt(), big.NewInt(m)))
}

func (a FieldElement) sqr() FieldElement {
	return a.mul(a)
}

// exp returns a^e mod p.
func (a FieldElement) exp(e *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Exp(a.bigInt(), e, fieldPrime)}
}

// inv returns the multiplicative inverse a^(p-2). Inverting zero has no
// meaning in the group law and panics with an ErrInternalInvariant error;
// no valid input can reach it.
func (a FieldElement) inv() FieldElement {
	if a.isZero() {
		panic(schnorrError(ErrInternalInvariant, "inverse of zero field element"))
	}
	return a.exp(fieldPrimeMinus2)
}

// sqrt returns the principal square root a^((p+1)/4) and whether it really
// squares back to a. The principal root is itself always a square.
func (a FieldElement) sqrt() (FieldElement, bool) {
	r := a.exp(fieldSqrtExp)
	return r, r.sqr().equal(a)
}

// isQuad reports whether a is a non-zero quadratic residue, using Euler's
// criterion a^((p-1)/2) == 1.
func (a FieldElement) isQuad() bool {
	return a.exp(fieldQuadExp).bigInt().Cmp(bigOne) == 0
}

// cmov returns b when flag is set and a otherwise.
func (a FieldElement) cmov(b FieldElement, flag bool) FieldElement {
	if flag {
		return b
	}
	return a
}
