package schnorr

import (
	"math/big"
)

// Scalar represents an integer modulo the order n of the secp256k1 group.
// Like FieldElement it is immutable and its zero value is 0.
type Scalar struct {
	n *big.Int
}

// Group order constants (secp256k1 curve order n)
var (
	groupOrder = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{n: big.NewInt(1)}
)

// NewScalar creates a new scalar from a 32-byte big-endian array, reducing
// modulo the group order
func NewScalar(b32 []byte) Scalar {
	if len(b32) != 32 {
		panic("input must be 32 bytes")
	}

	var s Scalar
	s.setB32(b32)
	return s
}

func newScalar(v *big.Int) Scalar {
	return Scalar{n: v.Mod(v, groupOrder)}
}

func scalarFromInt(a int64) Scalar {
	return newScalar(big.NewInt(a))
}

// bigInt returns the underlying integer. The result must not be modified.
func (a Scalar) bigInt() *big.Int {
	if a.n == nil {
		return bigZero
	}
	return a.n
}

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo group
// order. It reports whether the input was not below the order.
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	if len(bin) != 32 {
		panic("input must be 32 bytes")
	}
	v := new(big.Int).SetBytes(bin)
	overflow = v.Cmp(groupOrder) >= 0
	*r = newScalar(v)
	return overflow
}

// setB32Seckey sets a scalar from a 32-byte array and returns true if it's a
// valid secret key, i.e. in [1, n-1] without reduction
func (r *Scalar) setB32Seckey(bin []byte) bool {
	overflow := r.setB32(bin)
	return !overflow && !r.isZero()
}

// getB32 converts a scalar to a 32-byte big-endian array
func (a Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}
	a.bigInt().FillBytes(bin)
}

func (a Scalar) bytes() [32]byte {
	var b [32]byte
	a.getB32(b[:])
	return b
}

func (a Scalar) isZero() bool {
	return a.bigInt().Sign() == 0
}

func (a Scalar) equal(b Scalar) bool {
	return a.bigInt().Cmp(b.bigInt()) == 0
}

func (a Scalar) add(b Scalar) Scalar {
	return newScalar(new(big.Int).Add(a.bigInt(), b.bigInt()))
}

func (a Scalar) mul(b Scalar) Scalar {
	return newScalar(new(big.Int).Mul(a.bigInt(), b.bigInt()))
}

// negate returns n - a, or 0 for a = 0.
func (a Scalar) negate() Scalar {
	return newScalar(new(big.Int).Neg(a.bigInt()))
}

// bit returns bit i of the scalar, i in [0, 256).
func (a Scalar) bit(i int) bool {
	return a.bigInt().Bit(i) == 1
}

// scalarFromHash interprets a 32-byte digest as a big-endian integer reduced
// modulo n.
func scalarFromHash(h [32]byte) Scalar {
	var s Scalar
	s.setB32(h[:])
	return s
}
