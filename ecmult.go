package schnorr

const (
	// scalarBits is the number of bit positions visited by every scalar
	// multiplication, independent of the scalar's bit length.
	scalarBits = 256
)

// Ecmult performs scalar multiplication: r = k*P.
//
// It walks all 256 bits of k from the least significant end. Every step
// computes both R + P and 2P and keeps the sum with a conditional move, so
// the sequence of group operations does not depend on k. Leading zero bits
// are not skipped.
func Ecmult(p GroupElementAffine, k Scalar) GroupElementAffine {
	r := Infinity
	for i := 0; i < scalarBits; i++ {
		sum := r.add(p)
		r = r.cmov(sum, k.bit(i))
		p = p.double()
	}
	return r
}

// EcmultCombined computes r = a*G + b*P, the verification equation.
func EcmultCombined(a Scalar, b Scalar, p GroupElementAffine) GroupElementAffine {
	return EcmultGen(a).add(Ecmult(p, b))
}
