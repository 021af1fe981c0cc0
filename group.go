package schnorr

// GroupElementAffine represents a point on the secp256k1 curve in affine
// coordinates (x, y), or the point at infinity when infinity is set. The
// coordinates of the point at infinity carry no meaning.
//
// Group elements are values; operations return new elements.
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// Generator point G for secp256k1 curve
var (
	// G = (0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798,
	//      0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8)
	Generator = GroupElementAffine{
		x: FieldElement{n: fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")},
		y: FieldElement{n: fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")},
	}

	// Infinity is the identity of the group.
	Infinity = GroupElementAffine{infinity: true}
)

// newGroupElement returns the affine point (x, y) without checking it.
func newGroupElement(x, y FieldElement) GroupElementAffine {
	return GroupElementAffine{x: x, y: y}
}

// isInfinity returns true if the group element is the point at infinity
func (a GroupElementAffine) isInfinity() bool {
	return a.infinity
}

// curveY2 returns x^3 + 7.
func curveY2(x FieldElement) FieldElement {
	return x.sqr().mul(x).add(fieldCurveB)
}

// isValid checks if the group element is on the curve. The point at infinity
// is not valid as a public key or nonce point.
func (a GroupElementAffine) isValid() bool {
	if a.infinity {
		return false
	}
	return a.y.sqr().equal(curveY2(a.x))
}

// setXQuad lifts an x coordinate to the curve point whose y is the square
// root of x^3 + 7 that is itself a quadratic residue. It returns false when
// x^3 + 7 is not a square, i.e. x is not on the curve.
func setXQuad(x FieldElement) (GroupElementAffine, bool) {
	y, ok := curveY2(x).sqrt()
	if !ok {
		return Infinity, false
	}
	return newGroupElement(x, y), true
}

// negate returns -a.
func (a GroupElementAffine) negate() GroupElementAffine {
	if a.infinity {
		return a
	}
	return newGroupElement(a.x, a.y.negate())
}

func (a GroupElementAffine) equal(b GroupElementAffine) bool {
	if a.infinity || b.infinity {
		return a.infinity == b.infinity
	}
	return a.x.equal(b.x) && a.y.equal(b.y)
}

// hasQuadY reports whether the point is finite and its y coordinate is a
// quadratic residue.
func (a GroupElementAffine) hasQuadY() bool {
	return !a.infinity && a.y.isQuad()
}

// add returns a + b using the affine group law.
func (a GroupElementAffine) add(b GroupElementAffine) GroupElementAffine {
	if a.infinity {
		return b
	}
	if b.infinity {
		return a
	}

	var lambda FieldElement
	if a.x.equal(b.x) {
		if !a.y.equal(b.y) {
			// b = -a
			return Infinity
		}
		// 3 * x^2 / (2 * y)
		lambda = a.x.sqr().mulInt(3).mul(a.y.mulInt(2).inv())
	} else {
		// (y2 - y1) / (x2 - x1)
		lambda = b.y.sub(a.y).mul(b.x.sub(a.x).inv())
	}

	x3 := lambda.sqr().sub(a.x).sub(b.x)
	y3 := lambda.mul(a.x.sub(x3)).sub(a.y)
	return newGroupElement(x3, y3)
}

// double returns 2a.
func (a GroupElementAffine) double() GroupElementAffine {
	return a.add(a)
}

// cmov returns b when flag is set and a otherwise.
func (a GroupElementAffine) cmov(b GroupElementAffine, flag bool) GroupElementAffine {
	if flag {
		return b
	}
	return a
}

// xOnly returns the 32-byte big-endian x coordinate.
func (a GroupElementAffine) xOnly() [32]byte {
	return a.x.bytes()
}
