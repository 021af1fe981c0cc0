package schnorr

import (
	"sync"
)

// EcmultGenContext holds precomputed data for generator multiplication
type EcmultGenContext struct {
	// doubles[i] = 2^i * G in affine form
	doubles [scalarBits]GroupElementAffine
}

var (
	// Global context for generator multiplication (initialized once)
	globalGenContext *EcmultGenContext
	genContextOnce   sync.Once
)

// initGenContext fills the table of successive doublings of G.
func (ctx *EcmultGenContext) initGenContext() {
	p := Generator
	for i := 0; i < scalarBits; i++ {
		ctx.doubles[i] = p
		p = p.double()
	}
}

// getGlobalGenContext returns the global precomputed context, building it on
// first use. The table is read-only afterwards and safe for concurrent use.
func getGlobalGenContext() *EcmultGenContext {
	genContextOnce.Do(func() {
		ctx := &EcmultGenContext{}
		ctx.initGenContext()
		globalGenContext = ctx
	})
	return globalGenContext
}

// EcmultGen performs generator multiplication: r = k*G.
//
// The doublings come from the precomputed table; the walk over the 256 bits of
// k has the same select-every-step shape as Ecmult.
func EcmultGen(k Scalar) GroupElementAffine {
	ctx := getGlobalGenContext()

	r := Infinity
	for i := 0; i < scalarBits; i++ {
		sum := r.add(ctx.doubles[i])
		r = r.cmov(sum, k.bit(i))
	}
	return r
}
