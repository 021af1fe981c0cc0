package schnorr

import (
	"encoding/hex"
	"testing"
)

// hexToBytes decodes a hex string, failing the test on malformed input.
func hexToBytes(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

// hexToField decodes a 32-byte hex string into a field element.
func hexToField(t testing.TB, s string) FieldElement {
	t.Helper()
	var fe FieldElement
	if fe.setB32(hexToBytes(t, s)) {
		t.Fatalf("%s is not below the field prime", s)
	}
	return fe
}

// hexToScalar decodes a 32-byte hex string into a scalar.
func hexToScalar(t testing.TB, s string) Scalar {
	t.Helper()
	return NewScalar(hexToBytes(t, s))
}

// mustPanicKind runs f and checks that it panics with an Error of the given
// kind.
func mustPanicKind(t *testing.T, kind ErrorKind, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", kind)
		}
		err, ok := r.(Error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an Error", r, r)
		}
		if err.Err != kind {
			t.Fatalf("panic kind %v, want %v", err.Err, kind)
		}
	}()
	f()
}
