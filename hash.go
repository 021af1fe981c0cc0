package schnorr

import (
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// Tags of the two domain-separated hashes used by the scheme.
var (
	// bipSchnorrDeriveTag is used for nonce derivation
	bipSchnorrDeriveTag = []byte("BIPSchnorrDerive")

	// bipSchnorrTag is used for the challenge
	bipSchnorrTag = []byte("BIPSchnorr")
)

// Precomputed TaggedHash prefixes for the scheme's tags
// They are computed once, on first use.
var (
	bipSchnorrDeriveTagHash [32]byte
	bipSchnorrTagHash       [32]byte
	taggedHashInitOnce      sync.Once
)

func initTaggedHashPrefixes() {
	bipSchnorrDeriveTagHash = sha256simd.Sum256(bipSchnorrDeriveTag)
	bipSchnorrTagHash = sha256simd.Sum256(bipSchnorrTag)
}

// getTaggedHashPrefix returns SHA256(tag), from the precomputed values for the
// scheme's own tags.
func getTaggedHashPrefix(tag []byte) [32]byte {
	taggedHashInitOnce.Do(initTaggedHashPrefixes)

	switch string(tag) {
	case "BIPSchnorrDerive":
		return bipSchnorrDeriveTagHash
	case "BIPSchnorr":
		return bipSchnorrTagHash
	}

	return sha256simd.Sum256(tag)
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data...).
// The data slices are hashed in order as if concatenated.
func TaggedHash(tag []byte, data ...[]byte) [32]byte {
	var result [32]byte

	tagHash := getTaggedHashPrefix(tag)

	h := sha256simd.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, d := range data {
		h.Write(d)
	}
	copy(result[:], h.Sum(nil))

	return result
}
