package signer

import (
	"errors"

	"schnorr.mleku.dev"
)

// Signer implements I using the schnorr package
type Signer struct {
	keypair   *schnorr.KeyPair
	xonlyPub  *schnorr.XOnlyPubkey
	hasSecret bool // Whether we have the secret key (if false, can only verify)
}

var _ I = (*Signer)(nil)

// New creates a new Signer instance with no key
func New() *Signer {
	return &Signer{
		hasSecret: false,
	}
}

// Generate creates a fresh new key pair from system entropy
func (s *Signer) Generate() error {
	kp, err := schnorr.KeyPairGenerate()
	if err != nil {
		return err
	}

	s.setKeyPair(kp)
	return nil
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *Signer) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}

	kp, err := schnorr.KeyPairCreate(sec)
	if err != nil {
		return err
	}

	s.setKeyPair(kp)
	return nil
}

func (s *Signer) setKeyPair(kp *schnorr.KeyPair) {
	if s.keypair != nil {
		s.keypair.Clear()
	}
	s.keypair = kp
	s.xonlyPub = kp.XOnlyPubkey()
	s.hasSecret = true
}

// InitPub initializes the public (verification) key from raw bytes, this is expected to be an x-only 32 byte pubkey
func (s *Signer) InitPub(pub []byte) error {
	if len(pub) != 32 {
		return errors.New("public key must be 32 bytes")
	}

	xonly, err := schnorr.XOnlyPubkeyParse(pub)
	if err != nil {
		return err
	}

	if s.keypair != nil {
		s.keypair.Clear()
	}
	s.xonlyPub = xonly
	s.keypair = nil
	s.hasSecret = false

	return nil
}

// Sec returns the secret key bytes
func (s *Signer) Sec() []byte {
	if !s.hasSecret || s.keypair == nil {
		return nil
	}
	return s.keypair.Seckey()
}

// Pub returns the public key bytes (x-only schnorr pubkey)
func (s *Signer) Pub() []byte {
	if s.xonlyPub == nil {
		return nil
	}
	serialized := s.xonlyPub.Serialize()
	return serialized[:]
}

// Sign creates a signature using the stored secret key
func (s *Signer) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.keypair == nil {
		return nil, errors.New("no secret key available for signing")
	}

	if len(msg) != 32 {
		return nil, errors.New("message must be 32 bytes")
	}

	var sig64 [schnorr.SignatureSize]byte
	if err := schnorr.SchnorrSign(sig64[:], msg, s.keypair); err != nil {
		return nil, err
	}

	return sig64[:], nil
}

// Verify checks a message hash and signature match the stored public key
func (s *Signer) Verify(msg, sig []byte) (valid bool, err error) {
	if s.xonlyPub == nil {
		return false, errors.New("no public key available for verification")
	}

	if len(msg) != 32 {
		return false, errors.New("message must be 32 bytes")
	}

	if len(sig) != schnorr.SignatureSize {
		return false, errors.New("signature must be 64 bytes")
	}

	valid = schnorr.SchnorrVerify(sig, msg, s.xonlyPub)
	return valid, nil
}

// Zero wipes the secret key to prevent memory leaks
func (s *Signer) Zero() {
	if s.keypair != nil {
		s.keypair.Clear()
		s.keypair = nil
	}
	s.hasSecret = false
	s.xonlyPub = nil
}
