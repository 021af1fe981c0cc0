package signer

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"schnorr.mleku.dev"
)

func TestSigner_Generate(t *testing.T) {
	s := New()
	require.NoError(t, s.Generate())

	sec := s.Sec()
	require.Len(t, sec, 32)
	require.True(t, schnorr.SeckeyVerify(sec))

	pub := s.Pub()
	require.Len(t, pub, 32)

	expected, err := schnorr.KeyGen(sec)
	require.NoError(t, err)
	require.Equal(t, expected, pub)

	msg := make([]byte, 32)
	sig, err := s.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	valid, err := s.Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, valid)

	// Test with wrong message
	wrongMsg := make([]byte, 32)
	wrongMsg[0] = 1
	valid, err = s.Verify(wrongMsg, sig)
	require.NoError(t, err)
	require.False(t, valid)

	s.Zero()
	require.Nil(t, s.Sec())
	require.Nil(t, s.Pub())
}

func TestSigner_InitSec(t *testing.T) {
	seckey, err := hex.DecodeString("B7E151628AED2A6ABF7158809CF4F3C762E7160F38B4DA56A784D9045190CFEF")
	require.NoError(t, err)
	msg, err := hex.DecodeString("243F6A8885A308D313198A2E03707344A4093822299F31D0082EFA98EC4E6C89")
	require.NoError(t, err)

	s := New()
	require.NoError(t, s.InitSec(seckey))
	require.Equal(t, seckey, s.Sec())
	require.Equal(t,
		"dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659",
		hex.EncodeToString(s.Pub()))

	sig, err := s.Sign(msg)
	require.NoError(t, err)
	require.Equal(t,
		"667c2f778e0616e611bd0c14b8a600c5884551701a949ef0ebfd72d452d64e84"+
			"4160bcfc3f466ecb8facd19ade57d8699d74e7207d78c6aedc3799b52a8e0598",
		hex.EncodeToString(sig))

	// The signer matches the package level functions.
	direct, err := schnorr.Sign(msg, seckey)
	require.NoError(t, err)
	require.Equal(t, direct, sig)
}

func TestSigner_InitSecInvalid(t *testing.T) {
	s := New()
	require.Error(t, s.InitSec(make([]byte, 31)))

	err := s.InitSec(make([]byte, 32))
	require.ErrorIs(t, err, schnorr.ErrInvalidSecretKey)
	require.Nil(t, s.Sec())
	require.Nil(t, s.Pub())
}

func TestSigner_InitPub(t *testing.T) {
	signer := New()
	require.NoError(t, signer.Generate())

	msg := make([]byte, 32)
	msg[31] = 0x42
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	verifier := New()
	require.NoError(t, verifier.InitPub(signer.Pub()))
	require.Nil(t, verifier.Sec())
	require.Equal(t, signer.Pub(), verifier.Pub())

	valid, err := verifier.Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, valid)

	// A verify-only holder cannot sign.
	_, err = verifier.Sign(msg)
	require.Error(t, err)

	// Replacing a keypair with a public key drops the secret.
	require.NoError(t, signer.InitPub(verifier.Pub()))
	require.Nil(t, signer.Sec())
}

func TestSigner_InitPubInvalid(t *testing.T) {
	s := New()
	require.Error(t, s.InitPub(make([]byte, 33)))

	notOnCurve := make([]byte, 32)
	notOnCurve[31] = 5
	require.ErrorIs(t, s.InitPub(notOnCurve), schnorr.ErrPubKeyNotOnCurve)
}

func TestSigner_BoundaryErrors(t *testing.T) {
	empty := New()
	_, err := empty.Verify(make([]byte, 32), make([]byte, 64))
	require.Error(t, err, "verify without a public key")

	s := New()
	require.NoError(t, s.Generate())

	_, err = s.Sign(make([]byte, 31))
	require.Error(t, err)

	_, err = s.Verify(make([]byte, 31), make([]byte, 64))
	require.Error(t, err)

	_, err = s.Verify(make([]byte, 32), make([]byte, 63))
	require.Error(t, err)

	// A well formed but wrong signature is a plain false.
	valid, err := s.Verify(make([]byte, 32), make([]byte, 64))
	require.NoError(t, err)
	require.False(t, valid)
}
