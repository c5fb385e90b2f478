// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	ring "github.com/ringproto/ed25519ring"
)

func makeRing(t *testing.T, n, signerIndex int) ([]*PublicKey, *PrivateKey) {
	t.Helper()

	keys := make([]*PublicKey, n)
	var signer *PrivateKey
	for i := 0; i < n; i++ {
		k, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		keys[i] = k.PublicKey()
		if i == signerIndex {
			signer = k
		}
	}
	return keys, signer
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		for s := 0; s < n; s++ {
			keys, signer := makeRing(t, n, s)
			msg := []byte("ring signature test message")

			sig, err := Sign(rand.Reader, msg, keys, signer, s)
			require.NoError(t, err)
			require.True(t, Verify(msg, sig))

			require.Len(t, sig.PublicKeys, n)
			require.Len(t, sig.C, n)
			require.Len(t, sig.R, n)
		}
	}
}

func TestSignVerifySingleMemberKnownKey(t *testing.T) {
	// x = 1, ring = [G], empty message.
	one := oneScalar(t)
	signer, err := NewPrivateKey(one.Bytes())
	require.NoError(t, err)

	ringKeys := []*PublicKey{signer.PublicKey()}
	msg := []byte("")

	sig, err := Sign(rand.Reader, msg, ringKeys, signer, 0)
	require.NoError(t, err)
	require.True(t, Verify(msg, sig))

	expectedImage := ring.NewIdentityPoint().ScalarMult(one, ring.HashToPoint(ring.NewGeneratorPoint()))
	require.True(t, sig.KeyImage.Point().Equal(expectedImage))
}

func TestVerifyFailsOnTamperedC(t *testing.T) {
	n, s := 5, 2
	keys, signer := makeRing(t, n, s)
	msg := []byte("tamper test")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)
	require.True(t, Verify(msg, sig))

	sig.C[0] = ring.NewScalar().Add(sig.C[0], oneScalar(t))
	require.False(t, Verify(msg, sig))
}

func TestVerifyFailsOnTamperedR(t *testing.T) {
	n, s := 4, 1
	keys, signer := makeRing(t, n, s)
	msg := []byte("tamper r")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	sig.R[0] = ring.NewScalar().Add(sig.R[0], oneScalar(t))
	require.False(t, Verify(msg, sig))
}

func TestVerifyFailsOnTamperedKeyImage(t *testing.T) {
	n, s := 3, 0
	keys, signer := makeRing(t, n, s)
	msg := []byte("tamper image")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	other, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	sig.KeyImage = other.KeyImage()
	require.False(t, Verify(msg, sig))
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	n, s := 3, 1
	keys, signer := makeRing(t, n, s)
	msg := []byte("original message")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)
	require.True(t, Verify(msg, sig))
	require.False(t, Verify([]byte("tampered message"), sig))
}

func TestLinkabilitySameKeyAcrossMessagesAndRings(t *testing.T) {
	signer, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	decoys1 := make([]*PublicKey, 2)
	for i := range decoys1 {
		k, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		decoys1[i] = k.PublicKey()
	}
	ring1 := append([]*PublicKey{signer.PublicKey()}, decoys1...)

	decoys2 := make([]*PublicKey, 2)
	for i := range decoys2 {
		k, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		decoys2[i] = k.PublicKey()
	}
	ring2 := append(decoys2, signer.PublicKey())

	sig1, err := Sign(rand.Reader, []byte("message one"), ring1, signer, 0)
	require.NoError(t, err)
	sig2, err := Sign(rand.Reader, []byte("message two"), ring2, signer, len(ring2)-1)
	require.NoError(t, err)

	require.True(t, sig1.KeyImage.Equal(sig2.KeyImage))
	require.True(t, sig1.KeyImage.Equal(signer.KeyImage()))
}

func TestSignRejectsZeroSizeRing(t *testing.T) {
	signer, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = Sign(rand.Reader, []byte("m"), nil, signer, 0)
	require.ErrorIs(t, err, ErrRingSizeInvalid)
}

func TestSignRejectsOutOfRangeIndex(t *testing.T) {
	keys, signer := makeRing(t, 3, 0)

	_, err := Sign(rand.Reader, []byte("m"), keys, signer, 3)
	require.ErrorIs(t, err, ErrKeyIndexOutOfRange)

	_, err = Sign(rand.Reader, []byte("m"), keys, signer, -1)
	require.ErrorIs(t, err, ErrKeyIndexOutOfRange)
}

func TestSignRejectsMismatchedIndex(t *testing.T) {
	keys, signer := makeRing(t, 3, 0)

	_, err := Sign(rand.Reader, []byte("m"), keys, signer, 1)
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestVerifyRejectsShapeMismatch(t *testing.T) {
	keys, signer := makeRing(t, 3, 0)
	sig, err := Sign(rand.Reader, []byte("m"), keys, signer, 0)
	require.NoError(t, err)

	sig.C = sig.C[:len(sig.C)-1]
	require.False(t, Verify([]byte("m"), sig))
}
