// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingSignatureDERRoundTrip(t *testing.T) {
	n, s := 4, 2
	keys, signer := makeRing(t, n, s)
	msg := []byte("der round trip")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	der, err := sig.MarshalDER()
	require.NoError(t, err)

	decoded, err := ParseRingSignature(der)
	require.NoError(t, err)

	require.True(t, Verify(msg, decoded))
	require.True(t, decoded.KeyImage.Equal(sig.KeyImage))
	for i := range sig.PublicKeys {
		require.True(t, decoded.PublicKeys[i].Equal(sig.PublicKeys[i]))
		require.True(t, decoded.C[i].Equal(sig.C[i]))
		require.True(t, decoded.R[i].Equal(sig.R[i]))
	}
}

func TestWithinRingSignatureDERRoundTrip(t *testing.T) {
	n, s := 3, 0
	keys, signer := makeRing(t, n, s)
	msg := []byte("within ring der round trip")

	sig, err := WithinRingSign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	der, err := sig.MarshalDER()
	require.NoError(t, err)

	decoded, err := ParseWithinRingSignature(der)
	require.NoError(t, err)

	ok, err := WithinRingVerify(msg, decoded, signer)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRingSignaturePEMRoundTrip(t *testing.T) {
	n, s := 3, 1
	keys, signer := makeRing(t, n, s)
	msg := []byte("pem round trip")

	sig, err := Sign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	armored, err := sig.ExportPEM()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(armored, "-----BEGIN RING SIGNATURE-----"))

	decoded, err := ImportPEM(armored)
	require.NoError(t, err)

	ringSig, ok := decoded.(*RingSignature)
	require.True(t, ok)
	require.True(t, Verify(msg, ringSig))
}

func TestWithinRingSignaturePEMRoundTrip(t *testing.T) {
	n, s := 3, 1
	keys, signer := makeRing(t, n, s)
	msg := []byte("within ring pem round trip")

	sig, err := WithinRingSign(rand.Reader, msg, keys, signer, s)
	require.NoError(t, err)

	armored, err := sig.ExportPEM()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(armored, "-----BEGIN WITHIN RING SIGNATURE-----"))

	decoded, err := ImportPEM(armored)
	require.NoError(t, err)

	withinSig, ok := decoded.(*WithinRingSignature)
	require.True(t, ok)

	ok2, err := WithinRingVerify(msg, withinSig, signer)
	require.NoError(t, err)
	require.True(t, ok2)
}

func TestImportPEMRejectsUnknownArmor(t *testing.T) {
	_, err := ImportPEM("-----BEGIN XXX-----\nAAAA\n-----END XXX-----\n")
	require.ErrorIs(t, err, ErrUnknownPEMType)
}

func TestParseRingSignatureRejectsNonCanonicalScalar(t *testing.T) {
	n, s := 2, 0
	keys, signer := makeRing(t, n, s)
	sig, err := Sign(rand.Reader, []byte("m"), keys, signer, s)
	require.NoError(t, err)

	der, err := sig.MarshalDER()
	require.NoError(t, err)

	// The DER's final byte is the most significant byte of the last `r`
	// scalar. Setting its top two bits makes that byte >= 0xc0, above
	// ℓ's top byte (0x10), so the scalar is always non-canonical.
	corrupted := append([]byte{}, der...)
	corrupted[len(corrupted)-1] |= 0x80
	corrupted[len(corrupted)-1] |= 0x40

	_, err = ParseRingSignature(corrupted)
	require.Error(t, err)
}

func TestMarshalDERRejectsEmptyRing(t *testing.T) {
	sig := &RingSignature{}
	_, err := sig.MarshalDER()
	require.ErrorIs(t, err, ErrRingSizeInvalid)
}

func TestMarshalDERRejectsShapeMismatch(t *testing.T) {
	n, s := 2, 0
	keys, signer := makeRing(t, n, s)
	sig, err := Sign(rand.Reader, []byte("m"), keys, signer, s)
	require.NoError(t, err)

	sig.R = sig.R[:1]
	_, err = sig.MarshalDER()
	require.ErrorIs(t, err, ErrRingShapeMismatch)
}
