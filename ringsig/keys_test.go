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

func TestPrivateKeyRoundTrip(t *testing.T) {
	k, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	decoded, err := NewPrivateKey(k.Bytes())
	require.NoError(t, err)
	require.True(t, decoded.Equal(k))
	require.True(t, decoded.PublicKey().Equal(k.PublicKey()))
}

func TestPublicKeyRoundTrip(t *testing.T) {
	k, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	decoded, err := NewPublicKey(k.PublicKey().Bytes())
	require.NoError(t, err)
	require.True(t, decoded.Equal(k.PublicKey()))
}

func TestKeyImageDeterministic(t *testing.T) {
	k, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	a := k.KeyImage()
	b := k.KeyImage()
	require.True(t, a.Equal(b))
}

func TestKeyImageKnownValue(t *testing.T) {
	// x = 1, so the key image is 1*HashToPoint(G).
	one := oneScalar(t)
	k, err := NewPrivateKey(one.Bytes())
	require.NoError(t, err)
	require.True(t, k.PublicKey().Point().Equal(ring.NewGeneratorPoint()))

	expected := ring.NewIdentityPoint().ScalarMult(one, ring.HashToPoint(ring.NewGeneratorPoint()))
	require.True(t, k.KeyImage().Point().Equal(expected))
}

func oneScalar(t *testing.T) *ring.Scalar {
	t.Helper()
	buf := make([]byte, 32)
	buf[0] = 1
	s, err := ring.NewScalar().SetCanonicalBytes(buf)
	require.NoError(t, err)
	return s
}

func TestDistinctKeysHaveDistinctImages(t *testing.T) {
	k1, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	k2, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	require.False(t, k1.KeyImage().Equal(k2.KeyImage()))
}
