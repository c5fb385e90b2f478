// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"io"

	ring "github.com/ringproto/ed25519ring"
	"github.com/ringproto/ed25519ring/internal/disalloweq"
)

// RingSignature is a CryptoNote-style traceable ring signature: the
// ring's public keys, the signer's key image, and the two per-index
// scalar vectors that close the ring equation.
type RingSignature struct {
	_ disalloweq.DisallowEqual

	PublicKeys []*PublicKey
	KeyImage   *KeyImage
	C          []*ring.Scalar
	R          []*ring.Scalar
}

// Sign produces a RingSignature proving knowledge of one private key in
// `publicKeys` without revealing which.
//
// `publicKeys[index]` MUST equal `signer.PublicKey()`; this is checked
// and reported as ErrKeyMismatch rather than silently producing an
// unverifiable signature, even though getting this right is otherwise
// the caller's responsibility.
//
// Sign never reorders `publicKeys`. Presenting the ring in an order
// independent of the signer's identity is the caller's responsibility;
// an internally-shuffled ring would not change the anonymity set this
// signature provides, since the set is exactly `publicKeys` either way,
// but a caller that always places itself first leaks its identity in
// the emitted signature.
func Sign(rand io.Reader, message []byte, publicKeys []*PublicKey, signer *PrivateKey, index int) (*RingSignature, error) {
	n := len(publicKeys)
	if n == 0 {
		return nil, ErrRingSizeInvalid
	}
	if index < 0 || index >= n {
		return nil, ErrKeyIndexOutOfRange
	}
	if !publicKeys[index].Equal(signer.PublicKey()) {
		return nil, ErrKeyMismatch
	}

	keyImage := signer.KeyImage()

	hPoints := make([]*ring.Point, n)
	for i, pk := range publicKeys {
		hPoints[i] = ring.HashToPoint(pk.Point())
	}

	c := make([]*ring.Scalar, n)
	r := make([]*ring.Scalar, n)

	t := newTranscript(message)

	var q *ring.Scalar
	for i := 0; i < n; i++ {
		if i == index {
			var err error
			q, err = sampleScalar(rand, "q", t.sum())
			if err != nil {
				return nil, err
			}

			l := ring.NewIdentityPoint().ScalarBaseMult(q)
			rr := ring.NewIdentityPoint().ScalarMult(q, hPoints[i])
			t.writePoints(l.Bytes(), rr.Bytes())
			continue
		}

		qi, err := sampleScalar(rand, "q", t.sum())
		if err != nil {
			return nil, err
		}
		wi, err := sampleScalar(rand, "w", t.sum())
		if err != nil {
			return nil, err
		}
		c[i] = wi
		r[i] = qi

		l := ring.NewIdentityPoint().Add(
			ring.NewIdentityPoint().ScalarBaseMult(qi),
			ring.NewIdentityPoint().ScalarMult(wi, publicKeys[i].Point()),
		)
		rr := ring.NewIdentityPoint().Add(
			ring.NewIdentityPoint().ScalarMult(qi, hPoints[i]),
			ring.NewIdentityPoint().ScalarMult(wi, keyImage.Point()),
		)
		t.writePoints(l.Bytes(), rr.Bytes())
	}

	h := ring.ReduceDigestToScalar(t.sum())

	sumOthers := ring.NewScalar()
	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		sumOthers.Add(sumOthers, c[i])
	}
	c[index] = ring.NewScalar().Subtract(h, sumOthers)
	r[index] = ring.NewScalar().Subtract(q, ring.NewScalar().Multiply(c[index], signer.Scalar()))

	return &RingSignature{
		PublicKeys: publicKeys,
		KeyImage:   keyImage,
		C:          c,
		R:          r,
	}, nil
}

// Verify checks whether `sig` is a valid ring signature of `message`
// against the construction's closing equation. It returns false, never
// an error, for "signature present but wrong"; malformed shapes are the
// one case that still reports structurally via the boolean result being
// false, since Verify only operates on an already in-memory
// RingSignature (shape errors occur earlier, at decode time in
// ParseRingSignature).
func Verify(message []byte, sig *RingSignature) bool {
	n := len(sig.PublicKeys)
	if n == 0 || len(sig.C) != n || len(sig.R) != n {
		return false
	}

	t := newTranscript(message)
	for i := 0; i < n; i++ {
		hp := ring.HashToPoint(sig.PublicKeys[i].Point())

		l := ring.NewIdentityPoint().Add(
			ring.NewIdentityPoint().ScalarBaseMult(sig.R[i]),
			ring.NewIdentityPoint().ScalarMult(sig.C[i], sig.PublicKeys[i].Point()),
		)
		r := ring.NewIdentityPoint().Add(
			ring.NewIdentityPoint().ScalarMult(sig.R[i], hp),
			ring.NewIdentityPoint().ScalarMult(sig.C[i], sig.KeyImage.Point()),
		)
		t.writePoints(l.Bytes(), r.Bytes())
	}

	h := ring.ReduceDigestToScalar(t.sum())

	sum := ring.NewScalar()
	for _, ci := range sig.C {
		sum.Add(sum, ci)
	}

	return h.Equal(sum)
}
