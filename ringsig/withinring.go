// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"io"

	ring "github.com/ringproto/ed25519ring"
	"github.com/ringproto/ed25519ring/internal/disalloweq"
)

// WithinRingSignature is a ring signature whose key image is never
// transmitted in the clear. Instead, each ring member gets an
// encrypted slot (`PublicPoints[i]`, `EncPoints[i]`) that only the
// holder of `publicKeys[i]`'s private key can decrypt back into the
// real key image. A member learns whether they were the signer by
// comparing the recovered image against their own key image; to anyone
// without a ring private key the slots are indistinguishable from
// random.
//
// Unlike RingSignature, this type does not carry the key image: the
// image is an intermediate the signer uses to derive EncPoints, and it
// is not part of the wire encoding either.
type WithinRingSignature struct {
	_ disalloweq.DisallowEqual

	PublicKeys   []*PublicKey
	PublicPoints []*ring.Point
	EncPoints    []*ring.Point
	C            []*ring.Scalar
	R            []*ring.Scalar
}

// WithinRingSign produces a WithinRingSignature: it first runs the
// standard ring-signing algorithm to obtain a key image `I`, then
// encrypts `I` once per ring member so only that member's private key
// recovers it.
func WithinRingSign(rand io.Reader, message []byte, publicKeys []*PublicKey, signer *PrivateKey, index int) (*WithinRingSignature, error) {
	base, err := Sign(rand, message, publicKeys, signer, index)
	if err != nil {
		return nil, err
	}

	n := len(publicKeys)
	publicPoints := make([]*ring.Point, n)
	encPoints := make([]*ring.Point, n)

	for i, pk := range publicKeys {
		rho, err := sampleScalar(rand, "rho", pk.Bytes())
		if err != nil {
			return nil, err
		}

		publicPoints[i] = ring.NewIdentityPoint().ScalarBaseMult(rho)
		encPoints[i] = ring.NewIdentityPoint().Add(
			ring.NewIdentityPoint().ScalarMult(rho, pk.Point()),
			base.KeyImage.Point(),
		)
	}

	return &WithinRingSignature{
		PublicKeys:   publicKeys,
		PublicPoints: publicPoints,
		EncPoints:    encPoints,
		C:            base.C,
		R:            base.R,
	}, nil
}

// decryptKeyImage recovers the key image slot belonging to ring index
// `j`: `EncPoints[j] - x_j·PublicPoints[j]`. Since
// `EncPoints[j] = ρ_j·P_j + I` and `P_j = x_j·G`, every ring member
// recovers the signer's real image `I`; whether the member was the
// signer is decided by comparing the result against the member's own
// key image, not by the recovery itself.
func decryptKeyImage(sig *WithinRingSignature, j int, x *ring.Scalar) *KeyImage {
	xPub := ring.NewIdentityPoint().ScalarMult(x, sig.PublicPoints[j])
	candidate := ring.NewIdentityPoint().Subtract(sig.EncPoints[j], xPub)
	return &KeyImage{point: candidate}
}

// WithinRingVerify checks whether `sig` is a valid within-ring
// signature of `message` that was produced by the holder of `x`. It
// locates the ring index belonging to `x`, decrypts that index's key
// image slot, verifies the standard ring equation using the recovered
// image, and finally checks the recovered image against `x`'s own key
// image. The last check is what discriminates the signer: decryption
// hands every ring member the real image, so a valid signature closes
// the ring equation for all of them, but only the signer's own key
// image matches the recovered one.
//
// Returns ErrMembershipError if `x`'s public key is not a member of
// the ring. Otherwise returns (false, nil) for a structurally valid
// signature that `x` did not produce, whether because the ring
// equation fails or because `x` was a ring member but not the signer.
func WithinRingVerify(message []byte, sig *WithinRingSignature, x *PrivateKey) (bool, error) {
	n := len(sig.PublicKeys)
	if n == 0 {
		return false, ErrRingSizeInvalid
	}
	if len(sig.C) != n || len(sig.R) != n || len(sig.PublicPoints) != n || len(sig.EncPoints) != n {
		return false, ErrRingShapeMismatch
	}

	j := -1
	for i, pk := range sig.PublicKeys {
		if pk.Equal(x.PublicKey()) {
			j = i
			break
		}
	}
	if j < 0 {
		return false, ErrMembershipError
	}

	keyImage := decryptKeyImage(sig, j, x.Scalar())

	plain := &RingSignature{
		PublicKeys: sig.PublicKeys,
		KeyImage:   keyImage,
		C:          sig.C,
		R:          sig.R,
	}
	return Verify(message, plain) && keyImage.Equal(x.KeyImage()), nil
}
