// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"crypto/subtle"
	"errors"
	"io"

	ring "github.com/ringproto/ed25519ring"
	"github.com/ringproto/ed25519ring/internal/disalloweq"
)

// PrivateKey owns the signing scalar `x`. `x` is sampled uniformly
// from [0, ℓ) and is deliberately NOT RFC 8032 clamped: the ring
// construction's closing equation relies on the linearity
// `r·H(P) + c·I == (r + c·x)·H(P)` (with `I = x·H(P)`) that clamping
// would break. A PrivateKey
// produced by this package therefore MUST NOT be treated as an
// ordinary Ed25519 signing key.
type PrivateKey struct {
	_ disalloweq.DisallowEqual

	scalar    *ring.Scalar
	publicKey *PublicKey
}

// GenerateKey draws a fresh PrivateKey using `rand` as the entropy
// source.
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	s, err := ring.RandomScalar(rand)
	if err != nil {
		return nil, errors.Join(ErrRandomnessFailure, err)
	}
	return newPrivateKeyFromScalar(s), nil
}

// NewPrivateKey parses the 32-byte canonical little-endian encoding of
// a private scalar. Non-canonical encodings (value >= ℓ) are rejected.
func NewPrivateKey(key []byte) (*PrivateKey, error) {
	s, err := ring.NewScalar().SetCanonicalBytes(key)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	return newPrivateKeyFromScalar(s), nil
}

func newPrivateKeyFromScalar(s *ring.Scalar) *PrivateKey {
	pub := &PublicKey{point: ring.NewIdentityPoint().ScalarBaseMult(s)}
	return &PrivateKey{scalar: s, publicKey: pub}
}

// Bytes returns the canonical 32-byte encoding of the private scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.scalar.Bytes()
}

// Scalar returns a copy of the scalar underlying `k`.
func (k *PrivateKey) Scalar() *ring.Scalar {
	return ring.NewScalar().Set(k.scalar)
}

// PublicKey returns the PublicKey corresponding to `k`.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.publicKey
}

// KeyImage returns the deterministic key image `I = x·HashToPoint(P)`.
// Repeated calls, and any ring signature produced with this key, share
// this exact value regardless of message or ring (the linkability
// handle).
func (k *PrivateKey) KeyImage() *KeyImage {
	hp := ring.HashToPoint(k.publicKey.point)
	return &KeyImage{point: ring.NewIdentityPoint().ScalarMult(k.scalar, hp)}
}

// Equal returns whether `x` represents the same private key as `k`.
func (k *PrivateKey) Equal(x *PrivateKey) bool {
	if x == nil {
		return false
	}
	return k.scalar.Equal(x.scalar)
}

// PublicKey owns the point `P = x·G`.
type PublicKey struct {
	_ disalloweq.DisallowEqual

	point *ring.Point
}

// NewPublicKey parses the 32-byte canonical compressed encoding of a
// curve point. Points in the 8-torsion subgroup are accepted; see
// ring25519.Point.SetBytes.
func NewPublicKey(key []byte) (*PublicKey, error) {
	p, err := ring.NewPointFromBytes(key)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	return &PublicKey{point: p}, nil
}

// NewPublicKeyFromPoint wraps an existing Point as a PublicKey.
func NewPublicKeyFromPoint(point *ring.Point) *PublicKey {
	return &PublicKey{point: ring.NewIdentityPoint().Set(point)}
}

// Bytes returns the canonical 32-byte compressed encoding of the
// public key.
func (k *PublicKey) Bytes() []byte {
	return k.point.Bytes()
}

// Point returns a copy of the point underlying `k`.
func (k *PublicKey) Point() *ring.Point {
	return ring.NewIdentityPoint().Set(k.point)
}

// Equal returns whether `x` represents the same public key as `k`.
func (k *PublicKey) Equal(x *PublicKey) bool {
	if x == nil {
		return false
	}
	return k.point.Equal(x.point)
}

// KeyImage is the deterministic, linkable group element
// `I = x·HashToPoint(x·G)` tied to a private key.
type KeyImage struct {
	_ disalloweq.DisallowEqual

	point *ring.Point
}

// NewKeyImage parses the 32-byte canonical compressed encoding of a key
// image.
func NewKeyImage(key []byte) (*KeyImage, error) {
	p, err := ring.NewPointFromBytes(key)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	return &KeyImage{point: p}, nil
}

// Bytes returns the canonical 32-byte compressed encoding of the key
// image.
func (i *KeyImage) Bytes() []byte {
	return i.point.Bytes()
}

// Point returns a copy of the point underlying `i`.
func (i *KeyImage) Point() *ring.Point {
	return ring.NewIdentityPoint().Set(i.point)
}

// Equal returns whether two key images are byte-for-byte identical,
// which is exactly the linkability test: equal key images mean the
// same private key produced both signatures.
func (i *KeyImage) Equal(x *KeyImage) bool {
	if x == nil {
		return false
	}
	return subtle.ConstantTimeCompare(i.Bytes(), x.Bytes()) == 1
}
