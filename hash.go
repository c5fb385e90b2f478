// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ring25519

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// HashToPoint deterministically maps a Point to another Point on the
// curve, with no known efficient inverse.
//
// This commits to the CryptoNote-compatible construction: Keccak-256
// (the original, pre-NIST-padding variant, via
// golang.org/x/crypto/sha3's NewLegacyKeccak256, NOT SHA3-256) of the
// input point's compressed encoding, treated as a candidate compressed
// point and decoded; on decode failure an 8-byte little-endian counter
// (1, 2, ...) is appended to the hash input and the attempt retried; the
// first successful
// decode is multiplied by the cofactor (8) to land in the prime-order
// subgroup. This is an interop boundary: signatures only verify across
// implementations that pick the same hash and try-and-increment policy.
func HashToPoint(p *Point) *Point {
	base := p.Bytes()

	var counter [8]byte
	for i := uint64(0); ; i++ {
		h := sha3.NewLegacyKeccak256()
		h.Write(base)
		if i > 0 {
			binary.LittleEndian.PutUint64(counter[:], i)
			h.Write(counter[:])
		}
		digest := h.Sum(nil)

		candidate, err := NewPointFromBytes(digest)
		if err != nil {
			continue
		}
		return NewIdentityPoint().MultByCofactor(candidate)
	}
}

// HashToScalar deterministically maps a byte string to a Scalar:
// Keccak-256 of the input (the same hash HashToPoint uses), interpreted
// as a 256-bit little-endian integer and reduced mod ℓ via wide
// reduction.
func HashToScalar(data ...[]byte) *Scalar {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return ReduceDigestToScalar(h.Sum(nil))
}

// ReduceDigestToScalar reduces a 32-byte Keccak-256 digest mod ℓ, the
// same wide-reduction HashToScalar performs on its own hash output.
// Exported so callers that already hold a finalized transcript digest
// (e.g. ringsig's streaming transcript builder) don't need to re-hash
// their input through HashToScalar's variadic byte-string form.
func ReduceDigestToScalar(digest []byte) *Scalar {
	// digest is 32 bytes; SetUniformBytes takes exactly 64, so the
	// digest is zero-extended first. A 32-byte reduction mod ℓ (~2^252) retains
	// a small bias (~2^-125), acceptable for a hash-to-scalar map and
	// consistent with the CryptoNote construction, which uses a single
	// 256-bit hash output directly.
	s, err := NewScalar().SetUniformBytes(widen(digest))
	if err != nil {
		// Unreachable: widen always produces 64 bytes.
		panic(err)
	}
	return s
}

// widen pads a 32-byte digest to the 64-byte width SetUniformBytes
// requires, with zero high bytes, so that reduction mod ℓ recovers the
// same integer (digest read as little-endian) mod ℓ.
func widen(digest []byte) []byte {
	var buf [64]byte
	copy(buf[:32], digest)
	return buf[:]
}
