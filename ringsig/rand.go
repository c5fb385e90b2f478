// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	csrand "crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"

	ring "github.com/ringproto/ed25519ring"
)

const wantedEntropyBytes = 32

// sampleScalar draws a fresh uniform Scalar from `rand` (or the system
// CSPRNG if `rand` is nil).
//
// Every secret scalar drawn during signing (the signer's per-index `q`
// and `w` in Sign, the within-ring `ρᵢ`) goes through this helper;
// GenerateKey draws private keys with ring25519.RandomScalar instead.
// The helper mixes the caller-supplied entropy with a cSHAKE256
// keystream domain-separated by `ctx` and `transcriptSoFar`, rather
// than trusting `rand` alone. Sign passes the transcript built so far;
// WithinRingSign passes the ring member's public key encoding for each
// `ρᵢ`. Honorary Debian and Sony mitigation: with a catastrophically
// broken entropy source, two draws repeat only if both `ctx` and
// `transcriptSoFar` collide.
//
// A read failure from `rand` is fatal and is returned wrapped in
// ErrRandomnessFailure; it is never retried, so as not to bias the
// result.
func sampleScalar(rand io.Reader, ctx string, transcriptSoFar []byte) (*ring.Scalar, error) {
	if rand == nil {
		rand = csrand.Reader
	}

	var tmp [wantedEntropyBytes]byte
	if _, err := io.ReadFull(rand, tmp[:]); err != nil {
		return nil, errors.Join(ErrRandomnessFailure, err)
	}

	xof := sha3.NewCShake256(nil, []byte("ringsig scalar:"+ctx))
	_, _ = xof.Write(tmp[:])
	_, _ = xof.Write(transcriptSoFar)

	var wide [64]byte
	if _, err := io.ReadFull(xof, wide[:]); err != nil {
		// Unreachable: a cSHAKE XOF never fails to produce output.
		return nil, errors.Join(ErrRandomnessFailure, err)
	}

	s, err := ring.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// Unreachable: wide is always 64 bytes.
		return nil, err
	}
	return s, nil
}
