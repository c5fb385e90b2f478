// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// transcript accumulates the challenge hash input,
// `message || concat over i of (commitment pair)`, as a streaming
// Keccak-256 state rather than materializing the concatenated buffer.
// The finalized digest is reduced to the closing challenge scalar via
// ring25519.ReduceDigestToScalar, so the result is identical to
// HashToScalar over the full concatenation.
type transcript struct {
	h hash.Hash
}

// newTranscript starts a transcript with `message` as its first input.
func newTranscript(message []byte) *transcript {
	h := sha3.NewLegacyKeccak256()
	h.Write(message)
	return &transcript{h: h}
}

// writePoints appends each point's canonical encoding, in order, to the
// transcript.
func (t *transcript) writePoints(points ...[]byte) {
	for _, p := range points {
		t.h.Write(p)
	}
}

// sum finalizes the transcript's Keccak-256 digest without mutating the
// underlying state, so a transcript can be extended and re-summed. Sign
// relies on this: it passes intermediate sums to sampleScalar as
// domain-separation input before writing further points.
func (t *transcript) sum() []byte {
	return t.h.Sum(nil)
}
