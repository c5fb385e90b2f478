// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import "errors"

// Encoding and shape errors surface immediately with one of these
// sentinels (matchable with errors.Is, including through errors.Join).
// A failed verification is never one of these: Verify and
// WithinRingVerify return a plain `false` for "signature present but
// wrong", and reserve errors for "signature absent or unparseable".
var (
	// ErrMalformedEncoding is returned when a scalar or point byte
	// string fails canonical decoding.
	ErrMalformedEncoding = errors.New("ringsig: malformed scalar or point encoding")

	// ErrRingShapeMismatch is returned when a signature's public key,
	// c, and r vectors (and, for within-ring signatures, the
	// public_points/enc_points vectors) disagree in length.
	ErrRingShapeMismatch = errors.New("ringsig: ring signature vectors disagree in length")

	// ErrRingSizeInvalid is returned when a ring has zero members.
	ErrRingSizeInvalid = errors.New("ringsig: ring size must be at least 1")

	// ErrKeyIndexOutOfRange is returned when the signer's claimed index
	// does not address a member of the ring.
	ErrKeyIndexOutOfRange = errors.New("ringsig: signer index is out of range of the ring")

	// ErrKeyMismatch is returned when the ring member at the signer's
	// claimed index is not the signer's own public key.
	ErrKeyMismatch = errors.New("ringsig: ring member at signer index does not match signing key")

	// ErrRandomnessFailure is returned when the entropy source fails.
	ErrRandomnessFailure = errors.New("ringsig: failed to read from entropy source")

	// ErrMembershipError is returned by WithinRingVerify when the
	// caller's private key does not correspond to any public key in
	// the ring.
	ErrMembershipError = errors.New("ringsig: caller's public key is not a member of the ring")

	// ErrUnknownPEMType is returned when PEM armor does not carry one
	// of the labels this package understands.
	ErrUnknownPEMType = errors.New("ringsig: unrecognized PEM block type")
)
