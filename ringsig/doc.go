// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package ringsig implements CryptoNote-style traceable ring
// signatures over Ed25519: key generation, signing, verification,
// key-image linkability, the within-ring variant whose key image is
// only recoverable by ring members, and the PEM/DER wire format. It is
// built on the ring25519 package's scalar and group primitives.
package ringsig
