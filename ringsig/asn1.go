// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

// The algorithm identifier for both signature kinds:
// `{2 25 <16 bytes of UUID 3b5e61af-c4ec-496e-95e9-4b64bccdc809>}`,
// i.e. the ITU-T X.667 `uuid` arc under `joint-iso-itu-t(2) uuid(25)`.
//
// The UUID, read as a 128-bit big-endian integer, is
// 78914508975617019697806716589753354249, far outside the range
// `encoding/asn1.ObjectIdentifier`'s `[]int` arcs can represent on
// any platform, so the OID's DER content is precomputed here as raw
// bytes (first arc pair `2.25` collapses to a single leading byte
// `2*40+25 = 105 = 0x69` per X.690, followed by the UUID's own base-128
// varint encoding) instead of going through the stdlib type.
var oidAlgorithmContent = []byte{
	0x69, 0xf6, 0xde, 0xb0, 0xeb, 0xf8, 0xce, 0xe2,
	0xa5, 0xdd, 0x95, 0xf4, 0xd2, 0xec, 0xcb, 0xe6,
	0xb7, 0x90, 0x09,
}
