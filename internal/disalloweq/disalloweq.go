// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual can be used to cause the compiler to reject attempts to
// compare structs with the `==` operator. Scalars and points wrap secret
// or variable-time-sensitive byte arrays, and `==` would compare them
// without the receiver's chosen constant-time semantics, so embed this
// to force callers through Equal instead.
type DisallowEqual [0]func()
