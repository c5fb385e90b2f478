// Package ring25519 implements the ScalarField and Group arithmetic
// used by traceable ring signatures over Ed25519 (CryptoNote §4.4):
// a scalar field modulo the group order `ℓ`, and the twisted Edwards
// curve group itself, plus the deterministic hash_to_point and
// hash_to_scalar maps the construction needs.
//
// Private keys built on this package (see the ringsig subpackage) are
// sampled uniformly from [0, ℓ) and are NOT clamped the way RFC 8032
// Ed25519 signing keys are. Clamping would break the linearity the ring
// equation depends on (with `I = x·H(P)`:
// `r·H(P) + c·I == (r + c·x)·H(P)`), so signatures produced with these
// keys are not RFC 8032 compatible and the keys must not be treated as
// ordinary Ed25519 keys.
package ring25519
