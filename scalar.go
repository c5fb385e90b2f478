package ring25519

import (
	"errors"
	"io"

	"filippo.io/edwards25519"

	"github.com/ringproto/ed25519ring/internal/disalloweq"
)

// ScalarSize is the size of a scalar's canonical encoding, in bytes.
const ScalarSize = 32

// wideScalarSize is the number of bytes of uniform input SetUniformBytes
// (and therefore RandomScalar) requires to produce a bias-free reduction
// mod ℓ.
const wideScalarSize = 64

var errNonCanonicalScalar = errors.New("ring25519: scalar value is not canonical (>= ℓ)")

// Scalar is an element of ℤ/ℓℤ, where ℓ is the order of the Ed25519
// prime-order subgroup. All arguments and receivers are allowed to
// alias. The zero value is a valid representation of 0.
type Scalar struct {
	_ disalloweq.DisallowEqual

	inner edwards25519.Scalar
}

// NewScalar returns a new Scalar set to 0.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Zero sets `s = 0` and returns `s`.
func (s *Scalar) Zero() *Scalar {
	s.inner = edwards25519.Scalar{}
	return s
}

// Set sets `s = a` and returns `s`.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner.Set(&a.inner)
	return s
}

// Add sets `s = a + b` and returns `s`.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Subtract sets `s = a - b` and returns `s`.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.inner.Subtract(&a.inner, &b.inner)
	return s
}

// Negate sets `s = -a` and returns `s`.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.inner.Negate(&a.inner)
	return s
}

// Multiply sets `s = a * b` and returns `s`.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.inner.Multiply(&a.inner, &b.inner)
	return s
}

// MultiplyAdd sets `s = a*b + c` and returns `s`.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	s.inner.MultiplyAdd(&a.inner, &b.inner, &c.inner)
	return s
}

// Equal returns true iff `s == a`.
func (s *Scalar) Equal(a *Scalar) bool {
	return s.inner.Equal(&a.inner) == 1
}

// IsZero returns true iff `s == 0`.
func (s *Scalar) IsZero() bool {
	var zero edwards25519.Scalar
	return s.inner.Equal(&zero) == 1
}

// Bytes returns the canonical 32-byte little-endian encoding of `s`.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetCanonicalBytes sets `s = src`, where `src` is the 32-byte
// little-endian encoding of `s`, and returns `s`. If `src` does not
// represent a value strictly less than ℓ, SetCanonicalBytes returns
// nil and an error, and the receiver is left unchanged.
func (s *Scalar) SetCanonicalBytes(src []byte) (*Scalar, error) {
	if len(src) != ScalarSize {
		return nil, errNonCanonicalScalar
	}

	if _, err := s.inner.SetCanonicalBytes(src); err != nil {
		return nil, errNonCanonicalScalar
	}
	return s, nil
}

// SetUniformBytes sets `s = src mod ℓ`, where `src` MUST be exactly 64
// bytes of uniform randomness read as a little-endian integer, and
// returns `s`. This is the wide-reduction sampling method used by
// RandomScalar, and never retries since, unlike rejection sampling, a
// 64-byte input has negligible bias once reduced mod ℓ. It returns nil
// and an error only when `src` is not 64 bytes long.
func (s *Scalar) SetUniformBytes(src []byte) (*Scalar, error) {
	if _, err := s.inner.SetUniformBytes(src); err != nil {
		return nil, err
	}
	return s, nil
}

// RandomScalar draws a scalar uniformly from [0, ℓ) using `rand` as
// the entropy source. `rand` MUST be cryptographically secure; this
// function reads wideScalarSize bytes from it and reduces them mod ℓ,
// the "wide-reduction from >= 64 bytes" sampling method used here as an
// alternative to reject-resample.
//
// A read failure from `rand` is fatal and is returned directly; it is
// never retried, so as not to introduce any bias into the result.
func RandomScalar(rand io.Reader) (*Scalar, error) {
	var buf [wideScalarSize]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, err
	}

	s := NewScalar()
	if _, err := s.SetUniformBytes(buf[:]); err != nil {
		// Unreachable: SetUniformBytes only fails on a length
		// mismatch, and buf is always wideScalarSize bytes.
		return nil, err
	}
	return s, nil
}
