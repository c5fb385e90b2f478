package ring25519

import (
	"bytes"
	"errors"

	"filippo.io/edwards25519"

	"github.com/ringproto/ed25519ring/internal/disalloweq"
)

// PointSize is the size of a point's canonical compressed encoding, in
// bytes.
const PointSize = 32

var errMalformedPoint = errors.New("ring25519: point is not a canonical encoding of a curve point")

// Point is an element of the Ed25519 group: the twisted Edwards curve
// `-x^2 + y^2 = 1 - (121665/121666)x^2y^2` over GF(2^255-19), cofactor 8.
// All arguments and receivers are allowed to alias. The zero value is
// NOT valid, and may only be used as a receiver.
type Point struct {
	_ disalloweq.DisallowEqual

	inner edwards25519.Point
}

// NewIdentityPoint returns a new Point set to the identity element.
func NewIdentityPoint() *Point {
	p := &Point{}
	p.inner = *edwards25519.NewIdentityPoint()
	return p
}

// NewGeneratorPoint returns a new Point set to `G`, the standard
// Ed25519 basepoint.
func NewGeneratorPoint() *Point {
	p := &Point{}
	p.inner = *edwards25519.NewGeneratorPoint()
	return p
}

// Basepoint is an alias for NewGeneratorPoint, named to match the
// construction's `basepoint()` accessor.
func Basepoint() *Point {
	return NewGeneratorPoint()
}

// Set sets `v = p` and returns `v`.
func (v *Point) Set(p *Point) *Point {
	v.inner.Set(&p.inner)
	return v
}

// Add sets `v = p + q` and returns `v`.
func (v *Point) Add(p, q *Point) *Point {
	v.inner.Add(&p.inner, &q.inner)
	return v
}

// Subtract sets `v = p - q` and returns `v`.
func (v *Point) Subtract(p, q *Point) *Point {
	v.inner.Subtract(&p.inner, &q.inner)
	return v
}

// Negate sets `v = -p` and returns `v`.
func (v *Point) Negate(p *Point) *Point {
	v.inner.Negate(&p.inner)
	return v
}

// ScalarMult sets `v = s*p` and returns `v`. Constant-time in `s`.
func (v *Point) ScalarMult(s *Scalar, p *Point) *Point {
	v.inner.ScalarMult(&s.inner, &p.inner)
	return v
}

// ScalarBaseMult sets `v = s*G` and returns `v`. Constant-time in `s`.
func (v *Point) ScalarBaseMult(s *Scalar) *Point {
	v.inner.ScalarBaseMult(&s.inner)
	return v
}

// MultByCofactor sets `v = 8*p` and returns `v`.
func (v *Point) MultByCofactor(p *Point) *Point {
	v.inner.MultByCofactor(&p.inner)
	return v
}

// Equal returns true iff `v == p`.
func (v *Point) Equal(p *Point) bool {
	return v.inner.Equal(&p.inner) == 1
}

// Bytes returns the canonical 32-byte compressed encoding of `v`.
func (v *Point) Bytes() []byte {
	return v.inner.Bytes()
}

// SetBytes sets `v = src`, where `src` is the 32-byte compressed
// encoding of a curve point. Rejects encodings that do not correspond
// to a point on the curve, and non-canonical encodings (`y >= 2^255 - 19`,
// or an `x` sign bit set on an encoding whose recovered `x` is 0).
// Points in the 8-torsion subgroup are accepted: the ring verification
// equation is agnostic to small-subgroup components, so prime-order
// membership is not enforced at the decode boundary.
func (v *Point) SetBytes(src []byte) (*Point, error) {
	if len(src) != PointSize {
		return nil, errMalformedPoint
	}

	// edwards25519's SetBytes deliberately accepts the handful of
	// non-canonical encodings of valid points. Canonical encodings
	// round-trip exactly, so re-encode and compare to filter those out.
	var p edwards25519.Point
	if _, err := p.SetBytes(src); err != nil {
		return nil, errMalformedPoint
	}
	if !bytes.Equal(p.Bytes(), src) {
		return nil, errMalformedPoint
	}

	v.inner.Set(&p)
	return v, nil
}

// NewPointFromBytes creates a new Point from its canonical compressed
// encoding.
func NewPointFromBytes(src []byte) (*Point, error) {
	return (&Point{}).SetBytes(src)
}
