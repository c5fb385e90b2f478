// Copyright (c) 2026 The ed25519ring Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ringsig

import (
	"bytes"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	ring "github.com/ringproto/ed25519ring"
)

// PEM labels for the two signature kinds. Both variants share one
// ASN.1 OID; the label is a human-readable hint only, and the decoder
// disambiguates structurally (by counting top-level elements after the
// algorithm identifier) rather than trusting the label.
const (
	pemTypeRingSignature       = "RING SIGNATURE"
	pemTypeWithinRingSignature = "WITHIN RING SIGNATURE"
)

// MarshalDER encodes `sig` as a DER `SEQUENCE` of `algorithm`,
// `key_image`, `public_keys`, `c`, `r`.
func (sig *RingSignature) MarshalDER() ([]byte, error) {
	n := len(sig.PublicKeys)
	if n == 0 {
		return nil, ErrRingSizeInvalid
	}
	if len(sig.C) != n || len(sig.R) != n {
		return nil, ErrRingShapeMismatch
	}

	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmOID(b)
		b.AddASN1OctetString(sig.KeyImage.Bytes())
		addPublicKeyVector(b, sig.PublicKeys)
		addScalarVector(b, sig.C)
		addScalarVector(b, sig.R)
	})
	return b.Bytes()
}

// MarshalDER encodes `sig` as a DER `SEQUENCE` of `algorithm`,
// `public_points`, `enc_points`, `public_keys`, `c`, `r`. The key
// image is never part of this encoding; see WithinRingSignature's doc
// comment.
func (sig *WithinRingSignature) MarshalDER() ([]byte, error) {
	n := len(sig.PublicKeys)
	if n == 0 {
		return nil, ErrRingSizeInvalid
	}
	if len(sig.PublicPoints) != n || len(sig.EncPoints) != n || len(sig.C) != n || len(sig.R) != n {
		return nil, ErrRingShapeMismatch
	}

	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmOID(b)
		addPointVector(b, sig.PublicPoints)
		addPointVector(b, sig.EncPoints)
		addPublicKeyVector(b, sig.PublicKeys)
		addScalarVector(b, sig.C)
		addScalarVector(b, sig.R)
	})
	return b.Bytes()
}

// ExportPEM armors `sig`'s DER encoding as
// `-----BEGIN RING SIGNATURE----- ... -----END RING SIGNATURE-----`.
func (sig *RingSignature) ExportPEM() (string, error) {
	der, err := sig.MarshalDER()
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypeRingSignature, Bytes: der})), nil
}

// ExportPEM armors `sig`'s DER encoding as
// `-----BEGIN WITHIN RING SIGNATURE----- ... -----END WITHIN RING SIGNATURE-----`.
func (sig *WithinRingSignature) ExportPEM() (string, error) {
	der, err := sig.MarshalDER()
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypeWithinRingSignature, Bytes: der})), nil
}

// ParseRingSignature decodes a DER-encoded RingSignature.
func ParseRingSignature(der []byte) (*RingSignature, error) {
	inner, err := readOuterSequence(der)
	if err != nil {
		return nil, err
	}
	if err := readAlgorithmOID(&inner); err != nil {
		return nil, err
	}
	return parseRingSignatureBody(inner)
}

// ParseWithinRingSignature decodes a DER-encoded WithinRingSignature.
func ParseWithinRingSignature(der []byte) (*WithinRingSignature, error) {
	inner, err := readOuterSequence(der)
	if err != nil {
		return nil, err
	}
	if err := readAlgorithmOID(&inner); err != nil {
		return nil, err
	}
	return parseWithinRingSignatureBody(inner)
}

// ImportPEM decodes PEM-armored ring-signature DER, returning either a
// *RingSignature or a *WithinRingSignature depending on the decoded
// structure. The PEM label must be one of the two recognized types; an
// unrecognized label is ErrUnknownPEMType. Which concrete type comes
// back is decided by counting top-level elements in the DER body, not
// by trusting the label; see the comment on pemTypeRingSignature.
func ImportPEM(text string) (any, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, ErrUnknownPEMType
	}
	switch block.Type {
	case pemTypeRingSignature, pemTypeWithinRingSignature:
	default:
		return nil, ErrUnknownPEMType
	}

	inner, err := readOuterSequence(block.Bytes)
	if err != nil {
		return nil, err
	}
	if err := readAlgorithmOID(&inner); err != nil {
		return nil, err
	}

	switch countTopLevelElements(inner) {
	case 4:
		return parseRingSignatureBody(inner)
	case 5:
		return parseWithinRingSignatureBody(inner)
	default:
		return nil, ErrMalformedEncoding
	}
}

func addAlgorithmOID(b *cryptobyte.Builder) {
	b.AddASN1(casn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
		b.AddBytes(oidAlgorithmContent)
	})
}

func addPublicKeyVector(b *cryptobyte.Builder, keys []*PublicKey) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, k := range keys {
			b.AddASN1OctetString(k.Bytes())
		}
	})
}

func addPointVector(b *cryptobyte.Builder, points []*ring.Point) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, p := range points {
			b.AddASN1OctetString(p.Bytes())
		}
	})
}

func addScalarVector(b *cryptobyte.Builder, scalars []*ring.Scalar) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, s := range scalars {
			b.AddASN1OctetString(s.Bytes())
		}
	})
}

func readOuterSequence(der []byte) (cryptobyte.String, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, casn1.SEQUENCE) || !input.Empty() {
		return nil, ErrMalformedEncoding
	}
	return inner, nil
}

func readAlgorithmOID(s *cryptobyte.String) error {
	var oidBytes cryptobyte.String
	if !s.ReadASN1(&oidBytes, casn1.OBJECT_IDENTIFIER) {
		return ErrMalformedEncoding
	}
	if !bytes.Equal(oidBytes, oidAlgorithmContent) {
		return fmt.Errorf("%w: unrecognized algorithm identifier", ErrMalformedEncoding)
	}
	return nil
}

// countTopLevelElements counts the remaining top-level ASN.1 elements
// in `s` without consuming the caller's copy (cryptobyte.String reads
// re-slice the receiver, and Go slice headers are passed by value).
func countTopLevelElements(s cryptobyte.String) int {
	count := 0
	for !s.Empty() {
		var elem cryptobyte.String
		var tag casn1.Tag
		if !s.ReadAnyASN1Element(&elem, &tag) {
			return -1
		}
		count++
	}
	return count
}

func readOctetStringVector(s *cryptobyte.String) ([][]byte, error) {
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, casn1.SEQUENCE) {
		return nil, ErrMalformedEncoding
	}

	var out [][]byte
	for !seq.Empty() {
		var item []byte
		if !seq.ReadASN1Bytes(&item, casn1.OCTET_STRING) {
			return nil, ErrMalformedEncoding
		}
		out = append(out, item)
	}
	return out, nil
}

func decodePublicKeys(raw [][]byte) ([]*PublicKey, error) {
	keys := make([]*PublicKey, len(raw))
	for i, b := range raw {
		k, err := NewPublicKey(b)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

func decodeScalars(raw [][]byte) ([]*ring.Scalar, error) {
	scalars := make([]*ring.Scalar, len(raw))
	for i, b := range raw {
		s, err := ring.NewScalar().SetCanonicalBytes(b)
		if err != nil {
			return nil, ErrMalformedEncoding
		}
		scalars[i] = s
	}
	return scalars, nil
}

func decodePoints(raw [][]byte) ([]*ring.Point, error) {
	points := make([]*ring.Point, len(raw))
	for i, b := range raw {
		p, err := ring.NewPointFromBytes(b)
		if err != nil {
			return nil, ErrMalformedEncoding
		}
		points[i] = p
	}
	return points, nil
}

func parseRingSignatureBody(inner cryptobyte.String) (*RingSignature, error) {
	var keyImageBytes []byte
	if !inner.ReadASN1Bytes(&keyImageBytes, casn1.OCTET_STRING) {
		return nil, ErrMalformedEncoding
	}
	keyImage, err := NewKeyImage(keyImageBytes)
	if err != nil {
		return nil, err
	}

	pubKeyBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	cBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	rBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	if !inner.Empty() {
		return nil, ErrMalformedEncoding
	}

	n := len(pubKeyBytes)
	if n == 0 {
		return nil, ErrRingSizeInvalid
	}
	if len(cBytes) != n || len(rBytes) != n {
		return nil, ErrRingShapeMismatch
	}

	publicKeys, err := decodePublicKeys(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	c, err := decodeScalars(cBytes)
	if err != nil {
		return nil, err
	}
	r, err := decodeScalars(rBytes)
	if err != nil {
		return nil, err
	}

	return &RingSignature{PublicKeys: publicKeys, KeyImage: keyImage, C: c, R: r}, nil
}

func parseWithinRingSignatureBody(inner cryptobyte.String) (*WithinRingSignature, error) {
	publicPointBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	encPointBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	pubKeyBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	cBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	rBytes, err := readOctetStringVector(&inner)
	if err != nil {
		return nil, err
	}
	if !inner.Empty() {
		return nil, ErrMalformedEncoding
	}

	n := len(pubKeyBytes)
	if n == 0 {
		return nil, ErrRingSizeInvalid
	}
	if len(publicPointBytes) != n || len(encPointBytes) != n || len(cBytes) != n || len(rBytes) != n {
		return nil, ErrRingShapeMismatch
	}

	publicKeys, err := decodePublicKeys(pubKeyBytes)
	if err != nil {
		return nil, err
	}
	publicPoints, err := decodePoints(publicPointBytes)
	if err != nil {
		return nil, err
	}
	encPoints, err := decodePoints(encPointBytes)
	if err != nil {
		return nil, err
	}
	c, err := decodeScalars(cBytes)
	if err != nil {
		return nil, err
	}
	r, err := decodeScalars(rBytes)
	if err != nil {
		return nil, err
	}

	return &WithinRingSignature{
		PublicKeys:   publicKeys,
		PublicPoints: publicPoints,
		EncPoints:    encPoints,
		C:            c,
		R:            r,
	}, nil
}
