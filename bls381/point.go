package bls381

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1Point wraps an element of G1. The point is held in Jacobian
// coordinates and normalized lazily: Add and ScalarMult never convert,
// while Affine, Equal and Bytes do. The zero of the group is the point
// at infinity.
//
// Like the scalars and points elsewhere in this module, arithmetic
// methods mutate the receiver and return it for chaining. A G1Point
// shared across goroutines must not be mutated concurrently.
type G1Point struct {
	p bls12381.G1Jac
}

// NewG1Point returns a new point set to the identity.
func NewG1Point() *G1Point {
	var p G1Point
	p.p.X.SetOne()
	p.p.Y.SetOne()
	return &p
}

// G1PointFromAffine returns a new point holding a.
func G1PointFromAffine(a *bls12381.G1Affine) *G1Point {
	var p G1Point
	p.p.FromAffine(a)
	return &p
}

// G1PointFromBytes decodes a compressed G1 encoding.
func G1PointFromBytes(data []byte) (*G1Point, error) {
	a, err := DecompressG1(data)
	if err != nil {
		return nil, err
	}
	return G1PointFromAffine(&a), nil
}

// Add sets p to p+q and returns p.
func (p *G1Point) Add(q *G1Point) *G1Point {
	p.p.AddAssign(&q.p)
	return p
}

// Neg sets p to -p and returns p.
func (p *G1Point) Neg() *G1Point {
	p.p.Neg(&p.p)
	return p
}

// ScalarMult sets p to s*p and returns p.
func (p *G1Point) ScalarMult(s *fr.Element) *G1Point {
	var k big.Int
	s.BigInt(&k)
	p.p.ScalarMultiplication(&p.p, &k)
	return p
}

// Set copies q into p and returns p.
func (p *G1Point) Set(q *G1Point) *G1Point {
	p.p.Set(&q.p)
	return p
}

// Normalize reduces p to its canonical affine representation and
// returns p. Chained additions accumulate in Jacobian form; call this
// once at the end of a fold rather than after every step.
func (p *G1Point) Normalize() *G1Point {
	a := p.Affine()
	p.p.FromAffine(&a)
	return p
}

// Affine returns the affine form of p.
func (p *G1Point) Affine() bls12381.G1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(&p.p)
	return a
}

// IsInfinity reports whether p is the identity.
func (p *G1Point) IsInfinity() bool {
	return p.p.Z.IsZero()
}

// Equal reports whether p and q represent the same group element,
// comparing normalized values regardless of internal representation.
func (p *G1Point) Equal(q *G1Point) bool {
	a, b := p.Affine(), q.Affine()
	return a.Equal(&b)
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	a := p.Affine()
	return CompressG1(&a)
}

// G2Point wraps an element of G2 with the same representation and
// normalization contract as [G1Point].
type G2Point struct {
	p bls12381.G2Jac
}

// NewG2Point returns a new point set to the identity.
func NewG2Point() *G2Point {
	var p G2Point
	p.p.X.SetOne()
	p.p.Y.SetOne()
	return &p
}

// G2PointFromAffine returns a new point holding a.
func G2PointFromAffine(a *bls12381.G2Affine) *G2Point {
	var p G2Point
	p.p.FromAffine(a)
	return &p
}

// G2PointFromBytes decodes a compressed G2 encoding.
func G2PointFromBytes(data []byte) (*G2Point, error) {
	a, err := DecompressG2(data)
	if err != nil {
		return nil, err
	}
	return G2PointFromAffine(&a), nil
}

// Add sets p to p+q and returns p.
func (p *G2Point) Add(q *G2Point) *G2Point {
	p.p.AddAssign(&q.p)
	return p
}

// Neg sets p to -p and returns p.
func (p *G2Point) Neg() *G2Point {
	p.p.Neg(&p.p)
	return p
}

// ScalarMult sets p to s*p and returns p.
func (p *G2Point) ScalarMult(s *fr.Element) *G2Point {
	var k big.Int
	s.BigInt(&k)
	p.p.ScalarMultiplication(&p.p, &k)
	return p
}

// Set copies q into p and returns p.
func (p *G2Point) Set(q *G2Point) *G2Point {
	p.p.Set(&q.p)
	return p
}

// Normalize reduces p to its canonical affine representation and
// returns p.
func (p *G2Point) Normalize() *G2Point {
	a := p.Affine()
	p.p.FromAffine(&a)
	return p
}

// Affine returns the affine form of p.
func (p *G2Point) Affine() bls12381.G2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(&p.p)
	return a
}

// IsInfinity reports whether p is the identity.
func (p *G2Point) IsInfinity() bool {
	return p.p.Z.IsZero()
}

// Equal reports whether p and q represent the same group element.
func (p *G2Point) Equal(q *G2Point) bool {
	a, b := p.Affine(), q.Affine()
	return a.Equal(&b)
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2Point) Bytes() []byte {
	a := p.Affine()
	return CompressG2(&a)
}
