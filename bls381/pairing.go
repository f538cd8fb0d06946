package bls381

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Accumulator builds up a product of pairings e(p1, q1)*...*e(pn, qn)
// and evaluates the whole product at once. All accumulated terms share
// a single Miller loop finalization and a single final exponentiation,
// which is what makes aggregate and batch verification cheap: the
// dominant cost is paid once, not per term.
//
// The zero value is an empty accumulator ready for use.
type Accumulator struct {
	g1 []bls12381.G1Affine
	g2 []bls12381.G2Affine
}

// Add appends the pair e(p, q) to the product.
func (a *Accumulator) Add(p *bls12381.G1Affine, q *bls12381.G2Affine) {
	a.g1 = append(a.g1, *p)
	a.g2 = append(a.g2, *q)
}

// Len returns the number of accumulated pairs.
func (a *Accumulator) Len() int {
	return len(a.g1)
}

// IsIdentity evaluates the accumulated product and reports whether it
// equals the multiplicative identity of the target group. An empty
// accumulator is rejected.
func (a *Accumulator) IsIdentity() bool {
	if len(a.g1) == 0 {
		return false
	}
	ok, err := bls12381.PairingCheck(a.g1, a.g2)
	return err == nil && ok
}
