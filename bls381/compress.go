package bls381

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Compressed encoding widths.
const (
	G1CompressedSize = fieldBytes     // 48
	G2CompressedSize = 2 * fieldBytes // 96
)

// Flag bits carried in the top three bits of byte 0 of a compressed
// encoding. See https://github.com/zkcrypto/pairing/blob/master/src/bls12_381/README.md#serialization
const (
	flagCompressed byte = 1 << 7
	flagInfinity   byte = 1 << 6
	flagYSign      byte = 1 << 5
	flagMask       byte = flagCompressed | flagInfinity | flagYSign
)

// Curve coefficients: y^2 = x^3 + 4 on G1, y^2 = x^3 + 4(1+u) on G2.
var (
	g1B fp.Element
	g2B e2
)

func init() {
	g1B.SetUint64(4)
	g2B.a0.SetUint64(4)
	g2B.a1.SetUint64(4)
}

// CompressG1 encodes a G1 point into its 48-byte compressed form.
func CompressG1(p *bls12381.G1Affine) []byte {
	out := make([]byte, G1CompressedSize)
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}

	x := p.X.Bytes()
	copy(out, x[:])
	out[0] |= flagCompressed

	// Flag y when it is the larger of the two roots.
	var yNeg fp.Element
	yNeg.Neg(&p.Y)
	if p.Y.Cmp(&yNeg) > 0 {
		out[0] |= flagYSign
	}
	return out
}

// DecompressG1 decodes a 48-byte compressed G1 encoding. The x
// coordinate must be canonical and the resulting point must lie in the
// prime-order subgroup.
func DecompressG1(data []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if len(data) != G1CompressedSize {
		return p, ErrIncorrectSize
	}
	if data[0]&flagCompressed == 0 {
		return p, ErrInvalidCompressionFlag
	}
	if data[0]&flagInfinity != 0 {
		// Infinity is exactly the two flags and nothing else.
		if data[0] != flagCompressed|flagInfinity {
			return p, ErrBadPoint
		}
		for _, b := range data[1:] {
			if b != 0 {
				return p, ErrBadPoint
			}
		}
		return p, nil
	}
	ySign := data[0]&flagYSign != 0

	buf := make([]byte, G1CompressedSize)
	copy(buf, data)
	buf[0] &^= flagMask

	var x fp.Element
	if err := x.SetBytesCanonical(buf); err != nil {
		return p, ErrBadPoint
	}

	y, ok := g1YFromX(&x)
	if !ok {
		return p, ErrBadPoint
	}

	// Two candidate roots; the flag picks one.
	var yNeg fp.Element
	yNeg.Neg(&y)
	if (y.Cmp(&yNeg) > 0) != ySign {
		y = yNeg
	}

	p.X, p.Y = x, y
	if !p.IsInSubGroup() {
		return bls12381.G1Affine{}, ErrBadPoint
	}
	return p, nil
}

// CompressG2 encodes a G2 point into its 96-byte compressed form. The
// imaginary component of x leads, then the real component.
func CompressG2(p *bls12381.G2Affine) []byte {
	out := make([]byte, G2CompressedSize)
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}

	xi := p.X.A1.Bytes()
	xr := p.X.A0.Bytes()
	copy(out[:fieldBytes], xi[:])
	copy(out[fieldBytes:], xr[:])
	out[0] |= flagCompressed

	y := e2{a0: p.Y.A0, a1: p.Y.A1}
	var yNeg e2
	yNeg.neg(&y)
	if y.cmp(&yNeg) > 0 {
		out[0] |= flagYSign
	}
	return out
}

// DecompressG2 decodes a 96-byte compressed G2 encoding under the same
// canonicality and subgroup rules as [DecompressG1].
func DecompressG2(data []byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if len(data) != G2CompressedSize {
		return p, ErrIncorrectSize
	}
	if data[0]&flagCompressed == 0 {
		return p, ErrInvalidCompressionFlag
	}
	if data[0]&flagInfinity != 0 {
		if data[0] != flagCompressed|flagInfinity {
			return p, ErrBadPoint
		}
		for _, b := range data[1:] {
			if b != 0 {
				return p, ErrBadPoint
			}
		}
		return p, nil
	}
	ySign := data[0]&flagYSign != 0

	buf := make([]byte, fieldBytes)
	copy(buf, data[:fieldBytes])
	buf[0] &^= flagMask

	var x e2
	if err := x.a1.SetBytesCanonical(buf); err != nil {
		return p, ErrBadPoint
	}
	if err := x.a0.SetBytesCanonical(data[fieldBytes:]); err != nil {
		return p, ErrBadPoint
	}

	y, ok := g2YFromX(&x)
	if !ok {
		return p, ErrBadPoint
	}

	var yNeg e2
	yNeg.neg(&y)
	if (y.cmp(&yNeg) > 0) != ySign {
		y = yNeg
	}

	p.X.A0, p.X.A1 = x.a0, x.a1
	p.Y.A0, p.Y.A1 = y.a0, y.a1
	if !p.IsInSubGroup() {
		return bls12381.G2Affine{}, ErrBadPoint
	}
	return p, nil
}

// g1YFromX solves y^2 = x^3 + 4 for y. The second return is false when
// x is not the abscissa of a curve point.
func g1YFromX(x *fp.Element) (fp.Element, bool) {
	var y fp.Element
	y.Square(x)
	y.Mul(&y, x)
	y.Add(&y, &g1B)
	if y.Sqrt(&y) == nil {
		return fp.Element{}, false
	}
	return y, true
}

// g2YFromX solves y^2 = x^3 + 4(1+u) over Fp2.
func g2YFromX(x *e2) (e2, bool) {
	var t, y e2
	t.square(x)
	t.mul(&t, x)
	t.add(&t, &g2B)
	if !y.sqrt(&t) {
		return e2{}, false
	}
	return y, true
}

// e2 is a quadratic extension field element a0 + a1*u with u^2 = -1,
// just enough Fp2 arithmetic for point reconstruction and coordinate
// ordering. a0 is the real component, a1 the imaginary one.
type e2 struct {
	a0, a1 fp.Element
}

func (z *e2) add(x, y *e2) {
	z.a0.Add(&x.a0, &y.a0)
	z.a1.Add(&x.a1, &y.a1)
}

func (z *e2) neg(x *e2) {
	z.a0.Neg(&x.a0)
	z.a1.Neg(&x.a1)
}

func (z *e2) mul(x, y *e2) {
	// (x0*y0 - x1*y1) + (x0*y1 + x1*y0)u
	var t0, t1, t2, t3 fp.Element
	t0.Mul(&x.a0, &y.a0)
	t1.Mul(&x.a1, &y.a1)
	t2.Mul(&x.a0, &y.a1)
	t3.Mul(&x.a1, &y.a0)
	z.a0.Sub(&t0, &t1)
	z.a1.Add(&t2, &t3)
}

func (z *e2) square(x *e2) {
	// (x0^2 - x1^2) + (2*x0*x1)u
	var t0, t1 fp.Element
	t0.Square(&x.a0)
	t1.Square(&x.a1)
	t0.Sub(&t0, &t1)
	t1.Mul(&x.a0, &x.a1)
	t1.Double(&t1)
	z.a0, z.a1 = t0, t1
}

func (z *e2) equal(x *e2) bool {
	return z.a0.Equal(&x.a0) && z.a1.Equal(&x.a1)
}

// cmp orders elements by imaginary component first, then real. This is
// the ordering the y-sign flag is defined against for G2.
func (z *e2) cmp(x *e2) int {
	if c := z.a1.Cmp(&x.a1); c != 0 {
		return c
	}
	return z.a0.Cmp(&x.a0)
}

// sqrt sets z to a square root of x and reports whether one exists.
// z and x must not alias.
func (z *e2) sqrt(x *e2) bool {
	if x.a1.IsZero() {
		// x is real: the root is real or purely imaginary, since
		// -1 is a non-residue in Fp.
		if z.a0.Sqrt(&x.a0) != nil {
			z.a1.SetZero()
			return true
		}
		var n fp.Element
		n.Neg(&x.a0)
		if z.a1.Sqrt(&n) == nil {
			return false
		}
		z.a0.SetZero()
		return true
	}

	// Norm-based square root: with d = sqrt(a0^2 + a1^2), a root is
	// y0 + (a1 / 2*y0)u where y0^2 is (a0+d)/2 or (a0-d)/2.
	var norm, lambda, t, y0, y1 fp.Element
	norm.Square(&x.a0)
	t.Square(&x.a1)
	norm.Add(&norm, &t)
	if lambda.Sqrt(&norm) == nil {
		return false
	}
	t.Add(&x.a0, &lambda)
	t.Halve()
	if y0.Sqrt(&t) == nil {
		t.Sub(&x.a0, &lambda)
		t.Halve()
		if y0.Sqrt(&t) == nil {
			return false
		}
	}
	y1.Double(&y0)
	y1.Inverse(&y1)
	y1.Mul(&y1, &x.a1)
	z.a0, z.a1 = y0, y1

	var check e2
	check.square(z)
	return check.equal(x)
}
