package bls381

import (
	"encoding/binary"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Cached affine generators. Computed once at startup and only ever
// handed out by value.
var (
	g1Gen    bls12381.G1Affine
	g1GenNeg bls12381.G1Affine
	g2Gen    bls12381.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bls12381.Generators()
	g1GenNeg.Neg(&g1Gen)
}

// G1Generator returns the G1 base point.
func G1Generator() bls12381.G1Affine {
	return g1Gen
}

// NegG1Generator returns the negated G1 base point. Verification
// pairs the signature with this point so the whole check reduces to a
// single product-equals-one test.
func NegG1Generator() bls12381.G1Affine {
	return g1GenNeg
}

// G2Generator returns the G2 base point.
func G2Generator() bls12381.G2Affine {
	return g2Gen
}

// hashDST is the base domain separation tag for hash-to-curve. The
// caller's 64-bit domain tag is appended big-endian, so identical
// messages under different domains map to unrelated points.
const hashDST = "BLS-SIG-AGG-V1-BLS12381G2_XMD:SHA-256_SSWU_RO_"

// HashToG2 maps a message and a 64-bit domain tag to a point on G2.
func HashToG2(msg []byte, domain uint64) (bls12381.G2Affine, error) {
	dst := make([]byte, 0, len(hashDST)+8)
	dst = append(dst, hashDST...)
	dst = binary.BigEndian.AppendUint64(dst, domain)
	return bls12381.HashToG2(msg, dst)
}

// RandomScalar returns a scalar drawn uniformly from [1, r) where r is
// the order of the prime-order subgroup. The reader must be a
// cryptographically secure source.
func RandomScalar(rnd io.Reader) (fr.Element, error) {
	var s fr.Element
	// Oversample by 16 bytes so the modular reduction is uniform.
	buf := make([]byte, fr.Bytes+16)
	var k big.Int
	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return s, err
		}
		k.SetBytes(buf)
		k.Mod(&k, fr.Modulus())
		s.SetBigInt(&k)
		if !s.IsZero() {
			return s, nil
		}
	}
}

// fieldBytes is the byte width of one base field element, which is also
// the width of a compressed G1 point and half a compressed G2 point.
const fieldBytes = fp.Bytes
