package bls

import (
	"github.com/f3rmion/aggsig/bls381"
)

// Signature is a point in G2.
type Signature struct {
	point *bls381.G2Point
}

// Sign produces a signature sk*H(msg, domain).
func Sign(msg []byte, domain uint64, sk *SecretKey) (*Signature, error) {
	h, err := bls381.HashToG2(msg, domain)
	if err != nil {
		return nil, err
	}
	p := bls381.G2PointFromAffine(&h).ScalarMult(&sk.s)
	return &Signature{point: p}, nil
}

// SignatureFromBytes decodes a compressed signature.
func SignatureFromBytes(data []byte) (*Signature, error) {
	p, err := bls381.G2PointFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &Signature{point: p}, nil
}

// Bytes returns the 96-byte compressed encoding of the signature.
func (s *Signature) Bytes() []byte {
	return s.point.Bytes()
}

// Verify checks the signature over msg and domain against a single
// public key: e(S, -G)*e(H(msg, domain), PK) must be the identity.
func (s *Signature) Verify(msg []byte, domain uint64, pk *PublicKey) bool {
	return verifyPairing(s.point, msg, domain, pk.point)
}

// verifyPairing runs the shared two-term pairing check used by both
// single and aggregate verification.
func verifyPairing(sig *bls381.G2Point, msg []byte, domain uint64, key *bls381.G1Point) bool {
	h, err := bls381.HashToG2(msg, domain)
	if err != nil {
		return false
	}
	sigAff := sig.Affine()
	keyAff := key.Affine()
	negGen := bls381.NegG1Generator()

	var acc bls381.Accumulator
	acc.Add(&negGen, &sigAff)
	acc.Add(&keyAff, &h)
	return acc.IsIdentity()
}
