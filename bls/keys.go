package bls

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/f3rmion/aggsig/bls381"
)

// SecretKey is a scalar in [1, r) where r is the subgroup order.
type SecretKey struct {
	s fr.Element
}

// secretKeyMaxBytes caps the accepted big-endian input width, matching
// the base field width so zero-padded field-sized encodings decode.
const secretKeyMaxBytes = 48

// GenerateKey draws a fresh secret key from rnd, which must be a
// cryptographically secure source such as crypto/rand.Reader.
func GenerateKey(rnd io.Reader) (*SecretKey, error) {
	s, err := bls381.RandomScalar(rnd)
	if err != nil {
		return nil, err
	}
	return &SecretKey{s: s}, nil
}

// SecretKeyFromBytes builds a secret key from a big-endian integer of
// at most 48 bytes, reduced modulo the subgroup order.
func SecretKeyFromBytes(data []byte) (*SecretKey, error) {
	if len(data) > secretKeyMaxBytes {
		return nil, bls381.ErrIncorrectSize
	}
	var k big.Int
	k.SetBytes(data)
	k.Mod(&k, fr.Modulus())
	sk := new(SecretKey)
	sk.s.SetBigInt(&k)
	return sk, nil
}

// Bytes returns the 32-byte big-endian encoding of the secret key.
func (sk *SecretKey) Bytes() []byte {
	b := sk.s.Bytes()
	return b[:]
}

// PublicKey derives the public key sk*G.
func (sk *SecretKey) PublicKey() *PublicKey {
	g := bls381.G1Generator()
	p := bls381.G1PointFromAffine(&g).ScalarMult(&sk.s)
	return &PublicKey{point: p}
}

// PublicKey is a point in G1. Whether its holder actually possesses
// the matching secret key is a concern for the caller.
type PublicKey struct {
	point *bls381.G1Point
}

// PublicKeyFromBytes decodes a compressed public key.
func PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	p, err := bls381.G1PointFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// Bytes returns the 48-byte compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return pk.point.Bytes()
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// Keypair bundles a secret key with its public key.
type Keypair struct {
	Secret *SecretKey
	Public *PublicKey
}

// NewKeypair generates a keypair from rnd.
func NewKeypair(rnd io.Reader) (*Keypair, error) {
	sk, err := GenerateKey(rnd)
	if err != nil {
		return nil, err
	}
	return &Keypair{Secret: sk, Public: sk.PublicKey()}, nil
}
