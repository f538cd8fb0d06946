package bls

import (
	"io"

	"github.com/f3rmion/aggsig/bls381"
)

// MessageLength is the required message size, in bytes, for
// [AggregateSignature.VerifyMultiple].
const MessageLength = 32

// AggregatePublicKey is a sum of zero or more public keys. The zero
// aggregate is the identity; keys are only ever added, never removed,
// and the aggregate does not remember which keys contributed.
type AggregatePublicKey struct {
	point *bls381.G1Point
}

// NewAggregatePublicKey returns an empty aggregate.
func NewAggregatePublicKey() *AggregatePublicKey {
	return &AggregatePublicKey{point: bls381.NewG1Point()}
}

// AggregatePublicKeyFromPublicKeys folds keys into a fresh aggregate
// and normalizes the result once.
func AggregatePublicKeyFromPublicKeys(keys []*PublicKey) *AggregatePublicKey {
	apk := NewAggregatePublicKey()
	for _, pk := range keys {
		apk.Add(pk)
	}
	apk.point.Normalize()
	return apk
}

// AggregatePublicKeyFromBytes decodes a compressed aggregate key.
func AggregatePublicKeyFromBytes(data []byte) (*AggregatePublicKey, error) {
	p, err := bls381.G1PointFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &AggregatePublicKey{point: p}, nil
}

// Add accumulates a public key. Normalization is deferred to the
// comparison and serialization boundaries.
func (apk *AggregatePublicKey) Add(pk *PublicKey) {
	apk.point.Add(pk.point)
}

// AddAggregate merges another aggregate into this one. Addition is
// associative and commutative, so partial aggregates may be built
// independently and merged in any order.
func (apk *AggregatePublicKey) AddAggregate(other *AggregatePublicKey) {
	apk.point.Add(other.point)
}

// Bytes returns the 48-byte compressed encoding of the aggregate.
func (apk *AggregatePublicKey) Bytes() []byte {
	return apk.point.Bytes()
}

// Equal reports whether two aggregates sum to the same point,
// regardless of which keys produced them.
func (apk *AggregatePublicKey) Equal(other *AggregatePublicKey) bool {
	return apk.point.Equal(other.point)
}

// AggregateSignature is a sum of zero or more signatures, with the
// same aggregation contract as [AggregatePublicKey].
type AggregateSignature struct {
	point *bls381.G2Point
}

// NewAggregateSignature returns an empty aggregate.
func NewAggregateSignature() *AggregateSignature {
	return &AggregateSignature{point: bls381.NewG2Point()}
}

// AggregateSignatureFromBytes decodes a compressed aggregate signature.
func AggregateSignatureFromBytes(data []byte) (*AggregateSignature, error) {
	p, err := bls381.G2PointFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &AggregateSignature{point: p}, nil
}

// Add accumulates a signature.
func (as *AggregateSignature) Add(sig *Signature) {
	as.point.Add(sig.point)
}

// AddAggregate merges another aggregate signature into this one.
func (as *AggregateSignature) AddAggregate(other *AggregateSignature) {
	as.point.Add(other.point)
}

// Bytes returns the 96-byte compressed encoding of the aggregate.
func (as *AggregateSignature) Bytes() []byte {
	return as.point.Bytes()
}

// Equal reports whether two aggregates sum to the same point.
func (as *AggregateSignature) Equal(other *AggregateSignature) bool {
	return as.point.Equal(other.point)
}

// Verify checks the aggregate signature over one message against an
// aggregate public key: every signer must have signed exactly msg
// under domain, and apk must be the sum of exactly the signing keys.
func (as *AggregateSignature) Verify(msg []byte, domain uint64, apk *AggregatePublicKey) bool {
	return verifyPairing(as.point, msg, domain, apk.point)
}

// VerifyMultiple checks the aggregate signature against several
// (message, aggregate key) pairs at once. All public keys attesting to
// one message must be pre-aggregated into the matching entry of apks.
//
// Messages must be exactly [MessageLength] bytes and in 1:1
// correspondence with apks; any violation returns false. The whole
// product e(H(m_1), apk_1)*...*e(H(m_k), apk_k)*e(S, -G) is evaluated
// with a single shared final exponentiation.
func (as *AggregateSignature) VerifyMultiple(msgs [][]byte, domain uint64, apks []*AggregatePublicKey) bool {
	if len(msgs) != len(apks) || len(apks) == 0 {
		return false
	}

	var acc bls381.Accumulator
	for i, apk := range apks {
		if len(msgs[i]) != MessageLength {
			return false
		}
		h, err := bls381.HashToG2(msgs[i], domain)
		if err != nil {
			return false
		}
		keyAff := apk.point.Affine()
		acc.Add(&keyAff, &h)
	}

	sigAff := as.point.Affine()
	negGen := bls381.NegG1Generator()
	acc.Add(&negGen, &sigAff)
	return acc.IsIdentity()
}

// SignatureSet is one independently built aggregate for batch
// verification: an aggregate signature, the public keys of its
// signers, the message each key signed, and the domain it was signed
// under. PublicKeys and Messages correspond index by index.
type SignatureSet struct {
	Signature  *AggregateSignature
	PublicKeys []*PublicKey
	Messages   [][]byte
	Domain     uint64
}

// VerifyMultipleSignatures batches the verification of several
// independently built aggregate signatures into one pairing product,
// following the random linear combination scheme of
// https://ethresear.ch/t/fast-verification-of-multiple-bls-signatures/5407.
//
// Each set is blinded by a fresh scalar drawn from rnd; the
// independence of those scalars across sets is what prevents a
// precomputed rogue-key forgery in one set from cancelling against
// another, so rnd must be cryptographically secure. A key/message
// length mismatch in any set fails the whole batch.
func VerifyMultipleSignatures(rnd io.Reader, sets []SignatureSet) bool {
	total := bls381.NewG2Point()
	var acc bls381.Accumulator

	for _, set := range sets {
		if len(set.PublicKeys) != len(set.Messages) {
			return false
		}
		blind, err := bls381.RandomScalar(rnd)
		if err != nil {
			return false
		}

		for i, pk := range set.PublicKeys {
			h, err := bls381.HashToG2(set.Messages[i], set.Domain)
			if err != nil {
				return false
			}
			keyAff := bls381.NewG1Point().Set(pk.point).ScalarMult(&blind).Affine()
			acc.Add(&keyAff, &h)
		}

		total.Add(bls381.NewG2Point().Set(set.Signature.point).ScalarMult(&blind))
	}

	sigAff := total.Normalize().Affine()
	negGen := bls381.NegG1Generator()
	acc.Add(&negGen, &sigAff)
	return acc.IsIdentity()
}
