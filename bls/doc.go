// Package bls implements BLS signatures over BLS12-381 with signature
// and public key aggregation, aimed at settings such as consensus
// protocols where many independent signatures are combined into one
// compact aggregate and verified together.
//
// Public keys live in G1, signatures in G2. A signature on a message
// is sk*H(msg, domain) where H is hash-to-curve and domain is a 64-bit
// context separator.
//
// # Aggregation
//
// [AggregatePublicKey] and [AggregateSignature] are running sums of
// curve points. Both start at the identity and grow only by addition,
// which is associative and commutative: adding the same inputs in any
// order, or merging partial aggregates with AddAggregate, produces the
// same value. That makes partition-then-merge the natural pattern for
// concurrent producers — build disjoint partial aggregates
// independently and combine them at the end. A single accumulator must
// not be mutated from multiple goroutines.
//
// Aggregates do not record which inputs contributed to them. Two key
// sets summing to the same point are indistinguishable, so defenses
// that need signer identity, such as proof of possession, belong to
// the protocol layer above this package.
//
// # Verification
//
// Three protocols are provided, all pure predicates that report
// malformed input and invalid proofs identically as false:
//
//   - [AggregateSignature.Verify] checks one aggregate over a single
//     message against one aggregate key.
//   - [AggregateSignature.VerifyMultiple] checks one aggregate claimed
//     to cover several (message, aggregate key) pairs, paying for one
//     final exponentiation regardless of the number of pairs.
//   - [VerifyMultipleSignatures] batches several independently built
//     aggregates into one check, blinding each set with a fresh random
//     scalar so that precomputed rogue keys cannot cancel across sets.
//     The quality and independence of the supplied randomness is an
//     operational requirement; it is not audited here.
//
// # Example
//
//	kp1, _ := bls.NewKeypair(rand.Reader)
//	kp2, _ := bls.NewKeypair(rand.Reader)
//
//	msg := []byte("hello")
//	sig1, _ := bls.Sign(msg, 42, kp1.Secret)
//	sig2, _ := bls.Sign(msg, 42, kp2.Secret)
//
//	aggSig := bls.NewAggregateSignature()
//	aggSig.Add(sig1)
//	aggSig.Add(sig2)
//	aggKey := bls.AggregatePublicKeyFromPublicKeys(
//		[]*bls.PublicKey{kp1.Public, kp2.Public})
//
//	ok := aggSig.Verify(msg, 42, aggKey)
package bls
