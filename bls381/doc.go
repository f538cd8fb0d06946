// Package bls381 provides the curve-level building blocks for BLS
// signatures over BLS12-381: wrapped G1/G2 points, the compressed wire
// codec, a pairing accumulator, hash-to-curve with a 64-bit domain tag,
// and scalar randomness.
//
// All curve and field arithmetic is delegated to
// github.com/consensys/gnark-crypto; this package adds the pieces a
// signature scheme needs on top of it and fixes the wire format.
//
// # Serialization
//
// Points travel in compressed form: 48 bytes for G1, 96 bytes for G2.
// The top three bits of byte 0 are flags:
//
//   - bit 7: compression flag, always set
//   - bit 6: infinity flag
//   - bit 5: y-sign flag, set when y is the larger of the two roots
//
// The remaining bits hold the big-endian x-coordinate. For G2 the
// imaginary component of x comes first, then the real component. The
// identity encodes as 0xc0 followed by zeros, and any other byte
// pattern carrying the infinity flag is rejected.
//
// [CompressG1], [DecompressG1], [CompressG2] and [DecompressG2] are the
// single source of truth for this format; every serialized type in the
// bls package round-trips through them. Decompression rejects
// non-canonical x-coordinates and points outside the prime-order
// subgroup.
//
// # Deferred Normalization
//
// [G1Point] and [G2Point] accumulate in Jacobian coordinates, so long
// chains of additions never pay for field inversions. Normalization to
// affine form happens only at comparison and serialization boundaries,
// either explicitly via Normalize or implicitly via Affine, Equal and
// Bytes.
//
// # Security Considerations
//
//   - Decoded points are always checked for subgroup membership.
//   - [RandomScalar] must be fed a cryptographically secure reader;
//     batch verification in the bls package relies on the independence
//     of the scalars it produces.
//   - Wrapped points are not safe for concurrent mutation. Build
//     disjoint partial aggregates and merge them instead.
package bls381
