package bls381

import "errors"

// Decoding errors returned by the compressed point codec. These are the
// only errors this package produces from wire input; everything else in
// the signature scheme reports failure as a plain false.
var (
	// ErrIncorrectSize means the input is not exactly 48 (G1) or
	// 96 (G2) bytes long.
	ErrIncorrectSize = errors.New("compressed point has incorrect size")
	// ErrInvalidCompressionFlag means the compression flag (bit 7 of
	// byte 0) is not set.
	ErrInvalidCompressionFlag = errors.New("compression flag not set")
	// ErrBadPoint means the bytes carry a malformed infinity pattern,
	// a non-canonical x-coordinate, or an x that does not correspond
	// to a point in the prime-order subgroup.
	ErrBadPoint = errors.New("bytes do not encode a valid point")
)
