package bls381

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Compressed points taken from the eth2.0 BLS test vectors.
var (
	g1Vectors = []string{
		"b53d21a4cfd562c469cc81514d4ce5a6b577d8403d32a394dc265dd190b47fa9f829fdd7963afdf972e5e77854051f6f",
		"b301803f8b5ac4a1133581fc676dfedc60d891dd5fa99028805e5ea5b08d3491af75d0707adab3b70c6a6a580217bf81",
		"a491d1b0ecd9bb917989f0e74f0dea0422eac4a873e5e2644f368dffb9a6e20fd6e10c1b77654d067c0618f6e5a7f79a",
	}
	g2Vectors = []string{
		"a666d31d7e6561371644eb9ca7dbcb87257d8fd84a09e38a7a491ce0bbac64a324aa26385aebc99f47432970399a2ecb" +
			"0def2d4be359640e6dae6438119cbdc4f18e5e4496c68a979473a72b72d3badf98464412e9d8f8d2ea9b31953bb24899",
		"a63e88274adb7a98d112c16f7057f388786496c8f57e03ee9052b46b15eb0166645008f8cc929eb4475e386f3e6f1df8" +
			"1181e97fac61e371a22f34a4622f7e343ca0d99846b175a92ad1bf1df6fd4d0800e4edb7c2eb3d8437ed10cbc2d88823",
		"b090fbc9d5c6c80fec73c567202a75664cd00c2592e472a4d81d2ed4b6a166311e809ca25eb88c5d0189cbf1baa8ea79" +
			"18ca20f0b66678c0230e65eb4ebb3d621940984f71eb5481453e4489dafcc7f6ee2c863b76671467002a8f2392063005",
	}
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test data: %v", err)
	}
	return b
}

func TestCompressG1RoundTrip(t *testing.T) {
	for _, v := range g1Vectors {
		data := mustHex(t, v)
		p, err := DecompressG1(data)
		if err != nil {
			t.Fatalf("DecompressG1(%s): %v", v, err)
		}
		if out := CompressG1(&p); !bytes.Equal(out, data) {
			t.Errorf("round trip mismatch for %s: got %x", v, out)
		}

		// The format must agree with the provider's own codec.
		var q bls12381.G1Affine
		if _, err := q.SetBytes(data); err != nil {
			t.Fatalf("gnark SetBytes(%s): %v", v, err)
		}
		if !p.Equal(&q) {
			t.Errorf("decoded point disagrees with provider for %s", v)
		}
	}
}

func TestCompressG2RoundTrip(t *testing.T) {
	for _, v := range g2Vectors {
		data := mustHex(t, v)
		p, err := DecompressG2(data)
		if err != nil {
			t.Fatalf("DecompressG2(%s): %v", v, err)
		}
		if out := CompressG2(&p); !bytes.Equal(out, data) {
			t.Errorf("round trip mismatch for %s: got %x", v, out)
		}

		var q bls12381.G2Affine
		if _, err := q.SetBytes(data); err != nil {
			t.Fatalf("gnark SetBytes(%s): %v", v, err)
		}
		if !p.Equal(&q) {
			t.Errorf("decoded point disagrees with provider for %s", v)
		}
	}
}

func TestCompressInfinity(t *testing.T) {
	t.Run("G1", func(t *testing.T) {
		var inf bls12381.G1Affine
		data := CompressG1(&inf)
		if data[0] != flagCompressed|flagInfinity {
			t.Fatalf("infinity flags = %#02x", data[0])
		}
		for _, b := range data[1:] {
			if b != 0 {
				t.Fatal("infinity encoding has non-zero trailing bytes")
			}
		}
		p, err := DecompressG1(data)
		if err != nil {
			t.Fatalf("DecompressG1: %v", err)
		}
		if !p.IsInfinity() {
			t.Error("round-tripped infinity is not infinity")
		}
	})

	t.Run("G2", func(t *testing.T) {
		var inf bls12381.G2Affine
		data := CompressG2(&inf)
		if data[0] != flagCompressed|flagInfinity {
			t.Fatalf("infinity flags = %#02x", data[0])
		}
		p, err := DecompressG2(data)
		if err != nil {
			t.Fatalf("DecompressG2: %v", err)
		}
		if !p.IsInfinity() {
			t.Error("round-tripped infinity is not infinity")
		}
	})
}

func TestCompressGeneratorMultiples(t *testing.T) {
	for k := uint64(1); k <= 5; k++ {
		var s fr.Element
		s.SetUint64(k)

		g1 := G1Generator()
		p1 := G1PointFromAffine(&g1).ScalarMult(&s).Affine()
		r1, err := DecompressG1(CompressG1(&p1))
		if err != nil {
			t.Fatalf("G1 k=%d: %v", k, err)
		}
		if !r1.Equal(&p1) {
			t.Errorf("G1 k=%d: round trip changed the point", k)
		}

		g2 := G2Generator()
		p2 := G2PointFromAffine(&g2).ScalarMult(&s).Affine()
		r2, err := DecompressG2(CompressG2(&p2))
		if err != nil {
			t.Fatalf("G2 k=%d: %v", k, err)
		}
		if !r2.Equal(&p2) {
			t.Errorf("G2 k=%d: round trip changed the point", k)
		}
	}
}

// Flipping the y-sign flag must decode to the negated point.
func TestYSignFlagSelectsRoot(t *testing.T) {
	g1 := G1Generator()
	data := CompressG1(&g1)
	data[0] ^= flagYSign

	p, err := DecompressG1(data)
	if err != nil {
		t.Fatalf("DecompressG1: %v", err)
	}
	var neg bls12381.G1Affine
	neg.Neg(&g1)
	if !p.Equal(&neg) {
		t.Error("flipped sign flag did not select the other root")
	}
}

func TestDecompressG1Errors(t *testing.T) {
	valid := mustHex(t, g1Vectors[0])

	badX := make([]byte, G1CompressedSize)
	badX[0] = flagCompressed | 0x1f
	for i := 1; i < len(badX); i++ {
		badX[i] = 0xff
	}

	// x = 0 solves the curve equation but the resulting point is not
	// in the prime-order subgroup.
	zeroX := make([]byte, G1CompressedSize)
	zeroX[0] = flagCompressed

	infStrayFlag := make([]byte, G1CompressedSize)
	infStrayFlag[0] = flagCompressed | flagInfinity | flagYSign

	infTrailing := make([]byte, G1CompressedSize)
	infTrailing[0] = flagCompressed | flagInfinity
	infTrailing[G1CompressedSize-1] = 1

	noFlag := make([]byte, G1CompressedSize)
	copy(noFlag, valid)
	noFlag[0] &^= flagCompressed

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrIncorrectSize},
		{"too short", valid[:G1CompressedSize-1], ErrIncorrectSize},
		{"too long", append(append([]byte{}, valid...), 0), ErrIncorrectSize},
		{"compression flag clear", noFlag, ErrInvalidCompressionFlag},
		{"infinity with sign flag", infStrayFlag, ErrBadPoint},
		{"infinity with trailing byte", infTrailing, ErrBadPoint},
		{"x not canonical", badX, ErrBadPoint},
		{"point outside subgroup", zeroX, ErrBadPoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecompressG1(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecompressG2Errors(t *testing.T) {
	valid := mustHex(t, g2Vectors[0])

	badX := make([]byte, G2CompressedSize)
	badX[0] = flagCompressed | 0x1f
	for i := 1; i < len(badX); i++ {
		badX[i] = 0xff
	}

	zeroX := make([]byte, G2CompressedSize)
	zeroX[0] = flagCompressed

	infStrayFlag := make([]byte, G2CompressedSize)
	infStrayFlag[0] = flagCompressed | flagInfinity | flagYSign

	infTrailing := make([]byte, G2CompressedSize)
	infTrailing[0] = flagCompressed | flagInfinity
	infTrailing[G2CompressedSize-1] = 1

	noFlag := make([]byte, G2CompressedSize)
	copy(noFlag, valid)
	noFlag[0] &^= flagCompressed

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrIncorrectSize},
		{"G1 sized", valid[:G1CompressedSize], ErrIncorrectSize},
		{"too long", append(append([]byte{}, valid...), 0), ErrIncorrectSize},
		{"compression flag clear", noFlag, ErrInvalidCompressionFlag},
		{"infinity with sign flag", infStrayFlag, ErrBadPoint},
		{"infinity with trailing byte", infTrailing, ErrBadPoint},
		{"x not canonical", badX, ErrBadPoint},
		{"x not on curve", zeroX, ErrBadPoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecompressG2(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
