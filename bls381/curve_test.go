package bls381

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestHashToG2Deterministic(t *testing.T) {
	a, err := HashToG2([]byte("message"), 42)
	if err != nil {
		t.Fatalf("HashToG2: %v", err)
	}
	b, err := HashToG2([]byte("message"), 42)
	if err != nil {
		t.Fatalf("HashToG2: %v", err)
	}
	if !a.Equal(&b) {
		t.Error("same input hashed to different points")
	}
	if a.IsInfinity() {
		t.Error("hash produced the identity")
	}
	if !a.IsInSubGroup() {
		t.Error("hash produced a point outside the subgroup")
	}
}

func TestHashToG2DomainSeparation(t *testing.T) {
	a, err := HashToG2([]byte("message"), 42)
	if err != nil {
		t.Fatalf("HashToG2: %v", err)
	}
	b, err := HashToG2([]byte("message"), 43)
	if err != nil {
		t.Fatalf("HashToG2: %v", err)
	}
	if a.Equal(&b) {
		t.Error("different domains hashed to the same point")
	}

	c, err := HashToG2([]byte("messagf"), 42)
	if err != nil {
		t.Fatalf("HashToG2: %v", err)
	}
	if a.Equal(&c) {
		t.Error("different messages hashed to the same point")
	}
}

func TestRandomScalar(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		s, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		if s.IsZero() {
			t.Fatal("random scalar is zero")
		}
		b := s.Bytes()
		if seen[string(b[:])] {
			t.Fatal("random scalar repeated")
		}
		seen[string(b[:])] = true
	}
}

func TestRandomScalarShortReader(t *testing.T) {
	if _, err := RandomScalar(bytes.NewReader(nil)); err == nil {
		t.Error("expected an error from an exhausted reader")
	}
}

func TestGeneratorsCached(t *testing.T) {
	g := G1Generator()
	neg := NegG1Generator()
	sum := G1PointFromAffine(&g).Add(G1PointFromAffine(&neg))
	if !sum.IsInfinity() {
		t.Error("generator plus negated generator is not the identity")
	}
}
