package flicker

import "testing"

func TestVarianceZeroSpread(t *testing.T) {
	s := NewSampler(7)
	for i := 0; i < 100; i++ {
		if v := s.Variance(0); v != 0 {
			t.Fatalf("Variance(0) = %v, want 0", v)
		}
	}
}

func TestVarianceRangeAndSign(t *testing.T) {
	s := NewSampler(7)
	var neg, pos int
	for i := 0; i < 2000; i++ {
		v := s.Variance(3)
		if v < -3 || v > 3 {
			t.Fatalf("Variance(3) = %v, out of range", v)
		}
		if v < 0 {
			neg++
		} else if v > 0 {
			pos++
		}
	}
	// A fair sign flip lands far from either extreme over 2000 draws.
	if neg < 800 || pos < 800 {
		t.Errorf("sign split neg=%d pos=%d, want roughly even", neg, pos)
	}
}

func TestSamplerReproducible(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 50; i++ {
		va, vb := a.Variance(10), b.Variance(10)
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
	}
}

func TestSamplerPick(t *testing.T) {
	s := NewSampler(1)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		idx := s.Pick(3)
		if idx < 0 || idx >= 3 {
			t.Fatalf("Pick(3) = %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 3 {
		t.Errorf("Pick(3) covered %d indices, want 3", len(seen))
	}
}
