package nn

import "testing"

func TestSourceDeterminism(t *testing.T) {
	a := newSource(297)
	b := newSource(297)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: streams diverged, %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d: %v outside [0, 1)", i, va)
		}
	}
}

func TestSourceKnownStream(t *testing.T) {
	// Snapshot of the first draws for two seeds. These pin the exact
	// generator semantics; a change here changes every visualization.
	cases := []struct {
		seed int64
		want []float64
	}{
		{297, []float64{0.29382325685583055, 0.2838122935499996, 0.34483545017428696, 0.6605979551095515}},
		{1, []float64{0.6270739405881613, 0.002735721180215478, 0.5274470399599522}},
	}
	for _, c := range cases {
		rng := newSource(c.seed)
		for i, want := range c.want {
			if got := rng.Float64(); got != want {
				t.Errorf("seed %d draw %d = %v, want %v", c.seed, i, got, want)
			}
		}
	}
}

func TestSourceSeedTruncation(t *testing.T) {
	// Seeds wrap to 32 bits, so seed and seed+2^32 give the same stream.
	a := newSource(5)
	b := newSource(5 + (1 << 32))
	for i := 0; i < 10; i++ {
		if va, vb := a.Float64(), b.Float64(); va != vb {
			t.Fatalf("draw %d: %v vs %v", i, va, vb)
		}
	}
}
