package predict

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"matchnet/nn"
)

func TestDecideTieGoesToSecond(t *testing.T) {
	// Equal scores resolve to the second candidate: the comparison is a
	// strict greater-than with no tie branch, and that is the contract.
	final := mat.NewVecDense(2, []float64{0, 0})
	got, err := Decide(final, "A", "B")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got != "B" {
		t.Errorf("tie resolved to %q, want B", got)
	}
}

func TestDecideMonotonic(t *testing.T) {
	cases := []struct {
		final []float64
		want  string
	}{
		{[]float64{1, -1}, "A"},
		{[]float64{-1, 1}, "B"},
	}
	for _, c := range cases {
		got, err := Decide(mat.NewVecDense(2, c.final), "A", "B")
		if err != nil {
			t.Fatalf("Decide(%v): %v", c.final, err)
		}
		if got != c.want {
			t.Errorf("Decide(%v) = %q, want %q", c.final, got, c.want)
		}
	}
}

func TestDecideShapeMismatch(t *testing.T) {
	final := mat.NewVecDense(3, []float64{1, 2, 3})
	if _, err := Decide(final, "A", "B"); !errors.Is(err, nn.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestDecideIntCandidates(t *testing.T) {
	final := mat.NewVecDense(2, []float64{2, -2})
	got, err := Decide(final, 17, 23)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got != 17 {
		t.Errorf("got %d, want 17", got)
	}
}
