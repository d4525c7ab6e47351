package predict

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"matchnet/nn"
)

// Decide maps a two-element output layer to one of two candidates. Each
// element is squashed through a sigmoid and the scores are compared with
// strict greater-than, so an exact tie resolves to b. The tie behavior
// is part of the contract, not an accident.
func Decide[ID comparable](final mat.Vector, a, b ID) (ID, error) {
	if final.Len() != 2 {
		var zero ID
		return zero, fmt.Errorf("%w: final layer has %d entries, want 2",
			nn.ErrShapeMismatch, final.Len())
	}

	scoreA := sigmoid(final.AtVec(0))
	scoreB := sigmoid(final.AtVec(1))
	if scoreA > scoreB {
		return a, nil
	}
	return b, nil
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
