package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Trace is the complete sequence of per-layer activation vectors for one
// evaluation, input layer included. Every evaluation allocates a fresh
// trace; consumers treat it as read-only.
type Trace []*mat.VecDense

// Final returns the output-layer vector.
func (t Trace) Final() *mat.VecDense {
	return t[len(t)-1]
}

// Widths returns the layer widths the trace spans, input first.
func (t Trace) Widths() []int {
	widths := make([]int, len(t))
	for i, v := range t {
		widths[i] = v.Len()
	}
	return widths
}

// Evaluate feeds input through the parameters and records the activation
// vector at every layer. The input slice is copied into the trace, never
// aliased, so the caller's data stays untouched.
//
// The activator runs on every transition including the last one; scoring
// the output through a sigmoid is the decision layer's business, not the
// evaluator's.
func Evaluate(p Params, input []float64, act Activator) (Trace, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: no layer parameters", ErrInvalidTopology)
	}
	if len(input) != p.InputDim() {
		return nil, fmt.Errorf("%w: input has %d entries, first layer expects %d",
			ErrShapeMismatch, len(input), p.InputDim())
	}

	trace := make(Trace, len(p)+1)
	trace[0] = mat.NewVecDense(len(input), append([]float64(nil), input...))
	for l, layer := range p {
		outN, _ := layer.W.Dims()
		z := mat.NewVecDense(outN, nil)
		z.MulVec(layer.W, trace[l])
		z.AddVec(z, layer.B)
		for i := 0; i < outN; i++ {
			z.SetVec(i, act.Activate(i, 0, z.AtVec(i)))
		}
		trace[l+1] = z
	}

	return trace, nil
}
