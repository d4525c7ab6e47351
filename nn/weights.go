package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Layer holds the parameters of one layer transition: a weight matrix
// with one row per output neuron, and the bias vector added to the
// weighted sums. Once generated a Layer is never mutated; fresh
// parameters require a fresh Generate call.
type Layer struct {
	W *mat.Dense
	B *mat.VecDense
}

// Params carries one Layer per topology transition.
type Params []Layer

// InputDim returns the input width the parameters expect.
func (p Params) InputDim() int {
	_, c := p[0].W.Dims()
	return c
}

// OutputDim returns the width of the final layer.
func (p Params) OutputDim() int {
	r, _ := p[len(p)-1].W.Dims()
	return r
}

// Generate builds parameters for the topology from a seeded stream.
// The same (topology, seed) pair always yields bit-identical parameters.
// Draws are consumed row-major through each weight matrix, then through
// its bias vector, before moving to the next transition; this order is
// part of the contract.
//
// Each weight is drawn uniformly from [-1, 1) and scaled by sqrt(1/inN),
// each bias by 0.1.
func Generate(top Topology, seed int64) (Params, error) {
	if err := top.Validate(); err != nil {
		return nil, err
	}

	rng := newSource(seed)
	params := make(Params, top.Transitions())
	for l := range params {
		inN, outN := top[l], top[l+1]
		scale := math.Sqrt(1.0 / float64(inN))

		w := make([]float64, outN*inN)
		for i := range w {
			w[i] = (rng.Float64()*2 - 1) * scale
		}
		b := make([]float64, outN)
		for i := range b {
			b[i] = (rng.Float64()*2 - 1) * 0.1
		}

		params[l] = Layer{
			W: mat.NewDense(outN, inN, w),
			B: mat.NewVecDense(outN, b),
		}
	}

	return params, nil
}
