// Package predict ties seeded weight generation, forward evaluation and
// decision mapping into the single boundary the presentation layer calls.
package predict

import (
	"fmt"

	"matchnet/nn"
)

// Matchup holds the two raw candidate identifiers, in input-slot order.
type Matchup struct {
	A int
	B int
}

// Outcome is the full result of one matchup evaluation: the seed the
// parameters were generated from, the activation trace for every layer,
// and the winning identifier.
type Outcome struct {
	Seed   int64
	Trace  nn.Trace
	Winner int
}

// DeriveSeed computes the generation seed for an input width and the
// caller-supplied hidden/output widths:
//
//	seed = inputDim*131 + sum of (i+1)*layers[i]
//
// Identical picks must always animate and resolve identically, so this
// formula is load-bearing and must not change.
func DeriveSeed(inputDim int, layers []int) int64 {
	seed := int64(inputDim) * 131
	for i, n := range layers {
		seed += int64(i+1) * int64(n)
	}
	return seed
}

// ComputeWinner runs one matchup: it derives the seed, generates
// parameters for the full topology [len(input), layers...], evaluates
// the input with a tanh body, and maps the two-element output to one of
// the matchup's identifiers. The last layers entry must be 2.
func ComputeWinner(layers []int, m Matchup, input []float64) (*Outcome, error) {
	top := append(nn.Topology{len(input)}, layers...)
	seed := DeriveSeed(len(input), layers)

	params, err := nn.Generate(top, seed)
	if err != nil {
		return nil, fmt.Errorf("generating parameters: %w", err)
	}
	trace, err := nn.Evaluate(params, input, nn.Tanh{})
	if err != nil {
		return nil, fmt.Errorf("evaluating network: %w", err)
	}
	winner, err := Decide(trace.Final(), m.A, m.B)
	if err != nil {
		return nil, fmt.Errorf("mapping decision: %w", err)
	}

	return &Outcome{Seed: seed, Trace: trace, Winner: winner}, nil
}
