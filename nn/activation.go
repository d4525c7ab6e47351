package nn

import (
	"fmt"
	"math"
)

// Activator is an elementwise nonlinearity applied to each weighted sum.
// The i, j arguments carry the element position so an Activator can be
// handed straight to gonum's Apply.
type Activator interface {
	Activate(i, j int, sum float64) float64
	fmt.Stringer
}

var ActivatorLookup = map[string]Activator{
	"sigmoid":  Sigmoid{},
	"tanh":     Tanh{},
	"relu":     ReLU{},
	"identity": Identity{},
}

type Sigmoid struct{}

func (s Sigmoid) Activate(i, j int, sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

type Tanh struct{}

func (t Tanh) Activate(i, j int, sum float64) float64 {
	return math.Tanh(sum)
}

func (t Tanh) String() string {
	return "tanh"
}

type ReLU struct{}

func (r ReLU) Activate(i, j int, sum float64) float64 {
	if sum < 0 {
		return 0.0001 * sum
	}
	return sum
}

func (r ReLU) String() string {
	return "relu"
}

// Identity passes weighted sums through untouched, exposing the raw
// linear response of every layer.
type Identity struct{}

func (Identity) Activate(i, j int, sum float64) float64 {
	return sum
}

func (Identity) String() string {
	return "identity"
}
