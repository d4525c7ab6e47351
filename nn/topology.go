package nn

import "fmt"

// Topology lists layer widths in order, input layer first.
type Topology []int

// Validate checks that the topology has at least an input and an output
// layer and that every width is positive.
func (t Topology) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidTopology, len(t))
	}
	for i, n := range t {
		if n <= 0 {
			return fmt.Errorf("%w: layer %d has width %d", ErrInvalidTopology, i, n)
		}
	}
	return nil
}

// Transitions returns the number of weight matrices the topology implies.
func (t Topology) Transitions() int {
	return len(t) - 1
}
