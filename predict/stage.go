package predict

import (
	"time"

	"matchnet/nn"
)

// Reveal tells the animation layer when to uncover one layer of an
// already-computed trace.
type Reveal struct {
	Layer int
	At    time.Duration
}

// Schedule spreads the layers of a trace over evenly spaced reveal
// offsets starting at zero. It only computes the plan; owning timers is
// the presentation layer's job, and the trace stays untouched.
func Schedule(trace nn.Trace, perLayer time.Duration) []Reveal {
	reveals := make([]Reveal, len(trace))
	for i := range trace {
		reveals[i] = Reveal{Layer: i, At: time.Duration(i) * perLayer}
	}
	return reveals
}
