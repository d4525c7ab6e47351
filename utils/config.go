package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"matchnet/nn"
)

// Config holds one prediction run configuration.
type Config struct {
	Layers    []int // hidden and output widths; input width comes from the input vector
	Activator string
	TeamA     int
	TeamB     int
}

// ParseTopology parses a layer-width list such as "6 3 5 2" or "6,3,5,2"
// into a slice of integers.
func ParseTopology(s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty topology")
	}
	layers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing layer width %q: %w", p, err)
		}
		layers[i] = n
	}
	return layers, nil
}

// ValidateConfig validates a prediction run configuration.
func ValidateConfig(c *Config) error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("at least one layer width is required")
	}
	for _, n := range c.Layers {
		if n <= 0 {
			return fmt.Errorf("layer widths must be positive, got %d", n)
		}
	}
	if last := c.Layers[len(c.Layers)-1]; last != 2 {
		return fmt.Errorf("output layer must have width 2, got %d", last)
	}
	if _, ok := nn.ActivatorLookup[c.Activator]; !ok {
		return fmt.Errorf("unknown activator %q", c.Activator)
	}
	if c.TeamA == c.TeamB {
		return fmt.Errorf("the two teams must differ")
	}
	return nil
}
