package utils

import (
	"testing"
)

func TestParseTopology(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"6 3 5 2", []int{6, 3, 5, 2}},
		{"6,3,5,2", []int{6, 3, 5, 2}},
		{"6, 3, 5, 2", []int{6, 3, 5, 2}},
		{"2", []int{2}},
	}
	for _, c := range cases {
		got, err := ParseTopology(c.in)
		if err != nil {
			t.Fatalf("ParseTopology(%q): %v", c.in, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("ParseTopology(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ParseTopology(%q)[%d] = %d, want %d", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestParseTopologyErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "6,x,2", "6;3"} {
		if _, err := ParseTopology(in); err == nil {
			t.Errorf("ParseTopology(%q) succeeded, want error", in)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	good := &Config{Layers: []int{6, 3, 5, 2}, Activator: "tanh", TeamA: 0, TeamB: 1}
	if err := ValidateConfig(good); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []*Config{
		{Layers: nil, Activator: "tanh", TeamA: 0, TeamB: 1},
		{Layers: []int{6, 0, 2}, Activator: "tanh", TeamA: 0, TeamB: 1},
		{Layers: []int{6, 3}, Activator: "tanh", TeamA: 0, TeamB: 1},
		{Layers: []int{6, 2}, Activator: "softsign", TeamA: 0, TeamB: 1},
		{Layers: []int{6, 2}, Activator: "tanh", TeamA: 4, TeamB: 4},
	}
	for i, c := range cases {
		if err := ValidateConfig(c); err == nil {
			t.Errorf("case %d: invalid config accepted", i)
		}
	}
}
