// matchnet-export: generate parameters for a topology and save them as JSON
package main

import (
	"flag"
	"fmt"
	"os"

	"matchnet/nn"
	"matchnet/predict"
	"matchnet/utils"
)

var (
	layersStr = flag.String("layers", "6,3,5,2", "Hidden and output layer widths")
	inputs    = flag.Int("inputs", 2, "Input layer width")
	seed      = flag.Int64("seed", 0, "Seed override; derived from the topology when 0")
	outFile   = flag.String("out", "params.json", "Output JSON file")
)

func main() {
	flag.Parse()

	layers, err := utils.ParseTopology(*layersStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing layers: %v\n", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = predict.DeriveSeed(*inputs, layers)
	}
	top := append(nn.Topology{*inputs}, layers...)

	params, err := nn.Generate(top, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SaveParams(*outFile, utils.FromNetwork(s, params)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving params: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Topology: %v\n", []int(top))
	fmt.Printf("Seed: %d\n", s)
	fmt.Printf("Wrote %d transitions to %s\n", len(params), *outFile)
}
