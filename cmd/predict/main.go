// matchnet-predict: run one matchup through the seeded network
package main

import (
	"flag"
	"fmt"
	"os"

	"matchnet/predict"
	"matchnet/utils"
)

var (
	teamA     = flag.Int("a", 0, "First team id")
	teamB     = flag.Int("b", 1, "Second team id")
	layersStr = flag.String("layers", "6,3,5,2", "Hidden and output layer widths")
	verbose   = flag.Bool("verbose", true, "Print the full activation trace")
)

func main() {
	flag.Parse()

	layers, err := utils.ParseTopology(*layersStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing layers: %v\n", err)
		os.Exit(1)
	}
	cfg := &utils.Config{Layers: layers, Activator: "tanh", TeamA: *teamA, TeamB: *teamB}
	if err := utils.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := []float64{float64(*teamA), float64(*teamB)}
	outcome, err := predict.ComputeWinner(layers, predict.Matchup{A: *teamA, B: *teamB}, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Matchup: team %d vs team %d\n", *teamA, *teamB)
	fmt.Printf("Seed: %d\n", outcome.Seed)
	if *verbose {
		for i, layer := range outcome.Trace {
			fmt.Printf("  layer %d:", i)
			for j := 0; j < layer.Len(); j++ {
				fmt.Printf(" %+.4f", layer.AtVec(j))
			}
			fmt.Println()
		}
	}
	fmt.Printf("Winner: team %d\n", outcome.Winner)
}
