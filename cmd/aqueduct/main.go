// Command aqueduct reads grid.txt from the working directory, computes the
// minimum time for water to reach every bath station from the source, and
// writes it to pathLength.txt.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aqueduct/gridfile"
	"github.com/katalvlaran/aqueduct/tour"
)

const (
	inputFile  = "grid.txt"
	outputFile = "pathLength.txt"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	if err := log.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "aqueduct: failed to start logging: %s\n", err)
		return 1
	}
	defer log.Shutdown()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Errorf("aqueduct: %s", err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aqueduct",
		Short: "Minimum water travel time from a source to every bath station",
		Long: `aqueduct reads a height grid, a source station and bath stations from
` + inputFile + `, finds the cheapest order to visit every bath and writes the
total travel time to ` + outputFile + `.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(inputFile, outputFile)
		},
	}
}

// run solves the problem in inPath and records the outcome in outPath.
// A problem without any valid order is a result, not an error.
func run(inPath, outPath string) error {
	p, err := gridfile.Load(inPath)
	if err != nil {
		return err
	}
	log.Infof("aqueduct: loaded %dx%d grid, source %s, %d baths", p.Grid.Width, p.Grid.Height, p.Source, len(p.Baths))
	for _, b := range p.Baths {
		h, _ := p.Grid.HeightAt(b)
		log.Debugf("aqueduct: bath %s at height %d", b, h)
	}

	res, err := tour.MinimumCost(p.Grid, p.Source, p.Baths)
	switch {
	case errors.Is(err, tour.ErrNoPath):
		log.Warningf("aqueduct: no order reaches every bath")
		return gridfile.WriteNoPath(outPath)
	case err != nil:
		return err
	}
	log.Infof("aqueduct: minimum cost %d via %v (%d distance tables, %d states)", res.Cost, res.Order, res.Tables, res.Searched)

	return gridfile.WriteResult(outPath, res.Cost)
}
