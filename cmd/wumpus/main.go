package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "wumpus",
	Short:   "Belief-and-decision engine for a Wumpus-world agent",
	Long:    `wumpus drives the hybrid SAT/heuristic belief engine and risk-weighted planner against a world file, either running it to completion or printing a world file's percepts at the origin.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
}

// Commands are defined in separate files:
// - runCmd in run.go
// - inspectCmd in inspect.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
