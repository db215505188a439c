package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wumpus/config"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Args:  cobra.NoArgs,
	Short: "Load a world file and print the initial percepts at (0,0)",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("world", "", "path to world YAML file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	worldPath, _ := cmd.Flags().GetString("world")
	if worldPath == "" {
		return fmt.Errorf("--world flag is required")
	}

	world, arrows, err := config.Load(worldPath)
	if err != nil {
		return fmt.Errorf("failed to load world: %w", err)
	}

	p := world.Percepts(0, 0)
	fmt.Printf("n=%d arrows=%d breeze=%t stench=%t glitter=%t arrow=%t\n",
		world.N, arrows, p.Breeze, p.Stench, p.Glitter, p.HasArrow)

	return nil
}
