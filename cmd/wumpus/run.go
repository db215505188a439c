package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wumpus/config"
	"github.com/katalvlaran/wumpus/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run the agent against a world file to completion or timeout",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("world", "", "path to world YAML file")
}

func runRun(cmd *cobra.Command, args []string) error {
	worldPath, _ := cmd.Flags().GetString("world")
	if worldPath == "" {
		return fmt.Errorf("--world flag is required")
	}

	logLevel := zerolog.InfoLevel
	if verbose {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Logger().Level(logLevel)

	world, arrows, err := config.Load(worldPath)
	if err != nil {
		return fmt.Errorf("failed to load world: %w", err)
	}

	metrics := engine.NewMetrics(prometheus.NewRegistry())
	e := engine.New(logger, metrics)
	e.Construct(world, arrows)

	for {
		obs, err := e.Step()
		if err != nil {
			return fmt.Errorf("step failed: %w", err)
		}
		if !obs.Alive {
			fmt.Printf("terminated: death_cause=%s steps=%d gold_found=%t\n", obs.DeathCause, obs.Steps, obs.GoldFound)

			return nil
		}
		if obs.GoldFound && obs.Pos.I == 0 && obs.Pos.J == 0 {
			fmt.Printf("success: steps=%d wumpus_kill_count=%d\n", obs.Steps, obs.WumpusKillCount)

			return nil
		}
	}
}
