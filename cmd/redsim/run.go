package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/JonathanBrouwer/redstone-simulator/schematic"
	"github.com/JonathanBrouwer/redstone-simulator/world"
)

var (
	steps int
	pulse bool
)

var runCmd = &cobra.Command{
	Use:   "run <records.yaml>",
	Short: "Simulate a record file and print probe states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		records, err := schematic.LoadFile(args[0])
		if err != nil {
			return err
		}

		w, err := world.New(records, world.WithLogger(log))
		if err != nil {
			return err
		}
		log.Info().
			Int("records", len(records)).
			Int("nodes", w.Graph().NodeCount()).
			Int("edges", w.Graph().EdgeCount()).
			Strs("triggers", w.Triggers()).
			Msg("world compiled")

		if pulse {
			w.StepWithTrigger()
		}
		for i := 0; i < steps; i++ {
			w.Step()
		}

		for _, name := range w.Probes() {
			on, err := w.GetProbe(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, on)
		}
		log.Info().Uint64("ticks", w.Tick()).Msg("simulation done")

		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&steps, "steps", "n", 1, "ticks to simulate")
	runCmd.Flags().BoolVar(&pulse, "pulse", false, "pulse all triggers before stepping")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}
