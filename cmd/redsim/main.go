// Command redsim loads a decoded schematic record file, simulates it, and
// reports probe observations.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev" // Set by build flags.
)

var rootCmd = &cobra.Command{
	Use:   "redsim",
	Short: "Deterministic redstone circuit simulator",
	Long: `Redsim compiles a voxel record file into a pruned signal graph and
advances it tick by tick. Records are the YAML form of the decoded
schematic stream: one entry per occupied voxel with its block ID,
blockstate metadata, tile-entity properties, and probe/trigger names.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
