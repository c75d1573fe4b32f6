// Marsrover drives a simulated rover across a bounded grid.
//
// The rover understands three commands: M moves one cell forward, L and
// R turn in place. Missions run against a YAML scenario that fixes the
// grid size, the obstacle field and the landing pose. Without a
// scenario the built-in reference grid is used.
//
// Usage:
//
//	# Run a command sequence against the reference grid
//	marsrover run MMRMLM
//
//	# Drive interactively
//	marsrover drive --scenario plains.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/config"
	"github.com/elektrokombinacija/mars-rover/internal/logging"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marsrover",
	Short: "Simulate a rover on a bounded grid with obstacles",
	Long: `marsrover executes command sequences against a rover on a rectangular
grid. Moves that would leave the grid or enter an obstacle are refused
and reported; the mission continues from the unchanged position.`,
	Version: version,
	// SilenceUsage keeps cobra from printing usage on errors we handle
	// ourselves (bad scenarios, unreadable scripts).
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads the configuration and builds the logger for all
// subcommands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}

// loadScenario reads a scenario file, falling back to the built-in
// reference grid when no path is given.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Reference(), nil
	}
	return scenario.Load(path)
}

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: environment only)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDriveCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newVersionCmd())
}
