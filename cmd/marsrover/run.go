package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/script"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
)

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		scriptPath   string
		tracePath    string
		showSteps    bool
	)

	cmd := &cobra.Command{
		Use:   "run [commands]",
		Short: "Run a command sequence and print the final report",
		Long: `Run executes a sequence of rover commands and prints the final
report. The sequence comes from the positional argument, from a mission
script via --script, or from the scenario file itself. Unknown letters
in a positional sequence are reported and skipped.

Examples:

  # Reference grid, inline commands
  marsrover run MMRMLM

  # Scenario with its own command sequence
  marsrover run --scenario plains.yaml

  # Mission script with comments and repeat counts
  marsrover run --script survey.mission --trace out.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}

			var (
				verbs   []rover.Verb
				skipped []rune
			)
			switch {
			case scriptPath != "":
				verbs, err = script.LoadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("load script: %w", err)
				}
			case len(args) == 1:
				verbs, skipped = script.ParseLetters(args[0])
			default:
				verbs, skipped = script.ParseLetters(sc.Script)
			}

			runner, err := sim.NewRunner(sc, logger)
			if err != nil {
				return err
			}
			for _, r := range skipped {
				logger.Warn("ignoring unknown command", zap.String("input", string(r)))
			}
			runner.RecordSkipped(len(skipped))

			if showSteps {
				runner.AddListener(stepPrinter{})
			}
			runner.Run(verbs)

			fmt.Println(runner.Rover().Report())

			switch {
			case tracePath == "-":
				return runner.Trace().EncodeJSON(os.Stdout)
			case tracePath != "":
				if err := runner.Trace().WriteJSON(tracePath); err != nil {
					return fmt.Errorf("write trace: %w", err)
				}
				logger.Info("trace written",
					zap.String("path", tracePath),
					zap.String("run_id", runner.Trace().RunID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario file (default: built-in reference grid)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "mission script file")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write the run trace as JSON (\"-\" for stdout)")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print every executed step")

	return cmd
}

// stepPrinter echoes each executed step to stdout.
type stepPrinter struct{}

func (stepPrinter) Step(s sim.TraceStep) {
	suffix := ""
	if s.Blocked {
		suffix = "  blocked"
	}
	fmt.Printf("%3d  %s  (%d, %d) %s%s\n", s.Index, s.Verb, s.X, s.Y, s.Heading, suffix)
}
