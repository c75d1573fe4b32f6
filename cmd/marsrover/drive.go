package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/tui"
)

func newDriveCmd() *cobra.Command {
	var (
		scenarioPath string
		tracePath    string
	)

	cmd := &cobra.Command{
		Use:   "drive",
		Short: "Drive the rover interactively",
		Long: `Drive opens a terminal session where each keystroke steers the rover:
m moves forward, l and r turn, uppercase works too. Unknown keys are
reported and ignored. q quits and prints the final report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}

			// Blocked moves show up in the session's event pane; a
			// stderr logger would tear the live screen.
			m, err := tui.Run(sc, zap.NewNop())
			if err != nil {
				return fmt.Errorf("drive session: %w", err)
			}

			fmt.Println(m.Report())

			if tracePath != "" {
				if err := m.Trace().WriteJSON(tracePath); err != nil {
					return fmt.Errorf("write trace: %w", err)
				}
				logger.Info("trace written",
					zap.String("path", tracePath),
					zap.String("run_id", m.Trace().RunID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario file (default: built-in reference grid)")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write the session trace as JSON")

	return cmd
}
