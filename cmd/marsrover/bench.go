package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
	"github.com/elektrokombinacija/mars-rover/internal/sim"
)

// benchReport aggregates the metrics of a benchmark batch.
type benchReport struct {
	Runs        int         `json:"runs"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Obstacles   int         `json:"obstacles"`
	StepsPerRun int         `json:"steps_per_run"`
	Totals      sim.Metrics `json:"totals"`
	ElapsedMS   int64       `json:"elapsed_ms"`
	StepsPerSec float64     `json:"steps_per_sec"`
}

func newBenchCmd() *cobra.Command {
	var (
		runs      int
		width     int
		height    int
		obstacles int
		steps     int
		seed      int64
		jsonPath  string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure mission throughput over random scenarios",
		Long: `Bench runs random command sequences against seeded random scenarios
and reports aggregate metrics. Each run i uses seed+i, so a batch is
reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			start := time.Now()

			var totals sim.Metrics
			for i := 0; i < runs; i++ {
				p := scenario.Params{
					Seed:      seed + int64(i),
					Width:     width,
					Height:    height,
					Obstacles: obstacles,
				}
				sc := scenario.Random(p)

				// Blocked moves are the point of the exercise here,
				// keep them out of the log.
				runner, err := sim.NewRunner(sc, zap.NewNop())
				if err != nil {
					return err
				}
				runner.Run(randomVerbs(rng, steps))

				m := runner.Trace().Metrics
				totals.Steps += m.Steps
				totals.Moves += m.Moves
				totals.Turns += m.Turns
				totals.Blocked += m.Blocked
			}
			elapsed := time.Since(start)

			attempts := totals.Moves + totals.Blocked
			blockedPct := 0.0
			if attempts > 0 {
				blockedPct = 100 * float64(totals.Blocked) / float64(attempts)
			}
			stepsPerSec := float64(totals.Steps) / elapsed.Seconds()

			fmt.Printf("runs       %d\n", runs)
			fmt.Printf("grid       %dx%d, %d obstacles\n", width, height, obstacles)
			fmt.Printf("steps      %d\n", totals.Steps)
			fmt.Printf("moves      %d\n", totals.Moves)
			fmt.Printf("turns      %d\n", totals.Turns)
			fmt.Printf("blocked    %d (%.1f%% of move attempts)\n", totals.Blocked, blockedPct)
			fmt.Printf("elapsed    %s\n", elapsed.Round(time.Millisecond))
			fmt.Printf("steps/sec  %.0f\n", stepsPerSec)

			if jsonPath != "" {
				report := benchReport{
					Runs:        runs,
					Width:       width,
					Height:      height,
					Obstacles:   obstacles,
					StepsPerRun: steps,
					Totals:      totals,
					ElapsedMS:   elapsed.Milliseconds(),
					StepsPerSec: stepsPerSec,
				}
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				if err := os.WriteFile(jsonPath, data, 0644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				logger.Info("benchmark report written", zap.String("path", jsonPath))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 20, "number of runs")
	cmd.Flags().IntVar(&width, "width", 25, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 25, "grid height in cells")
	cmd.Flags().IntVar(&obstacles, "obstacles", 80, "number of obstacles per scenario")
	cmd.Flags().IntVar(&steps, "steps", 200, "commands per run")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base random seed")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the aggregate report as JSON")

	return cmd
}

// randomVerbs produces a command sequence biased toward moving, so runs
// cover ground instead of spinning in place.
func randomVerbs(rng *rand.Rand, n int) []rover.Verb {
	verbs := make([]rover.Verb, n)
	for i := range verbs {
		switch k := rng.Intn(10); {
		case k < 6:
			verbs[i] = rover.VerbMove
		case k < 8:
			verbs[i] = rover.VerbTurnLeft
		default:
			verbs[i] = rover.VerbTurnRight
		}
	}
	return verbs
}
