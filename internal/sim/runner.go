package sim

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/scenario"
)

// Listener observes run progress one step at a time. Steps arrive
// synchronously in execution order.
type Listener interface {
	Step(TraceStep)
}

// Runner executes command sequences against a scenario-built rover,
// records the trace and fans each step out to its listeners. Execution is
// strictly sequential; commands never overlap or reorder.
type Runner struct {
	rover     *rover.Rover
	trace     *Trace
	listeners []Listener
}

// NewRunner builds the scenario's grid and rover and prepares an empty
// trace. A nil logger silences the blocked-move diagnostics.
func NewRunner(sc *scenario.Scenario, log *zap.Logger) (*Runner, error) {
	_, r, err := sc.Build(log)
	if err != nil {
		return nil, err
	}
	return &Runner{
		rover: r,
		trace: &Trace{
			RunID:    uuid.NewString(),
			Scenario: sc.Name,
			Started:  time.Now().UTC(),
			Final:    r.Report(),
		},
	}, nil
}

// AddListener registers a step observer.
func (rn *Runner) AddListener(l Listener) {
	rn.listeners = append(rn.listeners, l)
}

// Rover returns the rover under execution.
func (rn *Runner) Rover() *rover.Rover {
	return rn.rover
}

// Trace returns the run record accumulated so far.
func (rn *Runner) Trace() *Trace {
	return rn.trace
}

// Exec executes one verb through the command layer and records the
// resulting state. Commands report nothing, so a blocked move is detected
// by comparing the position before and after.
func (rn *Runner) Exec(v rover.Verb) TraceStep {
	px, py := rn.rover.Position()
	rover.CommandFor(v, rn.rover).Execute()

	x, y := rn.rover.Position()
	step := TraceStep{
		Index:   len(rn.trace.Steps),
		Verb:    v.String(),
		X:       x,
		Y:       y,
		Heading: rn.rover.Heading().String(),
	}

	rn.trace.Metrics.Steps++
	if v == rover.VerbMove {
		if x == px && y == py {
			step.Blocked = true
			rn.trace.Metrics.Blocked++
		} else {
			rn.trace.Metrics.Moves++
		}
	} else {
		rn.trace.Metrics.Turns++
	}

	rn.trace.Script += v.String()
	rn.trace.Steps = append(rn.trace.Steps, step)
	rn.trace.Final = rn.rover.Report()
	for _, l := range rn.listeners {
		l.Step(step)
	}
	return step
}

// Run executes the whole sequence in input order and returns the trace.
func (rn *Runner) Run(verbs []rover.Verb) *Trace {
	for _, v := range verbs {
		rn.Exec(v)
	}
	return rn.trace
}

// RecordSkipped counts input characters the driver rejected before
// execution.
func (rn *Runner) RecordSkipped(n int) {
	rn.trace.Metrics.Skipped += n
}
