// Package sim executes rover command sequences and records run traces.
package sim

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// TraceStep records the rover state after one executed command.
type TraceStep struct {
	Index   int    `json:"index"`
	Verb    string `json:"verb"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
	Blocked bool   `json:"blocked,omitempty"`
}

// Metrics aggregates counters over one run.
type Metrics struct {
	Steps   int `json:"steps"`
	Moves   int `json:"moves"`
	Turns   int `json:"turns"`
	Blocked int `json:"blocked"`
	Skipped int `json:"skipped"`
}

// Trace is the complete record of one run: identity, the executed steps
// and the final report.
type Trace struct {
	RunID    string      `json:"run_id"`
	Scenario string      `json:"scenario"`
	Script   string      `json:"script"`
	Started  time.Time   `json:"started"`
	Steps    []TraceStep `json:"steps"`
	Final    string      `json:"final"`
	Metrics  Metrics     `json:"metrics"`
}

// WriteJSON writes the trace as indented JSON.
func (t *Trace) WriteJSON(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EncodeJSON writes the trace as indented JSON to w.
func (t *Trace) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// ReadTrace loads a trace exported by WriteJSON.
func ReadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
