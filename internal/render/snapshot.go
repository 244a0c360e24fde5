package render

import (
	"encoding/json"
	"fmt"
	"io"

	"stepper/internal/steps"
	"stepper/internal/walk"
)

// Snapshot is a serializable view of a controller at one moment.
type Snapshot struct {
	Current  string     `json:"current"`
	Index    int        `json:"index"` // one-based, 0 when no step is active
	Length   int        `json:"length"`
	Circular bool       `json:"circular"`
	Steps    []StepView `json:"steps"`
}

// StepView is one step inside a [Snapshot].
type StepView struct {
	Name   string         `json:"name"`
	Active bool           `json:"active"`
	Attrs  map[string]any `json:"attrs,omitempty"`
}

// ResultView is one walk result inside a [WalkReport].
type ResultView struct {
	Action string `json:"action"`
	Moved  bool   `json:"moved"`
	Step   string `json:"step"`
	Index  int    `json:"index"`
}

// WalkReport is the serializable outcome of a walk.
type WalkReport struct {
	Results []ResultView `json:"results"`
	Final   Snapshot     `json:"final"`
}

// TakeSnapshot captures the controller's current state.
func TakeSnapshot(c *steps.Controller) Snapshot {
	active := c.CurrentIndex()
	list := c.Steps()

	views := make([]StepView, len(list))
	for i, s := range list {
		views[i] = StepView{
			Name:   s.Identity(),
			Active: i == active,
			Attrs:  s.Attrs(),
		}
	}

	return Snapshot{
		Current:  c.CurrentStep(),
		Index:    c.CurrentStepIndex(),
		Length:   c.Length(),
		Circular: c.Circular(),
		Steps:    views,
	}
}

// NewWalkReport pairs walk results with the controller's final state.
func NewWalkReport(results []walk.Result, c *steps.Controller) WalkReport {
	views := make([]ResultView, len(results))
	for i, r := range results {
		views[i] = ResultView{
			Action: r.Action.String(),
			Moved:  r.Moved,
			Step:   r.Step,
			Index:  r.Index,
		}
	}
	return WalkReport{Results: views, Final: TakeSnapshot(c)}
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
