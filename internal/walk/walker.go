// Package walk drives a step controller through a scripted list of actions.
//
// The walker applies each [Action] in order to a [steps.Controller] and records
// whether it moved. It is the non-interactive counterpart of the TUI: the same
// transitions, fed from command-line arguments instead of key presses.
//
// Key concepts:
//   - Actions are parsed with [ParseAction] from strings like "next" or "goto:review"
//   - A move that does not happen is a normal result, unless strict mode is on
//   - Progress can be tracked via [ProgressCallback]
package walk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stepper/internal/steps"
)

// Sentinel errors for walking a sequence.
var (
	// ErrUnknownAction indicates an action string that cannot be parsed.
	ErrUnknownAction = errors.New("unknown action")

	// ErrBlocked indicates that, in strict mode, an action did not move the
	// controller (end of a non-circular sequence, unknown target, already there).
	ErrBlocked = errors.New("action did not move")
)

// ProgressCallback is invoked before each action is applied.
//
// It receives the action index (1-based), the total number of actions, and the
// action itself.
type ProgressCallback func(actionIndex, totalActions int, action Action)

// Result records the outcome of one applied action.
type Result struct {
	Action Action

	// Moved is the transition's return value: true only if the active step changed.
	Moved bool

	// Step is the active step identity after the action.
	Step string

	// Index is the one-based index of the active step after the action, 0 if none.
	Index int
}

// Walker applies actions to a single controller it exclusively owns.
type Walker struct {
	ctrl     *steps.Controller
	logger   *slog.Logger
	progress ProgressCallback
	strict   bool
}

// NewWalker creates a Walker over c. A nil logger discards log output.
func NewWalker(c *steps.Controller, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{ctrl: c, logger: logger}
}

// SetProgressCallback configures an optional callback run before each action.
func (w *Walker) SetProgressCallback(cb ProgressCallback) {
	w.progress = cb
}

// SetStrict makes [Walker.Run] stop with [ErrBlocked] on the first action that
// does not move the controller.
func (w *Walker) SetStrict(strict bool) {
	w.strict = strict
}

// Controller returns the controller being walked.
func (w *Walker) Controller() *steps.Controller {
	return w.ctrl
}

// Run applies actions in order and returns one [Result] per applied action.
//
// Run stops early when ctx is cancelled or, in strict mode, when an action does
// not move. The results gathered so far are returned alongside the error.
func (w *Walker) Run(ctx context.Context, actions []Action) ([]Result, error) {
	results := make([]Result, 0, len(actions))
	total := len(actions)

	for i, a := range actions {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if w.progress != nil {
			w.progress(i+1, total, a)
		}

		r := Result{
			Action: a,
			Moved:  w.apply(a),
			Step:   w.ctrl.CurrentStep(),
			Index:  w.ctrl.CurrentStepIndex(),
		}
		results = append(results, r)

		w.logger.Debug("applied action",
			"action", a.String(),
			"moved", r.Moved,
			"step", r.Step,
			"index", r.Index,
		)

		if !r.Moved && w.strict {
			return results, fmt.Errorf("%w: %s (at %q)", ErrBlocked, a, r.Step)
		}
	}

	return results, nil
}

// apply performs one action and reports whether the active step changed.
func (w *Walker) apply(a Action) bool {
	switch a.Kind {
	case ActionNext:
		return w.ctrl.TransitionToNext()
	case ActionPrevious:
		return w.ctrl.TransitionToPrevious()
	case ActionFirst:
		first, err := w.ctrl.FirstStepName()
		if err != nil {
			w.logger.Debug("no first step", "error", err)
			return false
		}
		return w.ctrl.TransitionTo(steps.Name(first))
	case ActionLast:
		last, err := w.ctrl.StepAt(w.ctrl.Length() - 1)
		if err != nil {
			w.logger.Debug("no last step", "error", err)
			return false
		}
		return w.ctrl.TransitionTo(last)
	case ActionGoto:
		return w.ctrl.TransitionTo(steps.Name(a.Target))
	case ActionActivate:
		before := w.ctrl.CurrentStep()
		return w.ctrl.Activate(steps.Name(a.Target)) && before != a.Target
	default:
		return false
	}
}
