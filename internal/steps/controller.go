// Package steps provides the step-navigation state machine behind stepwise UI
// components such as wizards, tabs and carousels.
//
// A [Controller] owns an ordered list of [Step] values and the identity of the
// active step. It answers position queries and performs forward, backward and
// jump transitions, optionally wrapping around the ends of the sequence.
//
// Key types:
//   - [Step] - A bare name or a named record with caller-owned attributes
//   - [Controller] - The sequence plus the active step identity
//
// Lookup misses are never errors. They are reported with sentinels:
// -1 from [Controller.CurrentIndex], 0 from the one-based queries, false from
// transitions and picks, and an explicit ok flag from [Controller.CurrentStepNode].
//
// A Controller is not safe for concurrent use. It is meant to be owned by a
// single UI component and mutated from that component's update cycle.
package steps

// Option configures a [Controller] at construction time.
type Option func(*Controller)

// WithCircular enables wrap-around navigation past either end of the sequence.
func WithCircular(circular bool) Option {
	return func(c *Controller) {
		c.circular = circular
	}
}

// WithInitialStep sets the identity of the step that starts out active.
// An empty name falls back to the first step.
func WithInitialStep(name string) Option {
	return func(c *Controller) {
		c.current = name
	}
}

// Controller tracks the current step among an ordered list of steps.
//
// Create with [New]. The step list and circular flag are fixed after
// construction; only the active step identity changes, through
// [Controller.Activate] and the TransitionTo methods.
type Controller struct {
	// steps is the ordered sequence; index order is significant.
	steps []Step

	// current is the identity of the active step.
	current string

	circular bool
}

// New creates a [Controller] over list.
//
// The active step is the one named by [WithInitialStep], or the first step
// when no initial step is given. New returns [ErrEmptyStepList] when list is
// empty and no initial step is given. An initial step that matches nothing in
// list is accepted and leaves the controller in the not-found state
// (CurrentIndex of -1).
func New(list []Step, opts ...Option) (*Controller, error) {
	c := &Controller{
		steps: append([]Step(nil), list...),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.current == "" {
		if len(c.steps) == 0 {
			return nil, ErrEmptyStepList
		}
		c.current = identityOf(c.steps[0])
	}

	return c, nil
}

// Length returns the number of steps.
func (c *Controller) Length() int {
	return len(c.steps)
}

// Circular reports whether navigation wraps around the ends of the sequence.
func (c *Controller) Circular() bool {
	return c.circular
}

// CurrentStep returns the identity of the active step.
func (c *Controller) CurrentStep() string {
	return c.current
}

// Steps returns a copy of the step sequence.
func (c *Controller) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// CurrentIndex returns the zero-based position of the active step, or -1 if
// no step matches the active identity.
func (c *Controller) CurrentIndex() int {
	return c.indexOf(c.current)
}

// CurrentStepIndex returns the one-based position of the active step.
// It returns 0 when no step is active.
func (c *Controller) CurrentStepIndex() int {
	return c.CurrentIndex() + 1
}

// StepAt returns the step at zero-based index i.
func (c *Controller) StepAt(i int) (Step, error) {
	if i < 0 || i >= len(c.steps) {
		return Step{}, &IndexError{Index: i, Length: len(c.steps)}
	}
	return c.steps[i], nil
}

// FirstStepName returns the identity of the first step.
// It returns an [IndexError] when the sequence is empty.
func (c *Controller) FirstStepName() (string, error) {
	first, err := c.StepAt(0)
	if err != nil {
		return "", err
	}
	return identityOf(first), nil
}

// CurrentStepNode returns the full active step, record attributes included.
// The second result is false when no step matches the active identity.
func (c *Controller) CurrentStepNode() (Step, bool) {
	i := c.CurrentIndex()
	if i < 0 {
		return Step{}, false
	}
	return c.steps[i], true
}

// IsActive reports whether name is exactly the active identity.
func (c *Controller) IsActive(name string) bool {
	return c.current == name
}

// GetIndex returns the one-based position of the first step named nameQuery,
// or 0 if there is none.
func (c *Controller) GetIndex(nameQuery string) int {
	return c.indexOf(nameQuery) + 1
}

// indexOf returns the zero-based position of the first step named name, or -1.
func (c *Controller) indexOf(name string) int {
	for i, s := range c.steps {
		if identityOf(s) == name {
			return i
		}
	}
	return -1
}

// Activate makes step the active step.
//
// Only identities present in the sequence are accepted: Activate returns false
// and leaves the controller unchanged when step's identity matches no step.
func (c *Controller) Activate(step Step) bool {
	name := identityOf(step)
	if c.GetIndex(name) <= 0 {
		return false
	}
	c.current = name
	return true
}

// TransitionTo moves to step.
//
// It returns false without mutating state when the target identity is empty or
// already active. Otherwise it returns the result of [Controller.Activate].
func (c *Controller) TransitionTo(step Step) bool {
	destination := identityOf(step)
	if destination == "" || destination == c.current {
		return false
	}
	return c.Activate(step)
}

// TransitionToNext moves one step forward. It returns false when there is no
// next step, which only happens at the end of a non-circular sequence.
func (c *Controller) TransitionToNext() bool {
	to, ok := c.PickNext()
	if !ok {
		return false
	}
	return c.TransitionTo(Name(to))
}

// TransitionToPrevious moves one step backward. It returns false when there is
// no previous step, which only happens at the start of a non-circular sequence.
func (c *Controller) TransitionToPrevious() bool {
	to, ok := c.PickPrevious()
	if !ok {
		return false
	}
	return c.TransitionTo(Name(to))
}

// PickNext returns the identity of the step after the active one without
// moving. The second result is false when no such step exists.
func (c *Controller) PickNext() (string, bool) {
	return c.pick(1)
}

// PickPrevious returns the identity of the step before the active one without
// moving. The second result is false when no such step exists.
func (c *Controller) PickPrevious() (string, bool) {
	return c.pick(-1)
}

func (c *Controller) pick(delta int) (string, bool) {
	if len(c.steps) == 0 {
		return "", false
	}
	i, err := c.IncrementIndex(delta)
	if err != nil {
		return "", false
	}
	node, err := c.StepAt(i)
	if err != nil {
		return "", false
	}
	return identityOf(node), true
}

// IncrementIndex returns CurrentIndex()+delta.
//
// In circular mode the result is wrapped into [0, Length()) with a floored
// modulo, so negative values wrap to the end. In non-circular mode the raw
// value is returned and may be out of range. IncrementIndex returns
// [ErrEmptyStepList] when the sequence is empty.
func (c *Controller) IncrementIndex(delta int) (int, error) {
	n := len(c.steps)
	if n == 0 {
		return 0, ErrEmptyStepList
	}

	i := c.CurrentIndex() + delta
	if c.circular {
		i = ((i % n) + n) % n
	}
	return i, nil
}
