package walk

import (
	"fmt"
	"strings"
)

// ActionKind names a navigation action.
type ActionKind string

// Supported action kinds.
const (
	ActionNext     ActionKind = "next"
	ActionPrevious ActionKind = "prev"
	ActionFirst    ActionKind = "first"
	ActionLast     ActionKind = "last"
	ActionGoto     ActionKind = "goto"
	ActionActivate ActionKind = "activate"
)

// aliases maps accepted spellings to their canonical kind.
var aliases = map[string]ActionKind{
	"next":     ActionNext,
	"forward":  ActionNext,
	"prev":     ActionPrevious,
	"previous": ActionPrevious,
	"back":     ActionPrevious,
	"first":    ActionFirst,
	"last":     ActionLast,
	"goto":     ActionGoto,
	"activate": ActionActivate,
}

// Action is a single scripted navigation step.
type Action struct {
	Kind ActionKind

	// Target is the step identity for goto and activate. Empty otherwise.
	Target string
}

// String returns the action in the form accepted by [ParseAction].
func (a Action) String() string {
	if a.Target != "" {
		return string(a.Kind) + ":" + a.Target
	}
	return string(a.Kind)
}

func (a Action) needsTarget() bool {
	return a.Kind == ActionGoto || a.Kind == ActionActivate
}

// ParseAction parses "next", "prev", "first", "last", "goto:<name>" or
// "activate:<name>". Kinds are case-insensitive; targets are taken verbatim.
func ParseAction(s string) (Action, error) {
	raw, target, hasTarget := strings.Cut(strings.TrimSpace(s), ":")

	kind, ok := aliases[strings.ToLower(raw)]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}

	a := Action{Kind: kind, Target: target}
	switch {
	case a.needsTarget() && target == "":
		return Action{}, fmt.Errorf("%w: %q needs a step name (%s:<name>)", ErrUnknownAction, s, kind)
	case !a.needsTarget() && hasTarget:
		return Action{}, fmt.Errorf("%w: %q takes no step name", ErrUnknownAction, s)
	}
	return a, nil
}

// ParseActions parses every element of args, stopping at the first error.
func ParseActions(args []string) ([]Action, error) {
	actions := make([]Action, 0, len(args))
	for _, arg := range args {
		a, err := ParseAction(arg)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
