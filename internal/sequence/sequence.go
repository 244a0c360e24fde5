// Package sequence loads step sequence definitions for stepper.
//
// A sequence file lists the steps of a wizard, tab set or carousel in order,
// plus optional navigation settings. Two formats are supported, chosen by file
// extension:
//
// YAML (.yaml, .yml). Steps are either bare names or mappings with a name key;
// every other key of a mapping becomes a step attribute:
//
//	circular: false
//	initial: profile
//	steps:
//	  - account
//	  - name: profile
//	    title: Your profile
//	  - confirm
//
// A YAML file may also be a bare list of steps with no settings.
//
// CSV (.csv). The header row must contain a name column; every other column
// becomes a string attribute:
//
//	name,title
//	account,Create account
//	profile,Your profile
//
// Key types:
//   - [Definition] - Parsed steps and settings, convertible to a [steps.Controller]
//   - [Reader] - Reads a Definition from a resolved file path
package sequence

import (
	"errors"

	"stepper/internal/steps"
)

// Sentinel errors for sequence parsing.
var (
	// ErrMissingName indicates a step entry without a usable name.
	ErrMissingName = errors.New("step has no name")

	// ErrUnsupportedFormat indicates a sequence file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported sequence format")
)

// Definition is a parsed sequence file.
type Definition struct {
	// Steps are the steps in navigation order.
	Steps []steps.Step

	// Circular is the wrap-around setting from the file, or nil if the file
	// does not set it. CSV files never set it.
	Circular *bool

	// Initial is the identity of the step to start on. Empty means the first step.
	Initial string
}

// Names returns the identities of the definition's steps in order.
func (d *Definition) Names() []string {
	names := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		names[i] = s.Identity()
	}
	return names
}

// Controller builds a [steps.Controller] from the definition.
//
// The definition's own settings are applied first, so opts given here take
// precedence over what the file says.
func (d *Definition) Controller(opts ...steps.Option) (*steps.Controller, error) {
	var all []steps.Option
	if d.Circular != nil {
		all = append(all, steps.WithCircular(*d.Circular))
	}
	if d.Initial != "" {
		all = append(all, steps.WithInitialStep(d.Initial))
	}
	all = append(all, opts...)

	return steps.New(d.Steps, all...)
}
