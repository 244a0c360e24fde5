package steps

import "maps"

// Step is one item in a navigable sequence.
//
// A Step is either a bare name ([Name]) or a record ([Record]) that carries a
// name plus arbitrary caller-owned attributes. Both shapes share one identity,
// returned by [Step.Identity], and every [Controller] operation compares steps
// by that identity alone.
type Step struct {
	name   string
	attrs  map[string]any
	record bool
}

// Name returns a bare step identified by name.
func Name(name string) Step {
	return Step{name: name}
}

// Record returns a structured step identified by name.
//
// The attrs map is copied. A "name" key in attrs is ignored; the identity is
// always the name argument.
func Record(name string, attrs map[string]any) Step {
	s := Step{name: name, record: true, attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		if k == "name" {
			continue
		}
		s.attrs[k] = v
	}
	return s
}

// Names converts a list of bare names into steps.
func Names(names ...string) []Step {
	out := make([]Step, len(names))
	for i, n := range names {
		out[i] = Name(n)
	}
	return out
}

// Identity returns the name used to match and compare the step.
func (s Step) Identity() string {
	return s.name
}

// IsRecord reports whether the step was built with [Record].
func (s Step) IsRecord() bool {
	return s.record
}

// Attr returns a single attribute of a record step.
func (s Step) Attr(key string) (any, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attrs returns a copy of the record attributes, or nil for a bare step.
func (s Step) Attrs() map[string]any {
	if !s.record {
		return nil
	}
	return maps.Clone(s.attrs)
}

// String returns the step identity.
func (s Step) String() string {
	return s.name
}

// identityOf is the single accessor the controller uses to extract a step's identity.
func identityOf(s Step) string {
	return s.Identity()
}
