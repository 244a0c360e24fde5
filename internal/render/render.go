// Package render turns a step controller's state into terminal output.
//
// [Renderer] draws the sequence as a single bar or a vertical list with the
// active step highlighted, plus status and walk result lines. Styling uses
// lipgloss; with color disabled every style degrades to plain text.
// [TakeSnapshot] and [JSON] provide a machine-readable view of the same state.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"stepper/internal/steps"
	"stepper/internal/walk"
)

// Layout selects how [Renderer.Sequence] arranges the steps.
type Layout string

// Supported layouts.
const (
	LayoutBar  Layout = "bar"
	LayoutList Layout = "list"
)

// ParseLayout validates a layout name. Empty means [LayoutBar].
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutBar:
		return LayoutBar, nil
	case LayoutList:
		return LayoutList, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %q or %q)", s, LayoutBar, LayoutList)
	}
}

// Options configures a [Renderer].
type Options struct {
	// Color enables ANSI styling when the writer supports it.
	Color bool

	// Layout is the sequence layout. Empty means [LayoutBar].
	Layout Layout

	// ActiveMarker prefixes the active step in the list layout. Empty means ">".
	ActiveMarker string
}

// Renderer formats controller state for one output writer.
type Renderer struct {
	opts   Options
	styles styles
}

// New creates a Renderer whose color profile is detected from w.
// Setting opts.Color to false forces plain output.
func New(w io.Writer, opts Options) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !opts.Color {
		lr.SetColorProfile(termenv.Ascii)
	}
	if opts.Layout == "" {
		opts.Layout = LayoutBar
	}
	if opts.ActiveMarker == "" {
		opts.ActiveMarker = ">"
	}
	return &Renderer{opts: opts, styles: newStyles(lr)}
}

// Label returns the display text of a step: its "title" attribute when that is
// a non-empty string, otherwise its identity.
func Label(s steps.Step) string {
	if title, ok := s.Attr("title"); ok {
		if str, ok := title.(string); ok && str != "" {
			return str
		}
	}
	return s.Identity()
}

// Sequence renders every step with the active one highlighted.
//
// Only the first step matching the active identity is highlighted, matching
// the controller's first-match lookup.
func (r *Renderer) Sequence(c *steps.Controller) string {
	active := c.CurrentIndex()
	list := c.Steps()

	if r.opts.Layout == LayoutList {
		lines := make([]string, len(list))
		pad := strings.Repeat(" ", lipgloss.Width(r.opts.ActiveMarker))
		for i, s := range list {
			text := fmt.Sprintf("%d. %s", i+1, Label(s))
			if i == active {
				lines[i] = r.styles.active.Render(r.opts.ActiveMarker + " " + text)
			} else {
				lines[i] = r.styles.inactive.Render(pad + " " + text)
			}
		}
		return strings.Join(lines, "\n")
	}

	parts := make([]string, len(list))
	for i, s := range list {
		text := fmt.Sprintf("%d %s", i+1, Label(s))
		if i == active {
			parts[i] = r.styles.active.Render("[" + text + "]")
		} else {
			parts[i] = r.styles.inactive.Render(text)
		}
	}
	return strings.Join(parts, r.styles.separator.Render(" › "))
}

// Status renders a one-line summary of the active position.
func (r *Renderer) Status(c *steps.Controller) string {
	node, ok := c.CurrentStepNode()
	if !ok {
		return r.styles.blocked.Render(fmt.Sprintf("No active step (current %q)", c.CurrentStep()))
	}

	line := fmt.Sprintf("Step %d of %d: %s", c.CurrentStepIndex(), c.Length(), Label(node))
	if c.Circular() {
		line += r.styles.muted.Render(" (circular)")
	}
	return r.styles.status.Render(line)
}

// Result renders one walk result against a sequence of the given length.
func (r *Renderer) Result(res walk.Result, length int) string {
	action := fmt.Sprintf("%-12s", res.Action.String())
	position := r.styles.muted.Render(fmt.Sprintf("(%d/%d)", res.Index, length))

	if res.Moved {
		return fmt.Sprintf("%s %s %s", action, r.styles.moved.Render("→ "+res.Step), position)
	}
	return fmt.Sprintf("%s %s %s", action, r.styles.blocked.Render("✗ stays at "+res.Step), position)
}
