package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorActive = lipgloss.AdaptiveColor{Light: "#0b7285", Dark: "#59c2ff"}
	colorDone   = lipgloss.AdaptiveColor{Light: "#2b8a3e", Dark: "#aad94c"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#e67700", Dark: "#ffb454"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#868e96", Dark: "#5c6773"}
)

// styles holds every style used by a [Renderer], bound to its lipgloss renderer.
type styles struct {
	active    lipgloss.Style
	inactive  lipgloss.Style
	separator lipgloss.Style
	status    lipgloss.Style
	muted     lipgloss.Style
	moved     lipgloss.Style
	blocked   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		active: r.NewStyle().
			Bold(true).
			Foreground(colorActive),
		inactive: r.NewStyle().
			Foreground(lipgloss.Color("15")),
		separator: r.NewStyle().
			Foreground(colorDim),
		status: r.NewStyle().
			Bold(true),
		muted: r.NewStyle().
			Foreground(colorDim),
		moved: r.NewStyle().
			Foreground(colorDone),
		blocked: r.NewStyle().
			Foreground(colorWarn),
	}
}
