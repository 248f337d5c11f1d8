// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/quill/internal/ui/styles"
)

// styleOverrides builds glamour style overrides from the quill palette:
// zero document margins so rendered output sits flush inside bordered
// boxes, headings in the overlay title color, and rules in the muted
// text color. The light/dark variant is picked up front because glamour
// styles carry flat color strings, not adaptive pairs.
func styleOverrides() []byte {
	title := styles.OverlayTitleColor.Light
	muted := styles.TextMutedColor.Light
	if lipgloss.HasDarkBackground() {
		title = styles.OverlayTitleColor.Dark
		muted = styles.TextMutedColor.Dark
	}
	return fmt.Appendf(nil, `{
		"document": {"margin": 0, "block_prefix": "", "block_suffix": ""},
		"heading": {"color": %q, "bold": true},
		"hr": {"color": %q}
	}`, title, muted)
}

// Renderer wraps glamour with quill's terminal configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given word wrap width.
func New(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes(styleOverrides()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
