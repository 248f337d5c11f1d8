package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/ui/markdown"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// helpText is the keybinding reference shown by the ? overlay, in markdown
// so the markdown renderer handles layout and emphasis.
const helpText = `# Keybindings

## Motion

| Key | Action |
| --- | ------ |
| h j k l | move left / down / up / right |
| w b e | word forward / backward / to word end |
| 0 ^ $ | line start / first non-blank / line end |
| gg G | first line / last line (count: go to line) |
| /query | search forward |
| n N | repeat search |

## Editing

| Key | Action |
| --- | ------ |
| i a A I | enter insert mode |
| o O | open line below / above |
| x | delete character |
| dd dw db de D | delete line / word / to line end |
| cc cw cb ce C | change (delete, then insert) |
| u ctrl+r | undo / redo |

## Visual and clipboard

| Key | Action |
| --- | ------ |
| v | start selection |
| y d c | yank / delete / change selection |
| yy | yank line |
| p P | paste after / before |

Press any key to close.`

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.OverlayBorderColor)

// helpModel renders the keybinding overlay. The markdown is re-rendered on
// resize, since the renderer does its own word wrapping, and cached between
// resizes.
type helpModel struct {
	width    int
	height   int
	rendered string
}

func newHelpModel() helpModel {
	return helpModel{}
}

func (h *helpModel) setSize(w, height int) {
	boxWidth := w - 4
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 20 {
		boxWidth = 20
	}
	if h.rendered == "" || h.width != w {
		h.rendered = renderHelp(boxWidth)
	}
	h.width = w
	h.height = height
}

func (h helpModel) view() string {
	content := h.rendered
	if content == "" {
		content = renderHelp(60)
	}
	box := helpBoxStyle.Render(content)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

func renderHelp(width int) string {
	r, err := markdown.New(width)
	if err != nil {
		log.ErrorErr(log.CatUI, "help renderer init failed", err)
		return helpText
	}
	out, err := r.Render(helpText)
	if err != nil {
		log.ErrorErr(log.CatUI, "help render failed", err)
		return helpText
	}
	return strings.TrimRight(out, "\n")
}
