// Package app wires the prompt component into a runnable Bubble Tea
// program: window sizing, quit handling, and delivery of the submitted text
// back to the command layer.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/ui/prompt"
)

// Model is the top-level program model.
type Model struct {
	prompt prompt.Model
	cfg    config.Config

	submitted string
	didSubmit bool
}

// New creates the program model from the loaded configuration.
func New(cfg config.Config) *Model {
	p := prompt.New(prompt.Config{
		Placeholder:     cfg.UI.Placeholder,
		StartInInsert:   cfg.UI.StartInInsert,
		SystemClipboard: cfg.Clipboard.System,
	})
	p.Focus()
	return &Model{prompt: p, cfg: cfg}
}

// SetInitialContent preloads the buffer, e.g. from --file.
func (m *Model) SetInitialContent(content string) {
	m.prompt.SetValue(content)
}

// Submitted returns the submitted text and whether a submit happened before
// the program exited.
func (m *Model) Submitted() (string, bool) {
	return m.submitted, m.didSubmit
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case prompt.SubmitMsg:
		m.submitted = msg.Content
		m.didSubmit = true
		log.Debug(log.CatUI, "prompt submitted", "bytes", len(msg.Content))
		return m, tea.Quit
	case prompt.ModeChangeMsg:
		log.Debug(log.CatUI, "mode change", "from", msg.Previous, "to", msg.Mode)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.prompt.View()
}
