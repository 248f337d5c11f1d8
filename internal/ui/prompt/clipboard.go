package prompt

import (
	"github.com/atotto/clipboard"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/log"
)

// System clipboard bridge. The engine only knows its internal clipboard;
// mirroring to and from the OS clipboard happens here, after yanks and
// before pastes. Failures are logged and otherwise ignored so the prompt
// works the same on headless systems.

// pushSystemClipboard mirrors the engine clipboard to the OS clipboard.
func (m *Model) pushSystemClipboard() {
	if !m.config.SystemClipboard {
		return
	}
	text, ok := m.state.Clipboard()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.ErrorErr(log.CatClipboard, "write to system clipboard failed", err)
	}
}

// pullSystemClipboard loads the OS clipboard into the engine clipboard so
// the next paste sees external content.
func (m *Model) pullSystemClipboard() {
	if !m.config.SystemClipboard {
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "read from system clipboard failed", err)
		return
	}
	if text == "" {
		return
	}
	if current, ok := m.state.Clipboard(); ok && current == text {
		return
	}
	m.state = editor.Apply(m.state, editor.Yank{Text: text})
}
