package prompt

import (
	"strconv"
	"strings"

	"github.com/zjrosen/quill/internal/editor"
)

// action is the result of feeding one key to the keymap: zero or more engine
// commands to apply, plus host-level effects the model handles itself.
type action struct {
	cmds       []editor.Command
	setMode    Mode
	hasMode    bool
	submit     bool
	toggleHelp bool
	yanked     bool // a yank happened; mirror to the system clipboard
	pasting    bool // a paste is about to run; pull from the system clipboard first
}

func mode(m Mode) action {
	return action{setMode: m, hasMode: true}
}

func cmds(c ...editor.Command) action {
	return action{cmds: c}
}

// keymap accumulates count prefixes and pending operators and translates
// keys into engine commands. It is purely a translator: it never touches the
// buffer, so it can be tested without a Bubble Tea program.
type keymap struct {
	count     int  // accumulated count prefix, 0 = none
	pendingOp rune // 'd', 'c', 'g', or 'y'; 0 = none
}

// takeCount consumes the accumulated count, defaulting to 1.
func (k *keymap) takeCount() int {
	n := k.count
	k.count = 0
	if n < 1 {
		n = 1
	}
	return n
}

func (k *keymap) reset() {
	k.count = 0
	k.pendingOp = 0
}

// Pending reports whether a multi-key sequence is in progress, for display
// in the status bar.
func (k *keymap) Pending() string {
	var b strings.Builder
	if k.count > 0 {
		b.WriteString(strconv.Itoa(k.count))
	}
	if k.pendingOp != 0 {
		b.WriteRune(k.pendingOp)
	}
	return b.String()
}

// feed translates one key in Normal or Visual mode. The buffer state is
// consulted read-only, for composing line-wise yanks.
func (k *keymap) feed(m Mode, key string, s editor.State) action {
	if k.pendingOp != 0 {
		return k.feedPending(key, s)
	}

	// Count prefix accumulation. A bare 0 is the line-start motion.
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if key != "0" || k.count > 0 {
			k.count = k.count*10 + int(key[0]-'0')
			return action{}
		}
	}

	if m == ModeVisual {
		if a, handled := k.feedVisual(key); handled {
			return a
		}
	}

	switch key {
	case "h", "<left>":
		return cmds(editor.MoveLeft{Count: k.takeCount()})
	case "l", "<right>":
		return cmds(editor.MoveRight{Count: k.takeCount()})
	case "k", "<up>":
		return cmds(editor.MoveUp{Count: k.takeCount()})
	case "j", "<down>":
		return cmds(editor.MoveDown{Count: k.takeCount()})
	case "w":
		return cmds(editor.MoveWordForward{Count: k.takeCount()})
	case "b":
		return cmds(editor.MoveWordBackward{Count: k.takeCount()})
	case "e":
		return cmds(editor.MoveWordEnd{Count: k.takeCount()})
	case "0":
		return cmds(editor.MoveLineStart{})
	case "$":
		return cmds(editor.MoveLineEnd{})
	case "^":
		return cmds(editor.MoveFirstNonBlank{})
	case "G":
		if k.count > 0 {
			return cmds(editor.GotoLine{Line: k.takeCount()})
		}
		return cmds(editor.MoveLastLine{})
	case "d", "c", "g", "y":
		k.pendingOp = rune(key[0])
		return action{}
	case "x":
		return cmds(editor.DeleteChar{Count: k.takeCount()})
	case "D":
		return cmds(editor.DeleteToLineEnd{})
	case "C":
		a := cmds(editor.ChangeToLineEnd{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "i":
		a := cmds(editor.InsertAtCursor{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "a":
		a := cmds(editor.AppendAfterCursor{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "A":
		a := cmds(editor.AppendAtLineEnd{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "I":
		a := cmds(editor.InsertAtLineStart{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "o":
		a := cmds(editor.OpenLineBelow{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "O":
		a := cmds(editor.OpenLineAbove{})
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case "v":
		a := cmds(editor.SetAnchor{})
		a.setMode, a.hasMode = ModeVisual, true
		return a
	case "p":
		a := cmds(editor.PasteAfter{Count: k.takeCount()})
		a.pasting = true
		return a
	case "P":
		a := cmds(editor.PasteBefore{Count: k.takeCount()})
		a.pasting = true
		return a
	case "u":
		return cmds(editor.Undo{})
	case "<ctrl+r>":
		return cmds(editor.Redo{})
	case "n":
		return cmds(editor.SearchNext{Direction: editor.SearchForward})
	case "N":
		return cmds(editor.SearchNext{Direction: editor.SearchBackward})
	case "/":
		k.reset()
		return mode(ModeSearch)
	case ":":
		k.reset()
		return mode(ModeGoto)
	case "?":
		return action{toggleHelp: true}
	case "<enter>":
		return action{submit: true}
	case "<escape>":
		k.reset()
	}
	return action{}
}

// feedVisual handles the keys that behave differently with an active
// selection. Motions fall through to the shared table.
func (k *keymap) feedVisual(key string) (action, bool) {
	switch key {
	case "y":
		a := cmds(editor.YankSelection{})
		a.setMode, a.hasMode = ModeNormal, true
		a.yanked = true
		return a, true
	case "d", "x":
		a := cmds(editor.DeleteSelection{})
		a.setMode, a.hasMode = ModeNormal, true
		return a, true
	case "c":
		a := cmds(editor.DeleteSelection{})
		a.setMode, a.hasMode = ModeInsert, true
		return a, true
	case "v", "<escape>":
		k.reset()
		a := cmds(editor.ClearAnchor{})
		a.setMode, a.hasMode = ModeNormal, true
		return a, true
	}
	return action{}, false
}

// feedPending resolves the second key of an operator sequence.
func (k *keymap) feedPending(key string, s editor.State) action {
	op := k.pendingOp
	k.pendingOp = 0
	n := k.takeCount()

	switch op {
	case 'd':
		switch key {
		case "d":
			return cmds(editor.DeleteLine{Count: n})
		case "w":
			return cmds(editor.DeleteWordForward{Count: n})
		case "b":
			return cmds(editor.DeleteWordBackward{Count: n})
		case "e":
			return cmds(editor.DeleteWordEnd{Count: n})
		case "$":
			return cmds(editor.DeleteToLineEnd{})
		}
	case 'c':
		var a action
		switch key {
		case "c":
			a = cmds(editor.ChangeLine{Count: n})
		case "w":
			a = cmds(editor.ChangeWordForward{Count: n})
		case "b":
			a = cmds(editor.ChangeWordBackward{Count: n})
		case "e":
			a = cmds(editor.ChangeWordEnd{Count: n})
		case "$":
			a = cmds(editor.ChangeToLineEnd{})
		case "h":
			a = cmds(editor.ChangeMotion{Dir: editor.ChangeLeft, Count: n})
		case "l":
			a = cmds(editor.ChangeMotion{Dir: editor.ChangeRight, Count: n})
		case "j":
			a = cmds(editor.ChangeMotion{Dir: editor.ChangeDown, Count: n})
		case "k":
			a = cmds(editor.ChangeMotion{Dir: editor.ChangeUp, Count: n})
		default:
			return action{}
		}
		a.setMode, a.hasMode = ModeInsert, true
		return a
	case 'g':
		if key == "g" {
			if n > 1 {
				return cmds(editor.GotoLine{Line: n})
			}
			return cmds(editor.MoveFirstLine{})
		}
	case 'y':
		if key == "y" {
			a := cmds(editor.Yank{Text: linewiseYank(s, n)})
			a.yanked = true
			return a
		}
	}
	return action{}
}

// linewiseYank renders count lines starting at the cursor row as a line-wise
// clipboard payload (trailing line break marks it line-wise for paste).
func linewiseYank(s editor.State, count int) string {
	lines := s.Lines()
	row := s.Cursor().Row
	end := row + count
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[row:end], "\n") + "\n"
}
