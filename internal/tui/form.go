package tui

import (
	"fmt"
	"strings"

	"github.com/andy/gigpost/internal/draft"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// rowKind distinguishes the focusable row types of a step form
type rowKind int

const (
	rowText rowKind = iota
	rowChoice
	rowCheck
)

// formRow is one focusable row of a step screen. Screens rebuild their row
// slices on every update because the visible rows depend on the draft (e.g.
// activity only appears for types that collect one); the text inputs live on
// the screen structs so their state survives the rebuild.
type formRow struct {
	kind  rowKind
	label string
	field string // validation error key, empty when the row has none

	// rowText
	input   *textinput.Model
	commit  func(string)      // called after every keystroke
	onEnter func(string) bool // enter action instead of focus move; true clears the input

	// rowChoice
	options []string
	current func() int
	choose  func(int)

	// rowCheck
	checked func() bool
	toggle  func()
}

// form tracks focus over a screen's rows and routes keys to them
type form struct {
	focus int
}

func (f *form) clamp(rows []formRow) {
	if f.focus >= len(rows) {
		f.focus = len(rows) - 1
	}
	if f.focus < 0 {
		f.focus = 0
	}
}

// syncFocus focuses the text input under the cursor and blurs the rest
func (f *form) syncFocus(rows []formRow) tea.Cmd {
	f.clamp(rows)
	var cmd tea.Cmd
	for i := range rows {
		if rows[i].kind != rowText {
			continue
		}
		if i == f.focus {
			cmd = rows[i].input.Focus()
		} else {
			rows[i].input.Blur()
		}
	}
	return cmd
}

func (f *form) move(rows []formRow, delta int) tea.Cmd {
	f.focus = (f.focus + delta + len(rows)) % len(rows)
	return f.syncFocus(rows)
}

func (f *form) cycle(r *formRow, delta int) {
	if len(r.options) == 0 {
		return
	}
	cur := r.current()
	if cur < 0 {
		r.choose(0)
		return
	}
	r.choose((cur + delta + len(r.options)) % len(r.options))
}

// capturing reports whether the focused row is a text input
func (f *form) capturing(rows []formRow) bool {
	f.clamp(rows)
	if len(rows) == 0 {
		return false
	}
	return rows[f.focus].kind == rowText
}

func (f *form) update(rows []formRow, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(rows) == 0 {
		return nil
	}
	f.clamp(rows)
	r := &rows[f.focus]

	switch s := keyMsg.String(); {
	case s == "up" || s == "shift+tab":
		return f.move(rows, -1)

	case s == "down" || s == "tab":
		return f.move(rows, 1)

	case s == "enter":
		if r.kind == rowText && r.onEnter != nil {
			if r.onEnter(r.input.Value()) {
				r.input.SetValue("")
			}
			return nil
		}
		if r.kind == rowCheck {
			r.toggle()
			return nil
		}
		return f.move(rows, 1)

	case (s == "left" || s == "right") && r.kind == rowChoice:
		delta := 1
		if s == "left" {
			delta = -1
		}
		f.cycle(r, delta)
		return nil

	case s == " " && r.kind == rowCheck:
		r.toggle()
		return nil

	case s == " " && r.kind == rowChoice:
		f.cycle(r, 1)
		return nil
	}

	if r.kind == rowText {
		var cmd tea.Cmd
		*r.input, cmd = r.input.Update(msg)
		if r.commit != nil {
			r.commit(r.input.Value())
		}
		return cmd
	}
	return nil
}

func (f *form) view(rows []formRow, store *draft.Store) string {
	f.clamp(rows)
	var b strings.Builder
	for i := range rows {
		b.WriteString(f.viewRow(&rows[i], i == f.focus, store))
	}
	return b.String()
}

func (f *form) viewRow(r *formRow, focused bool, store *draft.Store) string {
	indicator := "  "
	labelStyle := subtitleStyle
	if focused {
		indicator = "> "
		labelStyle = focusedLabelStyle
	}

	var s string
	switch r.kind {
	case rowText:
		s = fmt.Sprintf("%s%s\n    %s\n", indicator, labelStyle.Render(r.label), r.input.View())

	case rowChoice:
		cur := r.current()
		parts := make([]string, len(r.options))
		for j, opt := range r.options {
			if j == cur {
				parts[j] = choiceStyle.Render("[" + opt + "]")
			} else {
				parts[j] = subtitleStyle.Render(" " + opt + " ")
			}
		}
		s = fmt.Sprintf("%s%s  %s\n", indicator, labelStyle.Render(r.label), strings.Join(parts, " "))

	case rowCheck:
		box := "[ ]"
		if r.checked() {
			box = "[x]"
		}
		s = fmt.Sprintf("%s%s %s\n", indicator, box, labelStyle.Render(r.label))
	}

	if r.field != "" {
		if errMsg := store.Error(r.field); errMsg != "" {
			s += errorTextStyle.Render("    "+errMsg) + "\n"
		}
	}
	return s
}
