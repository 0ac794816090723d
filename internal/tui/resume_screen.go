package tui

import (
	"context"
	"fmt"

	"github.com/andy/gigpost/internal/app"
	"github.com/andy/gigpost/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResumeModel offers the choice between resuming a saved draft and starting
// a fresh wizard
type ResumeModel struct {
	app    *app.App
	drafts []*domain.SavedDraft
	cursor int
	err    error
}

// NewResumeModel creates the resume picker over the given drafts
func NewResumeModel(a *app.App, drafts []*domain.SavedDraft) *ResumeModel {
	return &ResumeModel{app: a, drafts: drafts}
}

func (m *ResumeModel) Init() tea.Cmd {
	return nil
}

func (m *ResumeModel) reload() tea.Cmd {
	return func() tea.Msg {
		drafts, err := m.app.DraftService.ListUnsubmitted(context.Background())
		return draftsLoadedMsg{drafts: drafts, err: err}
	}
}

func (m *ResumeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.drafts = msg.drafts
			if m.cursor >= len(m.drafts) {
				m.cursor = max(0, len(m.drafts)-1)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.drafts)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.drafts) > 0 {
				saved := m.drafts[m.cursor]
				return m, func() tea.Msg { return startWizardMsg{saved: saved} }
			}
		case key.Matches(msg, DefaultKeyMap.New):
			return m, func() tea.Msg { return startWizardMsg{} }
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.drafts) > 0 {
				id := m.drafts[m.cursor].ID
				return m, func() tea.Msg {
					if err := m.app.DraftService.Delete(context.Background(), id); err != nil {
						return ErrorMsg{Err: err}
					}
					return m.reload()()
				}
			}
		}
	}
	return m, nil
}

func (m *ResumeModel) View() string {
	s := titleStyle.Render("Saved drafts") + "\n\n"

	if m.err != nil {
		s += errorTextStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	if len(m.drafts) == 0 {
		s += subtitleStyle.Render("  No saved drafts. Press 'n' to start a new project.") + "\n"
		return s
	}

	for i, d := range m.drafts {
		indicator := "  "
		style := subtitleStyle
		if i == m.cursor {
			indicator = "> "
			style = focusedLabelStyle
		}
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%s%s", indicator, truncateStr(title, 40))
		detail := fmt.Sprintf("    %s, step %d, updated %s",
			d.Category, d.Step, d.UpdatedAt.Format("Jan 2 15:04"))
		s += style.Render(line) + "\n" + subtitleStyle.Render(detail) + "\n"
	}

	s += "\n" + helpStyle.Render("  enter: resume  n: new project  d: delete  q: quit")
	return s
}
