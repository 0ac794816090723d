package tui

import (
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	tea "github.com/charmbracelet/bubbletea"
)

var privacyOptions = []domain.Privacy{
	domain.PrivacyAllExperts,
	domain.PrivacyInvitationOnly,
	domain.PrivacyInternalTeam,
}

var privacyLabels = []string{"All experts", "Invitation only", "Internal team"}

// ScopeModel is step 1: privacy, category, and the terms checkbox
type ScopeModel struct {
	store *draft.Store
	form  form
}

// NewScopeModel creates the step 1 screen
func NewScopeModel(store *draft.Store) tea.Model {
	return &ScopeModel{store: store}
}

// IsCapturingInput implements InputCapturer; step 1 has no text inputs
func (m *ScopeModel) IsCapturingInput() bool {
	return false
}

func (m *ScopeModel) Init() tea.Cmd {
	return nil
}

func (m *ScopeModel) rows() []formRow {
	d := m.store.Draft()
	categoryLabels := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		categoryLabels[i] = c.String()
	}

	return []formRow{
		{
			kind:    rowChoice,
			label:   "Who can see this project?",
			options: privacyLabels,
			current: func() int {
				for i, p := range privacyOptions {
					if d.Privacy == p {
						return i
					}
				}
				return -1
			},
			choose: func(i int) { m.store.SetPrivacy(privacyOptions[i]) },
		},
		{
			kind:    rowChoice,
			label:   "Category",
			options: categoryLabels,
			current: func() int {
				for i, c := range domain.Categories {
					if d.Category == c {
						return i
					}
				}
				return -1
			},
			choose: func(i int) { m.store.SetCategory(domain.Categories[i]) },
		},
		{
			kind:    rowCheck,
			label:   "I agree to the Terms of Service",
			checked: func() bool { return d.Terms },
			toggle:  func() { m.store.SetTerms(!d.Terms) },
		},
	}
}

func (m *ScopeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.form.update(m.rows(), msg)
}

func (m *ScopeModel) View() string {
	s := titleStyle.Render("What do you need done?") + "\n\n"
	s += m.form.view(m.rows(), m.store)
	s += "\n" + helpStyle.Render("  ←/→: choose  space/enter: toggle  ↑/↓: move")
	return s
}
