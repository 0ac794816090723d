package tui

import (
	"strings"

	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var feeTypeOptions = []domain.FeeType{domain.FeeTypeFixed, domain.FeeTypeHourly}
var feeTypeLabels = []string{"Fixed price", "Hourly"}

// ExpertiseModel is step 3: expertise tags, industry, fee type, and budget
type ExpertiseModel struct {
	store *draft.Store
	form  form

	customTag textinput.Model
	industry  textinput.Model
	minBudget textinput.Model
	maxBudget textinput.Model
}

// NewExpertiseModel creates the step 3 screen
func NewExpertiseModel(store *draft.Store) tea.Model {
	m := &ExpertiseModel{
		store:     store,
		customTag: newInput("Add your own tag, enter to add", 30, 34),
		industry:  newInput("e.g. Healthcare", 60, 40),
		minBudget: newInput("500", 9, 12),
		maxBudget: newInput("5000", 9, 12),
	}

	d := store.Draft()
	m.industry.SetValue(d.Industry)
	m.minBudget.SetValue(d.MinBudget)
	m.maxBudget.SetValue(d.MaxBudget)
	return m
}

func (m *ExpertiseModel) IsCapturingInput() bool {
	return m.form.capturing(m.rows())
}

func (m *ExpertiseModel) Init() tea.Cmd {
	return m.form.syncFocus(m.rows())
}

func (m *ExpertiseModel) rows() []formRow {
	d := m.store.Draft()

	var rows []formRow
	for _, tag := range m.store.ExpertiseOptions() {
		tag := tag
		rows = append(rows, formRow{
			kind:    rowCheck,
			label:   tag,
			checked: func() bool { return d.HasTag(tag) },
			toggle: func() {
				if d.HasTag(tag) {
					m.store.RemoveTag(tag)
				} else {
					m.store.AddCatalogTag(tag)
				}
			},
		})
	}

	rows = append(rows,
		formRow{
			kind:  rowText,
			label: "Custom tag",
			field: draft.FieldTag,
			input: &m.customTag,
			onEnter: func(v string) bool {
				return m.store.AddCustomTag(v)
			},
		},
		formRow{
			kind:   rowText,
			label:  "Industry",
			field:  draft.FieldIndustry,
			input:  &m.industry,
			commit: m.store.SetIndustry,
		},
		formRow{
			kind:    rowChoice,
			label:   "Fee type",
			options: feeTypeLabels,
			current: func() int {
				for i, ft := range feeTypeOptions {
					if d.FeeType == ft {
						return i
					}
				}
				return -1
			},
			choose: func(i int) { m.store.SetFeeType(feeTypeOptions[i]) },
		},
		formRow{
			kind:   rowText,
			label:  "Minimum budget ($)",
			input:  &m.minBudget,
			commit: m.store.SetMinBudget,
		},
		formRow{
			kind:   rowText,
			label:  "Maximum budget ($)",
			field:  draft.FieldBudget,
			input:  &m.maxBudget,
			commit: m.store.SetMaxBudget,
		},
	)
	return rows
}

func (m *ExpertiseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.form.update(m.rows(), msg)
}

func (m *ExpertiseModel) View() string {
	d := m.store.Draft()

	s := titleStyle.Render("What expertise are you looking for?") + "\n\n"

	if len(d.ExpertiseTags) > 0 {
		s += subtitleStyle.Render("  Selected: ") + choiceStyle.Render(strings.Join(d.ExpertiseTags, ", ")) + "\n\n"
	} else {
		s += subtitleStyle.Render("  Pick at least one expertise tag") + "\n\n"
	}

	s += m.form.view(m.rows(), m.store)
	s += "\n" + helpStyle.Render("  space: toggle tag  enter: add custom tag  ↑/↓: move")
	return s
}
