package tui

import (
	"strings"

	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailsModel is step 2: type, activity, deliverable, title, description,
// length for writing projects, and the optional attachment
type DetailsModel struct {
	store *draft.Store
	form  form

	title       textinput.Model
	description textinput.Model
	lengthValue textinput.Model
	filePath    textinput.Model
}

// NewDetailsModel creates the step 2 screen
func NewDetailsModel(store *draft.Store) tea.Model {
	m := &DetailsModel{
		store:       store,
		title:       newInput("A short, descriptive project title", 100, 60),
		description: newInput("What needs to be done, for whom, and why", 1024, 70),
		lengthValue: newInput("1500", 10, 12),
		filePath:    newInput("path/to/brief.pdf (optional)", 200, 50),
	}

	d := store.Draft()
	m.title.SetValue(d.Title)
	m.description.SetValue(d.Description)
	m.lengthValue.SetValue(d.Length.Value)
	m.filePath.SetValue(d.FilePath)
	return m
}

func (m *DetailsModel) IsCapturingInput() bool {
	return m.form.capturing(m.rows())
}

func (m *DetailsModel) Init() tea.Cmd {
	return m.form.syncFocus(m.rows())
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}

func (m *DetailsModel) rows() []formRow {
	d := m.store.Draft()

	types := m.store.TypeOptions()
	rows := []formRow{
		{
			kind:    rowChoice,
			label:   "Type",
			options: types,
			current: func() int { return indexOf(types, d.Type) },
			choose:  func(i int) { m.store.SetType(types[i]) },
		},
	}

	if m.store.ActivityRequired() {
		activities := m.store.ActivityOptions()
		rows = append(rows, formRow{
			kind:    rowChoice,
			label:   "Activity",
			options: activities,
			current: func() int { return indexOf(activities, d.Activity) },
			choose:  func(i int) { m.store.SetActivity(activities[i]) },
		})
	}

	deliverables := m.store.DeliverableOptions()
	rows = append(rows, formRow{
		kind:    rowChoice,
		label:   "Deliverable",
		options: deliverables,
		current: func() int { return indexOf(deliverables, d.Deliverable) },
		choose:  func(i int) { m.store.SetDeliverable(deliverables[i]) },
	})

	rows = append(rows,
		formRow{
			kind:   rowText,
			label:  "Title",
			field:  draft.FieldTitle,
			input:  &m.title,
			commit: m.store.SetTitle,
		},
		formRow{
			kind:   rowText,
			label:  "Description",
			field:  draft.FieldDescription,
			input:  &m.description,
			commit: m.store.SetDescription,
		},
	)

	if d.Category == domain.CategoryWriting {
		units := []string{"words", "pages"}
		rows = append(rows,
			formRow{
				kind:   rowText,
				label:  "Length",
				field:  draft.FieldLength,
				input:  &m.lengthValue,
				commit: m.store.SetLengthValue,
			},
			formRow{
				kind:    rowChoice,
				label:   "Unit",
				options: units,
				current: func() int { return indexOf(units, string(d.Length.Unit)) },
				choose: func(i int) {
					m.store.SetLengthUnit(domain.LengthUnit(units[i]))
				},
			},
		)
	}

	rows = append(rows, formRow{
		kind:   rowText,
		label:  "Attachment (PDF)",
		field:  draft.FieldAttachment,
		input:  &m.filePath,
		commit: m.store.SetFilePath,
	})

	return rows
}

func (m *DetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.form.update(m.rows(), msg)
}

func (m *DetailsModel) View() string {
	s := titleStyle.Render("Tell us about the project") + "\n\n"

	// Selections left over from a previous category choice are kept, not
	// silently cleared; surface them so the user re-picks.
	if stale := m.store.StaleSelections(); len(stale) > 0 {
		s += warnTextStyle.Render("  Re-select after the category change: "+strings.Join(stale, ", ")) + "\n\n"
	}

	s += m.form.view(m.rows(), m.store)
	s += "\n" + helpStyle.Render("  ←/→: choose  ↑/↓/tab: move  type to edit text fields")
	return s
}
