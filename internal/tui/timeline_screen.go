package tui

import (
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TimelineModel is step 4: hiring timeline and important factors, plus the
// account fields when the user is anonymous
type TimelineModel struct {
	store     *draft.Store
	anonymous bool
	form      form

	firstName textinput.Model
	lastName  textinput.Model
	email     textinput.Model
	password  textinput.Model
	phone     textinput.Model
	zip       textinput.Model
}

// NewTimelineModel creates the step 4 screen
func NewTimelineModel(store *draft.Store, anonymous bool) tea.Model {
	m := &TimelineModel{
		store:     store,
		anonymous: anonymous,
		firstName: newInput("First name", 10, 24),
		lastName:  newInput("Last name", 20, 24),
		email:     newInput("you@company.com", 100, 40),
		password:  newInput("Choose a password", 50, 40),
		phone:     newInput("Digits only", 15, 24),
		zip:       newInput("ZIP / postal code", 12, 16),
	}
	m.password.EchoMode = textinput.EchoPassword

	id := store.Draft().Identity
	m.firstName.SetValue(id.FirstName)
	m.lastName.SetValue(id.LastName)
	m.email.SetValue(id.Email)
	m.password.SetValue(id.Password)
	m.phone.SetValue(id.PhoneNumber)
	m.zip.SetValue(id.ZipCode)
	return m
}

func (m *TimelineModel) IsCapturingInput() bool {
	return m.form.capturing(m.rows())
}

func (m *TimelineModel) Init() tea.Cmd {
	return m.form.syncFocus(m.rows())
}

func (m *TimelineModel) rows() []formRow {
	d := m.store.Draft()

	rows := []formRow{
		{
			kind:    rowChoice,
			label:   "When do you want to hire?",
			options: domain.HiringTimelines,
			current: func() int { return indexOf(domain.HiringTimelines, d.HiringTimeline) },
			choose:  func(i int) { m.store.SetHiringTimeline(domain.HiringTimelines[i]) },
		},
	}

	for i, factor := range domain.HiringFactors {
		factor := factor
		field := ""
		if i == len(domain.HiringFactors)-1 {
			field = draft.FieldFactors
		}
		rows = append(rows, formRow{
			kind:    rowCheck,
			label:   factor,
			field:   field,
			checked: func() bool { return hasFactor(d.HiringFactors, factor) },
			toggle:  func() { m.store.ToggleHiringFactor(factor) },
		})
	}

	if m.anonymous {
		rows = append(rows,
			formRow{kind: rowText, label: "First name", field: draft.FieldFirstName, input: &m.firstName, commit: m.store.SetFirstName},
			formRow{kind: rowText, label: "Last name", field: draft.FieldLastName, input: &m.lastName, commit: m.store.SetLastName},
			formRow{kind: rowText, label: "Email", field: draft.FieldEmail, input: &m.email, commit: m.store.SetEmail},
			formRow{kind: rowText, label: "Password", field: draft.FieldPassword, input: &m.password, commit: m.store.SetPassword},
			formRow{
				kind:    rowChoice,
				label:   "Country",
				options: countryOptions,
				current: func() int { return countryIndex(d.Identity.CountryCode) },
				choose:  func(i int) { m.store.SetCountryCode(countryOptions[i]) },
			},
			formRow{kind: rowText, label: "Phone", field: draft.FieldPhone, input: &m.phone, commit: m.store.SetPhoneNumber},
			formRow{kind: rowText, label: "ZIP code", field: draft.FieldZip, input: &m.zip, commit: m.store.SetIdentityZip},
		)
	}

	return rows
}

func hasFactor(factors []string, factor string) bool {
	for _, f := range factors {
		if f == factor {
			return true
		}
	}
	return false
}

func (m *TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.form.update(m.rows(), msg)
}

func (m *TimelineModel) View() string {
	title := "Timeline & what matters to you"
	if m.anonymous {
		title = "Timeline & your account"
	}
	s := titleStyle.Render(title) + "\n\n"
	s += subtitleStyle.Render("  Which factors matter most when hiring?") + "\n\n"
	s += m.form.view(m.rows(), m.store)
	s += "\n" + helpStyle.Render("  ←/→: choose  space: toggle factor  ↑/↓: move")
	return s
}
