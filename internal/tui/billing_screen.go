package tui

import (
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var billingTypeOptions = []domain.BillingType{domain.BillingTypeIndividual, domain.BillingTypeBusiness}
var billingTypeLabels = []string{"Individual", "Business"}

var invitePrefOptions = []domain.InvitePreference{domain.InviteTeam, domain.InviteSelf, domain.InviteInternal}
var invitePrefLabels = []string{"Marketplace team invites experts", "I invite experts myself", "Internal team only"}

// BillingModel is step 5 (anonymous branch only): billing address and
// invoicing details
type BillingModel struct {
	store *draft.Store
	form  form

	companyName  textinput.Model
	registration textinput.Model
	address1     textinput.Model
	address2     textinput.Model
	city         textinput.Model
	state        textinput.Model
	zip          textinput.Model
	vat          textinput.Model
}

// NewBillingModel creates the step 5 screen
func NewBillingModel(store *draft.Store) tea.Model {
	m := &BillingModel{
		store:        store,
		companyName:  newInput("Company name", 50, 40),
		registration: newInput("Registration number (optional)", 30, 40),
		address1:     newInput("Street address", 100, 50),
		address2:     newInput("Suite, floor (optional)", 100, 50),
		city:         newInput("City", 15, 24),
		state:        newInput("State / province (optional)", 30, 24),
		zip:          newInput("ZIP / postal code", 12, 16),
		vat:          newInput("VAT number (optional)", 20, 24),
	}

	b := store.Draft().Billing
	m.companyName.SetValue(b.CompanyName)
	m.registration.SetValue(b.CompanyRegistration)
	m.address1.SetValue(b.AddressLine1)
	m.address2.SetValue(b.AddressLine2)
	m.city.SetValue(b.City)
	m.state.SetValue(b.State)
	m.zip.SetValue(b.ZipCode)
	m.vat.SetValue(b.VATNumber)
	return m
}

func (m *BillingModel) IsCapturingInput() bool {
	return m.form.capturing(m.rows())
}

func (m *BillingModel) Init() tea.Cmd {
	return m.form.syncFocus(m.rows())
}

func (m *BillingModel) rows() []formRow {
	d := m.store.Draft()

	rows := []formRow{
		{
			kind:    rowChoice,
			label:   "Billing as",
			options: billingTypeLabels,
			current: func() int {
				for i, bt := range billingTypeOptions {
					if d.Billing.Type == bt {
						return i
					}
				}
				return -1
			},
			choose: func(i int) { m.store.SetBillingType(billingTypeOptions[i]) },
		},
	}

	if d.Billing.Type == domain.BillingTypeBusiness {
		rows = append(rows,
			formRow{kind: rowText, label: "Company name", field: draft.FieldCompanyName, input: &m.companyName, commit: m.store.SetCompanyName},
			formRow{kind: rowText, label: "Registration number", input: &m.registration, commit: m.store.SetCompanyRegistration},
		)
	}

	rows = append(rows,
		formRow{kind: rowText, label: "Address line 1", field: draft.FieldAddressLine1, input: &m.address1, commit: m.store.SetAddressLine1},
		formRow{kind: rowText, label: "Address line 2", input: &m.address2, commit: m.store.SetAddressLine2},
		formRow{kind: rowText, label: "City", field: draft.FieldBillingCity, input: &m.city, commit: m.store.SetBillingCity},
		formRow{kind: rowText, label: "State", input: &m.state, commit: m.store.SetBillingState},
		formRow{
			kind:    rowChoice,
			label:   "Country",
			options: countryOptions,
			current: func() int { return countryIndex(d.Billing.Country) },
			choose:  func(i int) { m.store.SetBillingCountry(countryOptions[i]) },
		},
		formRow{kind: rowText, label: "ZIP code", field: draft.FieldBillingZip, input: &m.zip, commit: m.store.SetBillingZip},
		formRow{kind: rowText, label: "VAT number", field: draft.FieldVAT, input: &m.vat, commit: m.store.SetVATNumber},
		formRow{
			kind:    rowChoice,
			label:   "Expert invitations",
			options: invitePrefLabels,
			current: func() int {
				for i, p := range invitePrefOptions {
					if d.InvitePreference == p {
						return i
					}
				}
				return -1
			},
			choose: func(i int) { m.store.SetInvitePreference(invitePrefOptions[i]) },
		},
	)

	return rows
}

func (m *BillingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.form.update(m.rows(), msg)
}

func (m *BillingModel) View() string {
	s := titleStyle.Render("Billing details") + "\n\n"
	s += m.form.view(m.rows(), m.store)
	s += "\n" + helpStyle.Render("  ←/→: choose  ↑/↓/tab: move  type to edit text fields")
	return s
}
