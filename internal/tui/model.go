package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/gigpost/internal/api"
	"github.com/andy/gigpost/internal/app"
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/andy/gigpost/internal/service"
	"github.com/andy/gigpost/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// phase is the top-level TUI state
type phase int

const (
	phaseLoading phase = iota
	phaseResume
	phaseWizard
	phaseSubmitting
	phaseSuccess
	phaseFailure
)

// Model is the root Bubble Tea model. It owns the wizard controller and
// routes input to the screen for the current step.
type Model struct {
	app     *app.App
	ctrl    *wizard.Controller
	savedID int64
	phase   phase
	width   int
	height  int

	resume *ResumeModel

	// Step screens (lazy initialized)
	scope     tea.Model
	details   tea.Model
	expertise tea.Model
	timeline  tea.Model
	billing   tea.Model

	outcome   *service.Outcome
	submitErr error
	statusMsg string
	err       error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{app: a, phase: phaseLoading}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadDrafts()
}

func (m *Model) loadDrafts() tea.Cmd {
	return func() tea.Msg {
		drafts, err := m.app.DraftService.ListUnsubmitted(context.Background())
		return draftsLoadedMsg{drafts: drafts, err: err}
	}
}

// startWizard builds the controller, resuming the saved draft when given
func (m *Model) startWizard(saved *domain.SavedDraft) tea.Cmd {
	if saved != nil {
		store := draft.NewStoreFrom(saved.Draft)
		m.ctrl = wizard.Resume(store, m.app.Session, wizard.Step(saved.Step))
		m.savedID = saved.ID
	} else {
		store := draft.NewStore()
		m.seedDefaults(store)
		m.ctrl = wizard.New(store, m.app.Session)
		m.savedID = 0
	}

	// Drop screens built for a previous controller
	m.scope, m.details, m.expertise, m.timeline, m.billing = nil, nil, nil, nil, nil

	m.phase = phaseWizard
	return m.initStep(m.ctrl.Step())
}

// seedDefaults pre-fills identity fields from config for anonymous users
func (m *Model) seedDefaults(store *draft.Store) {
	if m.app.Session.IsAuthenticated() {
		return
	}
	u := m.app.Config.User
	if u.Country != "" {
		store.SetCountryCode(u.Country)
	}
	if u.FirstName != "" {
		store.SetFirstName(u.FirstName)
	}
	if u.LastName != "" {
		store.SetLastName(u.LastName)
	}
	if u.Email != "" {
		store.SetEmail(u.Email)
	}
	if u.Phone != "" {
		store.SetPhoneNumber(u.Phone)
	}
}

// initStep lazy-initializes the screen for a step on first visit
func (m *Model) initStep(step wizard.Step) tea.Cmd {
	store := m.ctrl.Store()
	switch step {
	case wizard.StepScope:
		if m.scope == nil {
			m.scope = NewScopeModel(store)
			return m.scope.Init()
		}
	case wizard.StepDetails:
		if m.details == nil {
			m.details = NewDetailsModel(store)
			return m.details.Init()
		}
	case wizard.StepExpertiseBudget:
		if m.expertise == nil {
			m.expertise = NewExpertiseModel(store)
			return m.expertise.Init()
		}
	case wizard.StepTimeline:
		if m.timeline == nil {
			m.timeline = NewTimelineModel(store, !m.ctrl.Authenticated())
			return m.timeline.Init()
		}
	case wizard.StepBilling:
		if m.billing == nil {
			m.billing = NewBillingModel(store)
			return m.billing.Init()
		}
	}
	return nil
}

func (m *Model) activeScreen() tea.Model {
	switch m.ctrl.Step() {
	case wizard.StepScope:
		return m.scope
	case wizard.StepDetails:
		return m.details
	case wizard.StepExpertiseBudget:
		return m.expertise
	case wizard.StepTimeline:
		return m.timeline
	case wizard.StepBilling:
		return m.billing
	}
	return nil
}

func (m *Model) setActiveScreen(s tea.Model) {
	switch m.ctrl.Step() {
	case wizard.StepScope:
		m.scope = s
	case wizard.StepDetails:
		m.details = s
	case wizard.StepExpertiseBudget:
		m.expertise = s
	case wizard.StepTimeline:
		m.timeline = s
	case wizard.StepBilling:
		m.billing = s
	}
}

// capturingInput reports whether the current step screen is in a text field
func (m *Model) capturingInput() bool {
	if m.phase != phaseWizard {
		return false
	}
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// InputCapturer is implemented by screens that capture keyboard input.
// When active, the single-letter global keys (q, n, b, s) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// saveDraft persists the wizard state, creating or updating the saved row.
// The draft is cloned here, on the update goroutine, so the background write
// never races with keystrokes mutating the live draft. Drafts the user never
// touched are not persisted at all.
func (m *Model) saveDraft() tea.Cmd {
	snap := m.ctrl.Store().Draft().Clone()
	if m.savedID == 0 && snap.Untouched() {
		return nil
	}
	step, savedID := int(m.ctrl.Step()), m.savedID
	return func() tea.Msg {
		id, err := m.app.DraftService.SaveProgress(context.Background(), snap, step, savedID)
		return draftSavedMsg{id: id, err: err}
	}
}

func (m *Model) submit() tea.Cmd {
	ctrl, savedID := m.ctrl, m.savedID
	return func() tea.Msg {
		outcome, err := m.app.SubmitService.Submit(context.Background(), ctrl, savedID)
		return submitResultMsg{outcome: outcome, err: err}
	}
}

// next advances a step, or submits from the final step
func (m *Model) next() (Model, tea.Cmd) {
	if m.ctrl.IsFinal() {
		if !m.ctrl.CanSubmit() {
			m.statusMsg = "Fix the highlighted fields before submitting"
			return *m, nil
		}
		m.phase = phaseSubmitting
		return *m, m.submit()
	}
	if !m.ctrl.Next() {
		m.statusMsg = "Complete this step before continuing"
		return *m, nil
	}
	return *m, tea.Batch(m.initStep(m.ctrl.Step()), m.saveDraft())
}

// back retreats a step; from step 1 it saves and exits
func (m *Model) back() (Model, tea.Cmd) {
	if !m.ctrl.Back() {
		return m.saveAndQuit()
	}
	return *m, tea.Batch(m.initStep(m.ctrl.Step()), m.saveDraft())
}

func (m *Model) saveAndQuit() (Model, tea.Cmd) {
	if m.ctrl == nil {
		return *m, tea.Quit
	}
	return *m, tea.Sequence(m.saveDraft(), tea.Quit)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case draftsLoadedMsg:
		if m.phase == phaseLoading {
			if msg.err != nil || len(msg.drafts) == 0 {
				return m, m.startWizard(nil)
			}
			m.phase = phaseResume
			m.resume = NewResumeModel(m.app, msg.drafts)
			return m, nil
		}
		// Resume screen refreshes after deletes
		if m.phase == phaseResume {
			if len(msg.drafts) == 0 && msg.err == nil {
				return m, m.startWizard(nil)
			}
			var cmd tea.Cmd
			var res tea.Model
			res, cmd = m.resume.Update(msg)
			m.resume = res.(*ResumeModel)
			return m, cmd
		}
		return m, nil

	case startWizardMsg:
		return m, m.startWizard(msg.saved)

	case draftSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.savedID = msg.id
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			m.phase = phaseFailure
			m.submitErr = msg.err
			return m, nil
		}
		m.phase = phaseSuccess
		m.outcome = msg.outcome
		if msg.outcome.Session != nil {
			if err := m.app.SetSession(*msg.outcome.Session); err != nil {
				m.statusMsg = "Posted, but the session could not be saved"
			}
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.err = nil
		return m.handleKey(msg)
	}

	return m.route(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	// Keys that work regardless of input capture
	switch m.phase {
	case phaseWizard:
		switch s {
		case "ctrl+c", "ctrl+s":
			return m.saveAndQuit()
		case "ctrl+n":
			return m.next()
		case "esc":
			return m.back()
		}
		if !m.capturingInput() {
			switch s {
			case "q":
				return m.saveAndQuit()
			case "n":
				return m.next()
			case "b":
				return m.back()
			}
		}

	case phaseSubmitting:
		// Quit is blocked while the submission is in flight
		if s == "ctrl+c" || s == "q" {
			m.statusMsg = "Submitting, hold on..."
			return m, nil
		}
		return m, nil

	case phaseSuccess:
		if s == "q" || s == "ctrl+c" || s == "enter" || s == "esc" {
			return m, tea.Quit
		}
		return m, nil

	case phaseFailure:
		switch s {
		case "r":
			m.phase = phaseSubmitting
			return m, m.submit()
		case "b", "esc":
			// Back to the wizard with the draft intact
			m.phase = phaseWizard
			return m, nil
		case "q", "ctrl+c":
			return m.saveAndQuit()
		}
		return m, nil

	case phaseResume, phaseLoading:
		if s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.route(msg)
}

// route passes a message to the active screen
func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phaseResume:
		if m.resume != nil {
			var res tea.Model
			res, cmd = m.resume.Update(msg)
			m.resume = res.(*ResumeModel)
		}
	case phaseWizard:
		if screen := m.activeScreen(); screen != nil {
			var updated tea.Model
			updated, cmd = screen.Update(msg)
			m.setActiveScreen(updated)
		}
	}
	return m, cmd
}

// View implements tea.Model - renders header + current phase + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var header, content, footer string
	switch m.phase {
	case phaseLoading:
		header = headerStyle.Render("gigpost")
		content = "Loading..."

	case phaseResume:
		header = headerStyle.Render("gigpost - Resume a draft")
		content = m.resume.View()
		footer = footerStyle.Render("[Enter] Resume  [N]ew  [D]elete  [Q]uit")

	case phaseWizard:
		step := m.ctrl.Step()
		header = headerStyle.Render(fmt.Sprintf("gigpost - Step %d of %d: %s",
			int(step), m.ctrl.TotalSteps(), step))
		if screen := m.activeScreen(); screen != nil {
			content = screen.View()
		}
		nextLabel := "[^N] Next"
		if m.ctrl.IsFinal() {
			nextLabel = "[^N] Submit"
		}
		footer = footerStyle.Render(nextLabel + "  [Esc] Back  [^S] Save & quit")

	case phaseSubmitting:
		header = headerStyle.Render("gigpost - Submitting")
		content = "Submitting your project..."

	case phaseSuccess:
		header = headerStyle.Render("gigpost - Posted")
		content = m.viewSuccess()
		footer = footerStyle.Render("[Q]uit")

	case phaseFailure:
		header = headerStyle.Render("gigpost - Submission failed")
		content = m.viewFailure()
		footer = footerStyle.Render("[R]etry  [B]ack to wizard  [Q]uit")
	}

	// Error/status display
	statusDisplay := ""
	if m.statusMsg != "" {
		statusDisplay = warnTextStyle.Render(fmt.Sprintf("\n%s", m.statusMsg))
	} else if m.err != nil {
		statusDisplay = errorTextStyle.Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, statusDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

func (m Model) viewSuccess() string {
	s := successTextStyle.Render("Your project has been posted.") + "\n\n"
	if m.outcome != nil {
		if m.outcome.Message != "" {
			s += "  " + m.outcome.Message + "\n"
		}
		if m.outcome.ProjectID != "" {
			s += subtitleStyle.Render(fmt.Sprintf("  Project ID: %s", m.outcome.ProjectID)) + "\n"
		}
		if m.outcome.AutoLoginFailed {
			s += warnTextStyle.Render("  Your account was created, but automatic login failed. Run 'gigpost login'.") + "\n"
		} else if m.outcome.Session != nil {
			s += subtitleStyle.Render("  You are now logged in.") + "\n"
		}
	}
	s += "\n" + subtitleStyle.Render("  Experts will start sending proposals shortly.")
	return s
}

func (m Model) viewFailure() string {
	s := errorTextStyle.Render(api.UserMessage(m.submitErr)) + "\n\n"
	s += subtitleStyle.Render("  Your draft is unchanged. Fix the problem and retry.")
	return s
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
