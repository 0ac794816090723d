// Package wizard implements the step gate for the post-a-project flow: an
// ordered state machine whose forward transitions are guarded by the draft's
// validation state. Backward transitions are unconditional and never touch
// the draft.
package wizard

import (
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
	"github.com/andy/gigpost/internal/validate"
)

// Step identifies a wizard step, 1-based
type Step int

const (
	StepScope           Step = 1 // privacy, category, terms
	StepDetails         Step = 2 // type, activity, deliverable, title, description
	StepExpertiseBudget Step = 3 // tags, industry, fee type, budget
	StepTimeline        Step = 4 // hiring timeline (+ identity when anonymous)
	StepBilling         Step = 5 // billing address (anonymous branch only)
)

// String returns the display title for a step
func (s Step) String() string {
	switch s {
	case StepScope:
		return "Scope & Category"
	case StepDetails:
		return "Project Details"
	case StepExpertiseBudget:
		return "Expertise & Budget"
	case StepTimeline:
		return "Timeline"
	case StepBilling:
		return "Billing"
	default:
		return "Unknown"
	}
}

// Controller is the wizard state machine. The session decides the branch:
// authenticated users stop after the timeline step, anonymous users collect
// identity on step 4 and billing on step 5. The session is injected at
// construction and only ever read.
type Controller struct {
	store   *draft.Store
	session domain.Session
	step    Step
}

// New creates a controller at step 1 over the given store
func New(store *draft.Store, session domain.Session) *Controller {
	return &Controller{
		store:   store,
		session: session,
		step:    StepScope,
	}
}

// Resume creates a controller positioned at a previously saved step
func Resume(store *draft.Store, session domain.Session, at Step) *Controller {
	c := New(store, session)
	if at > StepScope && at <= c.lastStep() {
		c.step = at
	}
	return c
}

// Store returns the draft store the controller gates
func (c *Controller) Store() *draft.Store {
	return c.store
}

// Step returns the current step
func (c *Controller) Step() Step {
	return c.step
}

// Authenticated reports which branch the controller is on
func (c *Controller) Authenticated() bool {
	return c.session.IsAuthenticated()
}

// TotalSteps is 4 for the authenticated branch, 5 for anonymous
func (c *Controller) TotalSteps() int {
	return int(c.lastStep())
}

func (c *Controller) lastStep() Step {
	if c.Authenticated() {
		return StepTimeline
	}
	return StepBilling
}

// IsFinal reports whether Next would submit rather than advance
func (c *Controller) IsFinal() bool {
	return c.step == c.lastStep()
}

// CanAdvance evaluates the current step's guard against the draft. The
// verdict is derived from the draft values directly, so it holds whether or
// not the owning fields were ever touched.
func (c *Controller) CanAdvance() bool {
	d := c.store.Draft()
	switch c.step {
	case StepScope:
		return d.Privacy != "" && d.Category != "" && d.Terms

	case StepDetails:
		if d.Type == "" || d.Deliverable == "" {
			return false
		}
		// Selections carried over from a previous category don't count
		if len(c.store.StaleSelections()) > 0 {
			return false
		}
		if c.store.ActivityRequired() && d.Activity == "" {
			return false
		}
		if !validate.ProjectTitle(d.Title).Valid {
			return false
		}
		if !validate.ProjectDescription(d.Description).Valid {
			return false
		}
		if d.Category == domain.CategoryWriting {
			return validate.WritingLength(d.Length.Value, d.Length.Unit).Valid
		}
		return true

	case StepExpertiseBudget:
		if len(d.ExpertiseTags) == 0 {
			return false
		}
		if !validate.Industry(d.Industry).Valid {
			return false
		}
		return validate.BudgetRange(d.MinBudget, d.MaxBudget).Valid

	case StepTimeline:
		if d.HiringTimeline == "" {
			return false
		}
		if !validate.ImportantFactors(d.HiringFactors).Valid {
			return false
		}
		if c.Authenticated() {
			return true
		}
		return c.identityValid(d)

	case StepBilling:
		return c.billingValid(d)
	}
	return false
}

func (c *Controller) identityValid(d *domain.ProjectDraft) bool {
	id := d.Identity
	if !validate.FirstName(id.FirstName).Valid {
		return false
	}
	if !validate.LastName(id.LastName).Valid {
		return false
	}
	if !validate.Email(id.Email).Valid {
		return false
	}
	if !validate.Password(id.Password).Valid {
		return false
	}
	if !validate.Phone(id.PhoneNumber, id.CountryCode).Valid {
		return false
	}
	return validate.ZipCode(id.ZipCode, id.CountryCode).Valid
}

func (c *Controller) billingValid(d *domain.ProjectDraft) bool {
	b := d.Billing
	if !validate.AddressLine1(b.AddressLine1).Valid {
		return false
	}
	if !validate.City(b.City).Valid {
		return false
	}
	if !validate.ZipCode(b.ZipCode, b.Country).Valid {
		return false
	}
	if b.Type == domain.BillingTypeBusiness && !validate.CompanyName(b.CompanyName).Valid {
		return false
	}
	return validate.VATNumber(b.VATNumber, b.Country).Valid
}

// Next advances one step when the guard passes. A blocked transition is a
// no-op, reported by the return value; it is never an error. On the final
// step Next does not move - submission is the caller's job.
func (c *Controller) Next() bool {
	if !c.CanAdvance() {
		return false
	}
	if c.IsFinal() {
		return false
	}
	c.step++
	return true
}

// Back rewinds one step unconditionally. Draft data is never cleared by
// backward navigation.
func (c *Controller) Back() bool {
	if c.step == StepScope {
		return false
	}
	c.step--
	return true
}

// CanSubmit reports whether every step's guard holds, gating final submission
func (c *Controller) CanSubmit() bool {
	saved := c.step
	defer func() { c.step = saved }()
	for s := StepScope; s <= c.lastStep(); s++ {
		c.step = s
		if !c.CanAdvance() {
			return false
		}
	}
	return true
}
