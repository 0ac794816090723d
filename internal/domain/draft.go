package domain

import (
	"reflect"
	"strings"
	"time"
)

// WritingLength is the requested length of a writing deliverable
type WritingLength struct {
	Value string     `json:"value"` // raw input, validated before use
	Unit  LengthUnit `json:"unit"`
}

// Identity holds the account fields collected from anonymous users.
// Authenticated users never fill these in.
type Identity struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	CountryCode string `json:"country_code"` // ISO country, e.g. "us", "in"
	ZipCode     string `json:"zip_code"`
}

// Fullname joins first and last name for the wire format
func (i Identity) Fullname() string {
	return strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
}

// Billing holds invoicing details collected on the final anonymous step
type Billing struct {
	Type                BillingType `json:"type"`
	CompanyName         string      `json:"company_name"` // business only
	CompanyRegistration string      `json:"company_registration"`
	AddressLine1        string      `json:"address_line1"`
	AddressLine2        string      `json:"address_line2"`
	City                string      `json:"city"`
	State               string      `json:"state"`
	ZipCode             string      `json:"zip_code"`
	Country             string      `json:"country"`
	VATNumber           string      `json:"vat_number"`
}

// ProjectDraft is the single source of truth for the post-a-project wizard.
// All fields are zero until the owning step fills them in; raw text inputs
// stay raw (strings) so validation and re-editing see exactly what the user
// typed. The draft is consumed exactly once on successful submission.
type ProjectDraft struct {
	Privacy  Privacy  `json:"privacy"`
	Category Category `json:"category"`
	Terms    bool     `json:"terms"` // terms checkbox on step 1

	Type        string        `json:"type"`
	Activity    string        `json:"activity"`
	Deliverable string        `json:"deliverable"`
	Length      WritingLength `json:"length"` // writing only
	Title       string        `json:"title"`
	Description string        `json:"description"`
	FilePath    string        `json:"file_path"` // optional attached PDF

	ExpertiseTags []string `json:"expertise_tags"`
	Industry      string   `json:"industry"`
	FeeType       FeeType  `json:"fee_type"`
	MinBudget     string   `json:"min_budget"` // raw input
	MaxBudget     string   `json:"max_budget"` // raw input

	Identity Identity `json:"identity"`

	HiringTimeline string   `json:"hiring_timeline"`
	HiringFactors  []string `json:"hiring_factors"`

	Billing          Billing          `json:"billing"`
	InvitePreference InvitePreference `json:"invite_preference"`
}

// NewProjectDraft creates an empty draft with the defaults the wizard starts from
func NewProjectDraft() *ProjectDraft {
	return &ProjectDraft{
		Length:  WritingLength{Unit: LengthUnitWords},
		FeeType: FeeTypeFixed,
		Billing: Billing{Type: BillingTypeIndividual},
	}
}

// Clone returns a deep copy of the draft. Autosave hands the copy to a
// background writer while the wizard keeps mutating the original.
func (d *ProjectDraft) Clone() *ProjectDraft {
	c := *d
	c.ExpertiseTags = append([]string(nil), d.ExpertiseTags...)
	c.HiringFactors = append([]string(nil), d.HiringFactors...)
	return &c
}

// Untouched reports whether the draft still holds nothing but the wizard's
// starting defaults. An untouched draft is not worth persisting.
func (d *ProjectDraft) Untouched() bool {
	return reflect.DeepEqual(d, NewProjectDraft())
}

// HasTag reports whether the exact tag string is already selected
func (d *ProjectDraft) HasTag(tag string) bool {
	for _, t := range d.ExpertiseTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag inserts a tag, deduplicating case-sensitively
func (d *ProjectDraft) AddTag(tag string) {
	if d.HasTag(tag) {
		return
	}
	d.ExpertiseTags = append(d.ExpertiseTags, tag)
}

// RemoveTag removes a tag by exact string match
func (d *ProjectDraft) RemoveTag(tag string) {
	for i, t := range d.ExpertiseTags {
		if t == tag {
			d.ExpertiseTags = append(d.ExpertiseTags[:i], d.ExpertiseTags[i+1:]...)
			return
		}
	}
}

// SavedDraft is a persisted in-progress draft, listable without decoding
// the full payload
type SavedDraft struct {
	ID        int64
	Title     string
	Category  Category
	Step      int
	Draft     *ProjectDraft
	Submitted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSavedDraft wraps a wizard draft for persistence
func NewSavedDraft(draft *ProjectDraft, step int) *SavedDraft {
	now := time.Now()
	return &SavedDraft{
		Title:     draft.Title,
		Category:  draft.Category,
		Step:      step,
		Draft:     draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
