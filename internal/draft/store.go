// Package draft holds the wizard's mutable state: the ProjectDraft being
// assembled plus the per-field validation error map. Every setter updates the
// value and its error verdict in the same call, so a stale error can never
// sit next to a fresh value.
package draft

import (
	"github.com/andy/gigpost/internal/catalog"
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/validate"
)

// Field names used as keys into the validation error map
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldLength       = "length"
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldPhone        = "phoneNumber"
	FieldZip          = "zipCode"
	FieldBudget       = "budget"
	FieldIndustry     = "industry"
	FieldTag          = "expertiseTag"
	FieldFactors      = "hiringFactors"
	FieldCompanyName  = "companyName"
	FieldBillingCity  = "billingCity"
	FieldBillingZip   = "billingZip"
	FieldAddressLine1 = "addressLine1"
	FieldVAT          = "vatNumber"
	FieldAttachment   = "attachment"
)

// Store wraps a ProjectDraft with atomic validate-and-set field mutation.
// Errors for one field are never touched when another field changes.
type Store struct {
	draft  *domain.ProjectDraft
	errors map[string]string
}

// NewStore creates a store around an empty draft
func NewStore() *Store {
	return &Store{
		draft:  domain.NewProjectDraft(),
		errors: make(map[string]string),
	}
}

// NewStoreFrom resumes a store around a previously saved draft
func NewStoreFrom(d *domain.ProjectDraft) *Store {
	if d == nil {
		return NewStore()
	}
	return &Store{
		draft:  d,
		errors: make(map[string]string),
	}
}

// Draft exposes the underlying draft for reading and submission assembly
func (s *Store) Draft() *domain.ProjectDraft {
	return s.draft
}

// Error returns the current error for a field, empty when the field is clean
func (s *Store) Error(field string) string {
	return s.errors[field]
}

// Errors returns a copy of the full error map
func (s *Store) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// setError records or clears a field error from a validator verdict
func (s *Store) setError(field string, res validate.Result) {
	if res.Valid {
		delete(s.errors, field)
		return
	}
	s.errors[field] = res.Error
}

// --- Step 1: privacy & category ---

func (s *Store) SetPrivacy(p domain.Privacy) {
	s.draft.Privacy = p
}

// SetCategory records the category. Downstream Type/Activity/Deliverable
// selections are deliberately left in place even when they no longer belong
// to the new category's catalogs; StaleSelections reports them.
func (s *Store) SetCategory(c domain.Category) {
	s.draft.Category = c
}

func (s *Store) SetTerms(agreed bool) {
	s.draft.Terms = agreed
}

// --- Step 2: project details ---

func (s *Store) SetType(t string) {
	s.draft.Type = t
}

func (s *Store) SetActivity(a string) {
	s.draft.Activity = a
}

func (s *Store) SetDeliverable(d string) {
	s.draft.Deliverable = d
}

func (s *Store) SetTitle(title string) {
	s.draft.Title = title
	s.setError(FieldTitle, validate.ProjectTitle(title))
}

func (s *Store) SetDescription(desc string) {
	s.draft.Description = desc
	s.setError(FieldDescription, validate.ProjectDescription(desc))
}

func (s *Store) SetLengthValue(v string) {
	s.draft.Length.Value = v
	s.setError(FieldLength, validate.WritingLength(v, s.draft.Length.Unit))
}

func (s *Store) SetLengthUnit(u domain.LengthUnit) {
	s.draft.Length.Unit = u
	if s.draft.Length.Value != "" {
		s.setError(FieldLength, validate.WritingLength(s.draft.Length.Value, u))
	}
}

func (s *Store) SetFilePath(path string) {
	s.draft.FilePath = path
	s.setError(FieldAttachment, validate.Attachment(path))
}

// --- Step 3: expertise & budget ---

// AddCatalogTag adds a tag drawn from the category's expertise catalog
func (s *Store) AddCatalogTag(tag string) {
	s.draft.AddTag(tag)
	delete(s.errors, FieldTag)
}

// AddCustomTag validates and adds a free-form tag. An invalid tag is
// rejected (not added) and its error recorded.
func (s *Store) AddCustomTag(tag string) bool {
	res := validate.CustomTag(tag)
	s.setError(FieldTag, res)
	if !res.Valid {
		return false
	}
	s.draft.AddTag(tag)
	return true
}

func (s *Store) RemoveTag(tag string) {
	s.draft.RemoveTag(tag)
}

func (s *Store) SetIndustry(industry string) {
	s.draft.Industry = industry
	s.setError(FieldIndustry, validate.Industry(industry))
}

func (s *Store) SetFeeType(ft domain.FeeType) {
	s.draft.FeeType = ft
}

func (s *Store) SetMinBudget(v string) {
	s.draft.MinBudget = v
	s.setError(FieldBudget, validate.BudgetRange(v, s.draft.MaxBudget))
}

func (s *Store) SetMaxBudget(v string) {
	s.draft.MaxBudget = v
	s.setError(FieldBudget, validate.BudgetRange(s.draft.MinBudget, v))
}

// --- Step 4: identity & timeline ---

func (s *Store) SetFirstName(v string) {
	s.draft.Identity.FirstName = v
	s.setError(FieldFirstName, validate.FirstName(v))
}

func (s *Store) SetLastName(v string) {
	s.draft.Identity.LastName = v
	s.setError(FieldLastName, validate.LastName(v))
}

func (s *Store) SetEmail(v string) {
	s.draft.Identity.Email = v
	s.setError(FieldEmail, validate.Email(v))
}

func (s *Store) SetPassword(v string) {
	s.draft.Identity.Password = v
	s.setError(FieldPassword, validate.Password(v))
}

// SetCountryCode re-validates phone and zip, both of which branch on country
func (s *Store) SetCountryCode(cc string) {
	s.draft.Identity.CountryCode = cc
	if s.draft.Identity.PhoneNumber != "" {
		s.setError(FieldPhone, validate.Phone(s.draft.Identity.PhoneNumber, cc))
	}
	if s.draft.Identity.ZipCode != "" {
		s.setError(FieldZip, validate.ZipCode(s.draft.Identity.ZipCode, cc))
	}
}

func (s *Store) SetPhoneNumber(v string) {
	s.draft.Identity.PhoneNumber = v
	s.setError(FieldPhone, validate.Phone(v, s.draft.Identity.CountryCode))
}

func (s *Store) SetIdentityZip(v string) {
	s.draft.Identity.ZipCode = v
	s.setError(FieldZip, validate.ZipCode(v, s.draft.Identity.CountryCode))
}

func (s *Store) SetHiringTimeline(v string) {
	s.draft.HiringTimeline = v
}

// ToggleHiringFactor adds or removes an important-factor selection and
// re-runs the exclusivity check on the resulting set
func (s *Store) ToggleHiringFactor(factor string) {
	found := false
	for i, f := range s.draft.HiringFactors {
		if f == factor {
			s.draft.HiringFactors = append(s.draft.HiringFactors[:i], s.draft.HiringFactors[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.draft.HiringFactors = append(s.draft.HiringFactors, factor)
	}
	s.setError(FieldFactors, validate.ImportantFactors(s.draft.HiringFactors))
}

// --- Step 5: billing ---

func (s *Store) SetBillingType(bt domain.BillingType) {
	s.draft.Billing.Type = bt
	if bt == domain.BillingTypeIndividual {
		delete(s.errors, FieldCompanyName)
	}
}

func (s *Store) SetCompanyName(v string) {
	s.draft.Billing.CompanyName = v
	s.setError(FieldCompanyName, validate.CompanyName(v))
}

func (s *Store) SetCompanyRegistration(v string) {
	s.draft.Billing.CompanyRegistration = v
}

func (s *Store) SetAddressLine1(v string) {
	s.draft.Billing.AddressLine1 = v
	s.setError(FieldAddressLine1, validate.AddressLine1(v))
}

func (s *Store) SetAddressLine2(v string) {
	s.draft.Billing.AddressLine2 = v
}

func (s *Store) SetBillingCity(v string) {
	s.draft.Billing.City = v
	s.setError(FieldBillingCity, validate.City(v))
}

func (s *Store) SetBillingState(v string) {
	s.draft.Billing.State = v
}

// SetBillingCountry re-validates the billing zip and VAT, which branch on country
func (s *Store) SetBillingCountry(v string) {
	s.draft.Billing.Country = v
	if s.draft.Billing.ZipCode != "" {
		s.setError(FieldBillingZip, validate.ZipCode(s.draft.Billing.ZipCode, v))
	}
	if s.draft.Billing.VATNumber != "" {
		s.setError(FieldVAT, validate.VATNumber(s.draft.Billing.VATNumber, v))
	}
}

func (s *Store) SetBillingZip(v string) {
	s.draft.Billing.ZipCode = v
	s.setError(FieldBillingZip, validate.ZipCode(v, s.draft.Billing.Country))
}

func (s *Store) SetVATNumber(v string) {
	s.draft.Billing.VATNumber = v
	s.setError(FieldVAT, validate.VATNumber(v, s.draft.Billing.Country))
}

func (s *Store) SetInvitePreference(p domain.InvitePreference) {
	s.draft.InvitePreference = p
}

// --- Derived catalogs ---

// TypeOptions returns the type catalog for the current category
func (s *Store) TypeOptions() []string {
	return catalog.Types(s.draft.Category)
}

// ActivityOptions returns the activity catalog for the current (category, type).
// Nil means the current selection collects no activity.
func (s *Store) ActivityOptions() []string {
	return catalog.Activities(s.draft.Category, s.draft.Type)
}

// ActivityRequired reports whether the current (category, type) collects an activity
func (s *Store) ActivityRequired() bool {
	return catalog.ActivityRequired(s.draft.Category, s.draft.Type)
}

// DeliverableOptions returns the deliverable catalog for the current selection
func (s *Store) DeliverableOptions() []string {
	return catalog.Deliverables(s.draft.Category, s.draft.Type)
}

// ExpertiseOptions returns the suggested expertise tags for the current category
func (s *Store) ExpertiseOptions() []string {
	return catalog.Expertise(s.draft.Category)
}

// StaleSelections reports downstream selections that no longer belong to the
// current category's catalogs. Selections are left in place on category
// change; callers decide what to surface.
func (s *Store) StaleSelections() []string {
	var stale []string
	d := s.draft
	if d.Type != "" && !catalog.ValidType(d.Category, d.Type) {
		stale = append(stale, "type")
	}
	if d.Activity != "" && !catalog.ValidActivity(d.Category, d.Type, d.Activity) {
		stale = append(stale, "activity")
	}
	if d.Deliverable != "" && !catalog.ValidDeliverable(d.Category, d.Type, d.Deliverable) {
		stale = append(stale, "deliverable")
	}
	return stale
}
