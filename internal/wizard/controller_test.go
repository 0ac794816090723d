package wizard

import (
	"testing"

	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
)

func anonSession() domain.Session {
	return domain.Session{}
}

func authSession() domain.Session {
	return domain.Session{
		Token: "tok",
		User:  &domain.User{ID: "u1", Email: "me@example.com"},
	}
}

// fillScope satisfies the step 1 guard
func fillScope(s *draft.Store) {
	s.SetPrivacy(domain.PrivacyAllExperts)
	s.SetCategory(domain.CategoryWriting)
	s.SetTerms(true)
}

// fillDetails satisfies the step 2 guard for a writing project
func fillDetails(s *draft.Store) {
	s.SetType("Technical Writing")
	s.SetActivity("New document")
	s.SetDeliverable("Draft")
	s.SetTitle("A Great Technical Manual")
	s.SetDescription("This project needs a full technical manual covering setup.")
	s.SetLengthValue("200")
}

// fillExpertise satisfies the step 3 guard
func fillExpertise(s *draft.Store) {
	s.AddCatalogTag("SaaS")
	s.SetIndustry("Software")
	s.SetMinBudget("1000")
	s.SetMaxBudget("5000")
}

func fillIdentity(s *draft.Store) {
	s.SetCountryCode("us")
	s.SetFirstName("Alice")
	s.SetLastName("Nguyen")
	s.SetEmail("alice@example.com")
	s.SetPassword("Str0ng!pw")
	s.SetPhoneNumber("2125551234")
	s.SetIdentityZip("94103")
}

func TestStepOneGuard(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())

	if c.CanAdvance() {
		t.Fatal("empty draft must not advance")
	}

	s.SetPrivacy(domain.PrivacyAllExperts)
	s.SetCategory(domain.CategoryWriting)
	if c.CanAdvance() {
		t.Fatal("unchecked terms must block step 1")
	}

	s.SetTerms(true)
	s.SetCategory("")
	if c.CanAdvance() {
		t.Fatal("missing category must block step 1 regardless of other fields")
	}

	s.SetCategory(domain.CategoryWriting)
	if !c.CanAdvance() {
		t.Fatal("privacy + category + terms must unblock step 1")
	}
	if !c.Next() {
		t.Fatal("Next should advance")
	}
	if c.Step() != StepDetails {
		t.Fatalf("expected step 2, got %d", c.Step())
	}
}

func TestStepTwoGuardWritingRequiresLength(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	fillScope(s)
	c.Next()

	s.SetType("Technical Writing")
	s.SetActivity("New document")
	s.SetDeliverable("Draft")
	s.SetTitle("A Great Technical Manual")
	s.SetDescription("This project needs a full technical manual covering setup.")
	if c.CanAdvance() {
		t.Fatal("writing project without length must not advance")
	}

	s.SetLengthValue("200")
	if !c.CanAdvance() {
		t.Fatal("complete writing details must advance")
	}
	c.Next()
	if c.Step() != StepExpertiseBudget {
		t.Fatalf("expected step 3, got %d", c.Step())
	}
}

func TestStepTwoGuardRejectsStaleSelections(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	fillScope(s)
	c.Next()
	fillDetails(s)
	if !c.CanAdvance() {
		t.Fatal("complete writing details must advance")
	}

	// Switching category keeps the selections in place, but they no longer
	// belong to the new category's catalogs
	s.SetCategory(domain.CategoryConsulting)
	if c.CanAdvance() {
		t.Fatal("selections from the previous category must block step 2")
	}

	s.SetType("Strategy Consulting")
	s.SetDeliverable("Workshop")
	if c.CanAdvance() {
		t.Fatal("the writing activity is stale for consulting")
	}
	s.SetActivity("")
	if !c.CanAdvance() {
		t.Fatal("reselecting from the new catalogs should unblock step 2")
	}
}

func TestStepTwoGuardNonWritingSkipsLength(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	s.SetPrivacy(domain.PrivacyAllExperts)
	s.SetCategory(domain.CategoryConsulting)
	s.SetTerms(true)
	c.Next()

	s.SetType("Strategy Consulting")
	s.SetDeliverable("Workshop")
	s.SetTitle("Pricing strategy for our SaaS")
	s.SetDescription("Help us rethink pricing tiers before the next launch.")
	if !c.CanAdvance() {
		t.Fatal("non-writing project must not require length")
	}
}

func TestStepThreeGuard(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	fillScope(s)
	c.Next()
	fillDetails(s)
	c.Next()

	s.SetIndustry("Software")
	s.SetMinBudget("1000")
	s.SetMaxBudget("5000")
	if c.CanAdvance() {
		t.Fatal("no expertise tag selected must block step 3")
	}

	s.AddCatalogTag("SaaS")
	if !c.CanAdvance() {
		t.Fatal("step 3 should pass with tag, industry and budget")
	}

	s.SetMinBudget("100")
	if c.CanAdvance() {
		t.Fatal("min budget below floor must block step 3")
	}
	if s.Error(draft.FieldBudget) != "Minimum budget must be at least $500" {
		t.Fatalf("unexpected budget error: %q", s.Error(draft.FieldBudget))
	}
}

func TestBackPreservesData(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	fillScope(s)
	c.Next()
	fillDetails(s)
	c.Next()

	if !c.Back() {
		t.Fatal("Back from step 3 should succeed")
	}
	if c.Step() != StepDetails {
		t.Fatalf("expected step 2, got %d", c.Step())
	}

	d := s.Draft()
	if d.Type != "Technical Writing" || d.Deliverable != "Draft" {
		t.Fatal("back navigation must not clear selections")
	}
	if d.Title != "A Great Technical Manual" {
		t.Fatal("back navigation must not clear the title")
	}
	if d.Description == "" {
		t.Fatal("back navigation must not clear the description")
	}

	// And forward again works with the same data
	if !c.Next() {
		t.Fatal("Next after Back must still pass with preserved data")
	}
	if c.Step() != StepExpertiseBudget {
		t.Fatalf("expected step 3, got %d", c.Step())
	}
}

func TestBackIsUnconditional(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())
	fillScope(s)
	c.Next()

	// Wreck the step 2 guard, Back must still work
	s.SetTitle("x")
	if c.CanAdvance() {
		t.Fatal("guard should be failing")
	}
	if !c.Back() {
		t.Fatal("Back must succeed regardless of validity")
	}
	if c.Back() {
		t.Fatal("Back from step 1 has nowhere to go")
	}
}

func TestAuthenticatedBranchStopsAtTimeline(t *testing.T) {
	s := draft.NewStore()
	c := New(s, authSession())

	if c.TotalSteps() != 4 {
		t.Fatalf("authenticated branch has 4 steps, got %d", c.TotalSteps())
	}

	fillScope(s)
	c.Next()
	fillDetails(s)
	c.Next()
	fillExpertise(s)
	c.Next()

	if c.Step() != StepTimeline {
		t.Fatalf("expected timeline step, got %d", c.Step())
	}
	if !c.IsFinal() {
		t.Fatal("timeline is the final authenticated step")
	}

	s.SetHiringTimeline("Within 1 week")
	if !c.CanAdvance() {
		t.Fatal("timeline chosen should satisfy the authenticated final guard")
	}
	if c.Next() {
		t.Fatal("Next on the final step must not advance")
	}
	if !c.CanSubmit() {
		t.Fatal("fully valid authenticated draft must be submittable")
	}
}

func TestAnonymousBranchCollectsIdentityAndBilling(t *testing.T) {
	s := draft.NewStore()
	c := New(s, anonSession())

	if c.TotalSteps() != 5 {
		t.Fatalf("anonymous branch has 5 steps, got %d", c.TotalSteps())
	}

	fillScope(s)
	c.Next()
	fillDetails(s)
	c.Next()
	fillExpertise(s)
	c.Next()

	s.SetHiringTimeline("Within 1 week")
	if c.CanAdvance() {
		t.Fatal("anonymous timeline step also requires identity fields")
	}

	fillIdentity(s)
	if !c.CanAdvance() {
		t.Fatal("identity + timeline should unblock step 4")
	}
	c.Next()
	if c.Step() != StepBilling {
		t.Fatalf("expected billing step, got %d", c.Step())
	}

	s.SetBillingCountry("us")
	s.SetAddressLine1("1 Main St")
	s.SetBillingCity("Oakland")
	s.SetBillingZip("94601")
	if !c.CanAdvance() {
		t.Fatal("individual billing with address, city, zip should pass")
	}

	// Business billing additionally requires a company name
	s.SetBillingType(domain.BillingTypeBusiness)
	if c.CanAdvance() {
		t.Fatal("business billing without company name must block")
	}
	s.SetCompanyName("Acme Corp")
	if !c.CanAdvance() {
		t.Fatal("company name should unblock business billing")
	}
	if !c.CanSubmit() {
		t.Fatal("fully valid anonymous draft must be submittable")
	}
}

func TestNoneFactorBlocksTimelineStep(t *testing.T) {
	s := draft.NewStore()
	c := New(s, authSession())
	fillScope(s)
	c.Next()
	fillDetails(s)
	c.Next()
	fillExpertise(s)
	c.Next()

	s.SetHiringTimeline("Immediately")
	s.ToggleHiringFactor("Budget fit")
	s.ToggleHiringFactor(domain.HiringFactorNone)
	if c.CanAdvance() {
		t.Fatal("none-of-these combined with another factor must block")
	}
	s.ToggleHiringFactor(domain.HiringFactorNone)
	if !c.CanAdvance() {
		t.Fatal("removing the none option should unblock")
	}
}

func TestResume(t *testing.T) {
	s := draft.NewStore()
	fillScope(s)
	c := Resume(s, anonSession(), StepExpertiseBudget)
	if c.Step() != StepExpertiseBudget {
		t.Fatalf("expected resume at step 3, got %d", c.Step())
	}

	// Out-of-range resume clamps to step 1
	c = Resume(s, authSession(), StepBilling)
	if c.Step() != StepScope {
		t.Fatalf("billing is unreachable when authenticated, got %d", c.Step())
	}
}
