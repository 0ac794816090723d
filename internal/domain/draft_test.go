package domain

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	d := NewProjectDraft()
	d.Category = CategoryWriting
	d.Title = "A Great Technical Manual"
	d.AddTag("SaaS")
	d.HiringFactors = []string{"Price"}

	c := d.Clone()

	d.Title = "Changed"
	d.AddTag("Fintech")
	d.HiringFactors[0] = "Expertise"
	d.Identity.Email = "alice@example.com"

	if c.Title != "A Great Technical Manual" {
		t.Fatalf("clone title followed the original: %q", c.Title)
	}
	if len(c.ExpertiseTags) != 1 || c.ExpertiseTags[0] != "SaaS" {
		t.Fatalf("clone tags followed the original: %v", c.ExpertiseTags)
	}
	if c.HiringFactors[0] != "Price" {
		t.Fatalf("clone factors followed the original: %v", c.HiringFactors)
	}
	if c.Identity.Email != "" {
		t.Fatalf("clone identity followed the original: %q", c.Identity.Email)
	}
}

func TestUntouched(t *testing.T) {
	d := NewProjectDraft()
	if !d.Untouched() {
		t.Fatal("fresh draft must report untouched")
	}

	d.Terms = true
	if d.Untouched() {
		t.Fatal("draft with terms agreed must not report untouched")
	}

	d = NewProjectDraft()
	d.AddTag("SaaS")
	if d.Untouched() {
		t.Fatal("draft with a tag must not report untouched")
	}
}
