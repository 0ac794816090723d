package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andy/gigpost/internal/domain"
)

// completedDraft builds a fully filled anonymous draft
func completedDraft() *domain.ProjectDraft {
	d := domain.NewProjectDraft()
	d.Privacy = domain.PrivacyAllExperts
	d.Category = domain.CategoryWriting
	d.Terms = true
	d.Type = "Technical Writing"
	d.Activity = "New document"
	d.Deliverable = "Draft"
	d.Length = domain.WritingLength{Value: "200", Unit: domain.LengthUnitWords}
	d.Title = "A Great Technical Manual"
	d.Description = "This project needs a full technical manual covering setup."
	d.ExpertiseTags = []string{"SaaS", "Developer tools"}
	d.Industry = "Software"
	d.FeeType = domain.FeeTypeFixed
	d.MinBudget = "1000"
	d.MaxBudget = "5000"
	d.Identity = domain.Identity{
		FirstName:   "Alice",
		LastName:    "Nguyen",
		Email:       "alice@example.com",
		Password:    "Str0ng!pw",
		PhoneNumber: "2125551234",
		CountryCode: "us",
		ZipCode:     "94103",
	}
	d.HiringTimeline = "Within 1 week"
	d.HiringFactors = []string{"Budget fit"}
	d.Billing = domain.Billing{
		Type:         domain.BillingTypeIndividual,
		AddressLine1: "1 Main St",
		City:         "Oakland",
		State:        "CA",
		ZipCode:      "94601",
		Country:      "us",
	}
	d.InvitePreference = domain.InviteSelf
	return d
}

func TestSubmitLandingWireFormat(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/project/post-from-landing" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart, got %s", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		form = make(map[string]string)
		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}
		json.NewEncoder(w).Encode(SubmitResponse{
			Success: true,
			User:    &domain.User{ID: "u1", Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	resp, err := c.SubmitLanding(context.Background(), completedDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.User == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	want := map[string]string{
		"privacy":             "all_experts",
		"category":            "writing",
		"selectedType":        "Technical Writing",
		"selectedActivity":    "New document",
		"selectedDeliverable": "Draft",
		"writingLength":       "200",
		"writingLengthUnit":   "words",
		"title":               "A Great Technical Manual",
		"fullname":            "Alice Nguyen",
		"email":               "alice@example.com",
		"phoneNumber":         "2125551234",
		"countryCode":         "us",
		"feeType":             "fixed",
		"budget":              "5000", // the max of the range
		"hiringTimeline":      "Within 1 week",
		"billingType":         "individual",
		"addressLine1":        "1 Main St",
		"city":                "Oakland",
		"zipCode":             "94601",
		"expertInvitation":    "self_invite",
	}
	for k, v := range want {
		if form[k] != v {
			t.Errorf("field %s = %q, want %q", k, form[k], v)
		}
	}

	// Array fields travel as JSON-encoded strings
	var tags []string
	if err := json.Unmarshal([]byte(form["expertiseTags"]), &tags); err != nil {
		t.Fatalf("expertiseTags is not a JSON array: %q", form["expertiseTags"])
	}
	if len(tags) != 2 || tags[0] != "SaaS" {
		t.Fatalf("unexpected tags: %v", tags)
	}
	var industries []string
	if err := json.Unmarshal([]byte(form["industries"]), &industries); err != nil {
		t.Fatalf("industries is not a JSON array: %q", form["industries"])
	}
	if len(industries) != 1 || industries[0] != "Software" {
		t.Fatalf("unexpected industries: %v", industries)
	}
}

func TestSubmitLandingServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.SubmitLanding(context.Background(), completedDraft())
	if err == nil {
		t.Fatal("expected rejection error")
	}
	if UserMessage(err) != "email already registered" {
		t.Fatalf("server message must pass through verbatim, got %q", UserMessage(err))
	}
}

func TestSubmitLandingErrorKeyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid category"})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.SubmitLanding(context.Background(), completedDraft())
	if UserMessage(err) != "invalid category" {
		t.Fatalf("expected error key fallback, got %q", UserMessage(err))
	}
}

func TestSubmitLandingGenericServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.SubmitLanding(context.Background(), completedDraft())
	if UserMessage(err) != "Server error: 500" {
		t.Fatalf("expected generic status message, got %q", UserMessage(err))
	}
}

func TestSubmitLandingBackendDown(t *testing.T) {
	// A closed server yields connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(WithBaseURL(url))
	_, err := c.SubmitLanding(context.Background(), completedDraft())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if UserMessage(err) != MsgBackendDown {
		t.Fatalf("expected backend-down message, got %q", UserMessage(err))
	}
}

func TestOriginRejectionMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "origin not allowed"})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.SubmitLanding(context.Background(), completedDraft())
	if UserMessage(err) != MsgOriginRejected {
		t.Fatalf("expected origin-rejection message, got %q", UserMessage(err))
	}
}

func TestCreateProject(t *testing.T) {
	var got CreateProjectRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/project/create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("missing bearer token, got %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(CreateProjectResponse{Success: true, ProjectID: "p1"})
	}))
	defer srv.Close()

	req, err := BuildCreateRequest(completedDraft())
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	c := NewClient(WithBaseURL(srv.URL), WithToken("tok"))
	resp, err := c.CreateProject(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.ProjectID != "p1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if got.Title != "A Great Technical Manual" {
		t.Errorf("title = %q", got.Title)
	}
	if got.BudgetMin != 1000 || got.BudgetMax != 5000 {
		t.Errorf("budget = %d/%d", got.BudgetMin, got.BudgetMax)
	}
	if got.Category != "writing" {
		t.Errorf("category = %q", got.Category)
	}
	if len(got.Skills) != 2 {
		t.Errorf("skills = %v", got.Skills)
	}
	if !strings.Contains(got.DetailedRequirements, "Deliverable: Draft") {
		t.Errorf("requirements missing deliverable: %q", got.DetailedRequirements)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "alice@example.com" {
			t.Errorf("email = %q", req.Email)
		}
		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Token:   "session-token",
			User:    &domain.User{ID: "u1", Email: req.Email},
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	sess, err := c.Login(context.Background(), "alice@example.com", "Str0ng!pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("expected authenticated session: %+v", sess)
	}
}
