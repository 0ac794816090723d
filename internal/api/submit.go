package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andy/gigpost/internal/domain"
)

// SubmitLanding posts a completed anonymous draft to the landing endpoint as
// multipart form data. Array-valued fields are JSON-encoded strings; the
// optional attachment travels as a binary part; everything else is a string.
func (c *Client) SubmitLanding(ctx context.Context, d *domain.ProjectDraft) (*SubmitResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields, err := landingFields(d)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", f.key, err)
		}
	}

	if d.FilePath != "" {
		if err := attachFile(w, d.FilePath); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/project/post-from-landing", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyRejection(resp.StatusCode, respBody)
	}

	var out SubmitResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}

// formField is one string part of the landing submission
type formField struct {
	key   string
	value string
}

// landingFields flattens the draft into the wire field set. The budget field
// carries the maximum of the entered range.
func landingFields(d *domain.ProjectDraft) ([]formField, error) {
	tags, err := json.Marshal(tagsOrEmpty(d.ExpertiseTags))
	if err != nil {
		return nil, fmt.Errorf("encoding expertise tags: %w", err)
	}
	industries, err := json.Marshal([]string{d.Industry})
	if err != nil {
		return nil, fmt.Errorf("encoding industries: %w", err)
	}
	factors, err := json.Marshal(tagsOrEmpty(d.HiringFactors))
	if err != nil {
		return nil, fmt.Errorf("encoding hiring factors: %w", err)
	}

	budget, err := strconv.Atoi(strings.TrimSpace(d.MaxBudget))
	if err != nil {
		return nil, fmt.Errorf("draft has no valid maximum budget: %w", err)
	}

	return []formField{
		{"privacy", string(d.Privacy)},
		{"category", string(d.Category)},
		{"selectedType", d.Type},
		{"selectedActivity", d.Activity},
		{"selectedDeliverable", d.Deliverable},
		{"writingLength", d.Length.Value},
		{"writingLengthUnit", string(d.Length.Unit)},
		{"expertiseTags", string(tags)},
		{"industries", string(industries)},
		{"title", d.Title},
		{"fullname", d.Identity.Fullname()},
		{"email", d.Identity.Email},
		{"password", d.Identity.Password},
		{"phoneNumber", d.Identity.PhoneNumber},
		{"countryCode", d.Identity.CountryCode},
		{"description", d.Description},
		{"feeType", string(d.FeeType)},
		{"budget", strconv.Itoa(budget)},
		{"hiringTimeline", d.HiringTimeline},
		{"hiringFactors", string(factors)},
		{"billingType", string(d.Billing.Type)},
		{"addressLine1", d.Billing.AddressLine1},
		{"addressLine2", d.Billing.AddressLine2},
		{"city", d.Billing.City},
		{"state", d.Billing.State},
		{"zipCode", d.Billing.ZipCode},
		{"country", d.Billing.Country},
		{"companyName", d.Billing.CompanyName},
		{"companyRegistration", d.Billing.CompanyRegistration},
		{"vatNumber", d.Billing.VATNumber},
		{"expertInvitation", string(d.InvitePreference)},
	}, nil
}

// tagsOrEmpty keeps nil slices encoding as [] rather than null
func tagsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// attachFile writes the draft's PDF attachment as the "files" part
func attachFile(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening attachment: %w", err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copying attachment: %w", err)
	}
	return nil
}

// CreateProject posts a completed draft through the authenticated endpoint
func (c *Client) CreateProject(ctx context.Context, req *CreateProjectRequest) (*CreateProjectResponse, error) {
	var out CreateProjectResponse
	if err := c.postJSON(ctx, "/project/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with the backend and returns a session. Used both by
// the login command and by the post-signup auto-login chain.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var out LoginResponse
	if err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &domain.Session{Token: out.Token, User: out.User}, nil
}

// BuildCreateRequest assembles the authenticated wire format from a draft.
// The introduction is the description; the structured selections travel in
// the detailed requirements block.
func BuildCreateRequest(d *domain.ProjectDraft) (*CreateProjectRequest, error) {
	minBudget, err := strconv.Atoi(strings.TrimSpace(d.MinBudget))
	if err != nil {
		return nil, fmt.Errorf("draft has no valid minimum budget: %w", err)
	}
	maxBudget, err := strconv.Atoi(strings.TrimSpace(d.MaxBudget))
	if err != nil {
		return nil, fmt.Errorf("draft has no valid maximum budget: %w", err)
	}

	var details strings.Builder
	details.WriteString("Type: " + d.Type + "\n")
	if d.Activity != "" {
		details.WriteString("Activity: " + d.Activity + "\n")
	}
	details.WriteString("Deliverable: " + d.Deliverable + "\n")
	if d.Category == domain.CategoryWriting {
		details.WriteString(fmt.Sprintf("Length: %s %s\n", d.Length.Value, d.Length.Unit))
	}
	details.WriteString("Industry: " + d.Industry + "\n")

	return &CreateProjectRequest{
		Title:                d.Title,
		Introduction:         d.Description,
		DetailedRequirements: details.String(),
		Skills:               tagsOrEmpty(d.ExpertiseTags),
		Deliverables:         []string{d.Deliverable},
		Deadline:             d.HiringTimeline,
		BudgetMin:            minBudget,
		BudgetMax:            maxBudget,
		Category:             string(d.Category),
	}, nil
}
