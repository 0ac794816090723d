package api

import "github.com/andy/gigpost/internal/domain"

// SubmitResponse is the backend's reply to the landing submission. A
// success carries the freshly created user so the client can log in.
type SubmitResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// CreateProjectRequest is the JSON body for the authenticated flow
type CreateProjectRequest struct {
	Title                string   `json:"title"`
	Introduction         string   `json:"introduction"`
	DetailedRequirements string   `json:"detailedRequirements"`
	Skills               []string `json:"skills"`
	Deliverables         []string `json:"deliverables"`
	Deadline             string   `json:"deadline"`
	BudgetMin            int      `json:"budgetMin"`
	BudgetMax            int      `json:"budgetMax"`
	Category             string   `json:"category"`
}

// CreateProjectResponse is the backend's reply to the authenticated flow
type CreateProjectResponse struct {
	Success   bool   `json:"success"`
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

// LoginRequest is the JSON body for the auth endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token for subsequent requests
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}
