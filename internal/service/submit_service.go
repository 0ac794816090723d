package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/andy/gigpost/internal/api"
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/repository"
	"github.com/andy/gigpost/internal/wizard"
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrDraftIncomplete    = errors.New("draft does not pass all step guards")
)

// Outcome is the classified result of a submission attempt. Success with
// AutoLoginFailed set means the project was posted but the follow-up login
// could not establish a session; the success is never downgraded.
type Outcome struct {
	Success         bool
	Message         string
	ProjectID       string
	Session         *domain.Session
	AutoLoginFailed bool
}

// Backend is the slice of the API client the submit service needs
type Backend interface {
	SubmitLanding(ctx context.Context, d *domain.ProjectDraft) (*api.SubmitResponse, error)
	CreateProject(ctx context.Context, req *api.CreateProjectRequest) (*api.CreateProjectResponse, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// SubmitService consumes a completed draft exactly once
type SubmitService interface {
	// Submit posts the controller's draft through the branch-appropriate
	// endpoint. savedID, when positive, identifies the persisted draft to
	// mark consumed on success. A second call while one is in flight
	// returns ErrSubmissionInFlight.
	Submit(ctx context.Context, ctrl *wizard.Controller, savedID int64) (*Outcome, error)
}

type submitService struct {
	backend   Backend
	draftRepo repository.DraftRepository
	inFlight  atomic.Bool
}

// NewSubmitService creates a new submit service
func NewSubmitService(backend Backend, draftRepo repository.DraftRepository) SubmitService {
	return &submitService{
		backend:   backend,
		draftRepo: draftRepo,
	}
}

func (s *submitService) Submit(ctx context.Context, ctrl *wizard.Controller, savedID int64) (*Outcome, error) {
	// One in-flight submission per wizard instance; the caller keeps the
	// submit control disabled until this returns.
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	if !ctrl.CanSubmit() {
		return nil, ErrDraftIncomplete
	}

	var outcome *Outcome
	var err error
	if ctrl.Authenticated() {
		outcome, err = s.submitAuthenticated(ctx, ctrl.Store().Draft())
	} else {
		outcome, err = s.submitLanding(ctx, ctrl.Store().Draft())
	}
	if err != nil {
		// The draft survives every failure; the user retries manually
		return nil, err
	}

	if savedID > 0 {
		// Submission already succeeded; a bookkeeping failure here must
		// not surface as a submission failure
		_ = s.draftRepo.MarkSubmitted(ctx, savedID)
	}

	return outcome, nil
}

func (s *submitService) submitAuthenticated(ctx context.Context, d *domain.ProjectDraft) (*Outcome, error) {
	req, err := api.BuildCreateRequest(d)
	if err != nil {
		return nil, err
	}
	resp, err := s.backend.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Success:   true,
		Message:   resp.Message,
		ProjectID: resp.ProjectID,
	}, nil
}

func (s *submitService) submitLanding(ctx context.Context, d *domain.ProjectDraft) (*Outcome, error) {
	resp, err := s.backend.SubmitLanding(ctx, d)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Success: true,
		Message: resp.Message,
	}

	// Chain an automatic login with the just-created credentials. A login
	// failure never rolls back the submission success.
	sess, err := s.backend.Login(ctx, d.Identity.Email, d.Identity.Password)
	if err != nil {
		outcome.AutoLoginFailed = true
		return outcome, nil
	}
	outcome.Session = sess

	return outcome, nil
}
