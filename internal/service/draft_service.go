package service

import (
	"context"
	"errors"

	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/repository"
)

var ErrNoDraft = errors.New("no saved draft")

// DraftService persists wizard progress so an interrupted flow can resume
type DraftService interface {
	// SaveProgress creates or updates a saved draft. Callers hand in a
	// snapshot of the draft (see ProjectDraft.Clone) so the wizard can keep
	// mutating its own copy while the write is in flight. Returns the saved
	// draft ID.
	SaveProgress(ctx context.Context, d *domain.ProjectDraft, step int, savedID int64) (int64, error)

	// Get loads a saved draft by ID
	Get(ctx context.Context, id int64) (*domain.SavedDraft, error)

	// ListUnsubmitted returns resumable drafts, newest first
	ListUnsubmitted(ctx context.Context) ([]*domain.SavedDraft, error)

	// Delete discards a saved draft
	Delete(ctx context.Context, id int64) error
}

type draftService struct {
	draftRepo repository.DraftRepository
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repository.DraftRepository) DraftService {
	return &draftService{draftRepo: draftRepo}
}

func (s *draftService) SaveProgress(ctx context.Context, d *domain.ProjectDraft, step int, savedID int64) (int64, error) {
	if savedID > 0 {
		saved, err := s.draftRepo.GetByID(ctx, savedID)
		if err != nil {
			return 0, err
		}
		saved.Title = d.Title
		saved.Category = d.Category
		saved.Step = step
		saved.Draft = d
		if err := s.draftRepo.Update(ctx, saved); err != nil {
			return 0, err
		}
		return saved.ID, nil
	}

	saved := domain.NewSavedDraft(d, step)
	if err := s.draftRepo.Create(ctx, saved); err != nil {
		return 0, err
	}
	return saved.ID, nil
}

func (s *draftService) Get(ctx context.Context, id int64) (*domain.SavedDraft, error) {
	saved, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrNoDraft
	}
	return saved, nil
}

func (s *draftService) ListUnsubmitted(ctx context.Context) ([]*domain.SavedDraft, error) {
	return s.draftRepo.List(ctx, false)
}

func (s *draftService) Delete(ctx context.Context, id int64) error {
	return s.draftRepo.Delete(ctx, id)
}
