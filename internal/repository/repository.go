package repository

import (
	"context"

	"github.com/andy/gigpost/internal/domain"
)

// DraftRepository manages persisted in-progress project drafts
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.SavedDraft) error
	GetByID(ctx context.Context, id int64) (*domain.SavedDraft, error)
	// List returns drafts newest-first, optionally including submitted ones
	List(ctx context.Context, includeSubmitted bool) ([]*domain.SavedDraft, error)
	Update(ctx context.Context, draft *domain.SavedDraft) error
	Delete(ctx context.Context, id int64) error
	// MarkSubmitted flags a draft as consumed by a successful submission
	MarkSubmitted(ctx context.Context, id int64) error
}
