package service

import (
	"context"
	"testing"

	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/draft"
)

func TestSaveProgressCreatesThenUpdates(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	store := draft.NewStore()
	store.SetCategory(domain.CategoryConsulting)
	store.SetTitle("Pricing strategy review")

	id, err := svc.SaveProgress(ctx, store.Draft().Clone(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a new draft ID")
	}

	// A second save with the ID updates in place
	store.SetTitle("Pricing strategy deep dive")
	id2, err := svc.SaveProgress(ctx, store.Draft().Clone(), 2, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id2 != id {
		t.Fatalf("update must keep the ID: got %d, want %d", id2, id)
	}
	if len(repo.drafts) != 1 {
		t.Fatalf("expected one saved draft, got %d", len(repo.drafts))
	}

	saved, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Title != "Pricing strategy deep dive" {
		t.Fatalf("update not persisted: %q", saved.Title)
	}
	if saved.Category != domain.CategoryConsulting {
		t.Fatalf("category not persisted: %q", saved.Category)
	}
}

func TestSaveProgressRecordsStep(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	ctrl := completeAnonController()
	ctrl.Next()
	ctrl.Next()

	id, err := svc.SaveProgress(ctx, ctrl.Store().Draft().Clone(), int(ctrl.Step()), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, _ := svc.Get(ctx, id)
	if saved.Step != int(ctrl.Step()) {
		t.Fatalf("saved step %d, controller at %d", saved.Step, ctrl.Step())
	}
}

func TestSaveProgressKeepsSnapshotAfterLiveEdits(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	store := draft.NewStore()
	store.SetCategory(domain.CategoryWriting)
	store.SetTitle("A Great Technical Manual")
	store.AddCustomTag("Quantum-computing")

	id, err := svc.SaveProgress(ctx, store.Draft().Clone(), 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Edits after the save must not bleed into the persisted copy
	store.SetTitle("A Terrible Technical Manual")
	store.AddCustomTag("Cryptography")

	saved, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Draft.Title != "A Great Technical Manual" {
		t.Fatalf("live edit leaked into saved draft: %q", saved.Draft.Title)
	}
	if len(saved.Draft.ExpertiseTags) != 1 {
		t.Fatalf("live tag edit leaked into saved draft: %v", saved.Draft.ExpertiseTags)
	}
}

func TestDeleteRemovesFromListing(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo)
	ctx := context.Background()

	store := draft.NewStore()
	store.SetTitle("Throwaway brief")
	id, err := svc.SaveProgress(ctx, store.Draft().Clone(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drafts, err := svc.ListUnsubmitted(ctx)
	if err != nil || len(drafts) != 1 {
		t.Fatalf("expected one listed draft, got %d (err %v)", len(drafts), err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drafts, _ = svc.ListUnsubmitted(ctx)
	if len(drafts) != 0 {
		t.Fatalf("deleted draft still listed: %v", drafts)
	}
}
