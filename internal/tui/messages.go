package tui

import (
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/service"
)

// draftsLoadedMsg reports the saved drafts available for resuming
type draftsLoadedMsg struct {
	drafts []*domain.SavedDraft
	err    error
}

// startWizardMsg begins the wizard, resuming the given draft (nil = fresh)
type startWizardMsg struct {
	saved *domain.SavedDraft
}

// draftSavedMsg reports the outcome of an autosave
type draftSavedMsg struct {
	id  int64
	err error
}

// submitResultMsg carries the submission outcome
type submitResultMsg struct {
	outcome *service.Outcome
	err     error
}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}
