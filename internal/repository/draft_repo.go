package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andy/gigpost/internal/db"
	"github.com/andy/gigpost/internal/domain"
)

// DraftRepo is a SQLite implementation of DraftRepository
type DraftRepo struct {
	db *db.DB
}

// NewDraftRepo creates a new DraftRepo
func NewDraftRepo(database *db.DB) *DraftRepo {
	return &DraftRepo{db: database}
}

// Create inserts a new saved draft
func (r *DraftRepo) Create(ctx context.Context, d *domain.SavedDraft) error {
	payload, err := json.Marshal(d.Draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft payload: %w", err)
	}

	query := `
		INSERT INTO saved_drafts (title, category, step, payload, is_submitted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Title,
		string(d.Category),
		d.Step,
		string(payload),
		d.Submitted,
		d.CreatedAt.Format(timeLayout),
		d.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get draft ID: %w", err)
	}

	d.ID = id
	return nil
}

// GetByID retrieves a saved draft, decoding the full payload
func (r *DraftRepo) GetByID(ctx context.Context, id int64) (*domain.SavedDraft, error) {
	query := `
		SELECT id, title, category, step, payload, is_submitted, created_at, updated_at
		FROM saved_drafts
		WHERE id = ?
	`

	return r.scanDraft(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves saved drafts newest-first
func (r *DraftRepo) List(ctx context.Context, includeSubmitted bool) ([]*domain.SavedDraft, error) {
	query := `
		SELECT id, title, category, step, payload, is_submitted, created_at, updated_at
		FROM saved_drafts
		WHERE is_submitted = 0 OR ? = 1
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, includeSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := make([]*domain.SavedDraft, 0)
	for rows.Next() {
		d, err := r.scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drafts: %w", err)
	}

	return drafts, nil
}

// Update rewrites a saved draft's payload and listing columns
func (r *DraftRepo) Update(ctx context.Context, d *domain.SavedDraft) error {
	payload, err := json.Marshal(d.Draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft payload: %w", err)
	}

	d.UpdatedAt = time.Now()

	query := `
		UPDATE saved_drafts
		SET title = ?, category = ?, step = ?, payload = ?, is_submitted = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Title,
		string(d.Category),
		d.Step,
		string(payload),
		d.Submitted,
		d.UpdatedAt.Format(timeLayout),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("draft not found")
	}

	return nil
}

// Delete removes a saved draft
func (r *DraftRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("draft not found")
	}

	return nil
}

// MarkSubmitted flags a draft as consumed
func (r *DraftRepo) MarkSubmitted(ctx context.Context, id int64) error {
	query := `
		UPDATE saved_drafts
		SET is_submitted = 1, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, formatTime(), id)
	if err != nil {
		return fmt.Errorf("failed to mark draft submitted: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("draft not found")
	}

	return nil
}

// rowScanner covers both sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *DraftRepo) scanDraft(row rowScanner) (*domain.SavedDraft, error) {
	d := &domain.SavedDraft{}
	var category, payload, createdAt, updatedAt string

	err := row.Scan(
		&d.ID,
		&d.Title,
		&category,
		&d.Step,
		&payload,
		&d.Submitted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft not found: %w", err)
		}
		return nil, fmt.Errorf("failed to scan draft: %w", err)
	}

	d.Category = domain.Category(category)

	d.Draft = &domain.ProjectDraft{}
	if err := json.Unmarshal([]byte(payload), d.Draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft payload: %w", err)
	}

	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return d, nil
}
