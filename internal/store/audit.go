// Package store persists reviewed essays for audit and training-data export.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

var ErrNotFound = sql.ErrNoRows

// AuditRepo stores the reconstructed final text plus the derived
// {original, corrected, pattern} records per essay.
type AuditRepo struct{ DB *sql.DB }

func NewAuditRepo(db *sql.DB) *AuditRepo { return &AuditRepo{DB: db} }

// AuditRow is one reviewed essay as read back from the store.
type AuditRow struct {
	EssayID   string
	CreatedAt time.Time
	FinalText string
	Records   []model.CorrectionRecord
}

// Save upserts the review outcome for an essay. A re-review of the same
// essay overwrites the previous export.
func (r *AuditRepo) Save(ctx context.Context, essayID, finalText string, records []model.CorrectionRecord) error {
	js, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "store: marshal records")
	}
	const q = `
insert into essay_reviews (essay_id, final_text, records_json, created_at)
values ($1, $2, $3, now())
on conflict (essay_id) do update
set final_text = excluded.final_text,
    records_json = excluded.records_json,
    created_at = excluded.created_at`
	_, err = r.DB.ExecContext(ctx, q, essayID, finalText, js)
	return errors.Wrap(err, "store: save review")
}

// Find returns the stored review for an essay, or ErrNotFound.
func (r *AuditRepo) Find(ctx context.Context, essayID string) (*AuditRow, error) {
	const q = `
select essay_id, created_at, final_text, records_json
from essay_reviews
where essay_id = $1`
	row := r.DB.QueryRowContext(ctx, q, essayID)

	var (
		out AuditRow
		js  []byte
	)
	if err := row.Scan(&out.EssayID, &out.CreatedAt, &out.FinalText, &js); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(js, &out.Records); err != nil {
		return nil, ErrNotFound
	}
	return &out, nil
}

// PurgeOlderThan deletes stale exports so the table does not grow without
// bound.
func (r *AuditRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from essay_reviews where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
