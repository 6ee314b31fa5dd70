package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Insert(ctx context.Context, rec *domain.AuditRecord) error {
	meta, err := json.Marshal(rec.Meta)
	if err != nil {
		return fmt.Errorf("marshal audit meta: %w", err)
	}

	query := `INSERT INTO audit_log (id, action, user_id, meta, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.Action, rec.UserID, meta, rec.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}

	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, take int) ([]*domain.AuditRecord, error) {
	query := `SELECT id, action, user_id, meta, created_at
			  FROM audit_log
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, take)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	var res []*domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var meta []byte
		if err = rows.Scan(&rec.ID, &rec.Action, &rec.UserID, &meta, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		if err = json.Unmarshal(meta, &rec.Meta); err != nil {
			return nil, fmt.Errorf("unmarshal audit meta: %w", err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}

func (r *AuditRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM audit_log WHERE created_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge audit records: %w", err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("audit rows affected: %w", err)
	}

	return purged, nil
}
