package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TutorBooker/internal/domain"
)

// AuditSink receives fire-and-forget event records. Implementations must
// never propagate recording failures to the business operation they
// describe.
type AuditSink interface {
	Record(ctx context.Context, action, actorID string, meta map[string]any)
}

type AuditRepo interface {
	Insert(ctx context.Context, rec *domain.AuditRecord) error
	ListRecent(ctx context.Context, take int) ([]*domain.AuditRecord, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
