package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Sink persists audit records to the audit repository. Record is
// fire-and-forget: failures are logged and dropped so they can never roll
// back the business transaction they describe.
type Sink struct {
	repo   ports.AuditRepo
	logger logger.Logger
}

func NewSink(repo ports.AuditRepo, logger logger.Logger) *Sink {
	return &Sink{repo: repo, logger: logger}
}

func (s *Sink) Record(ctx context.Context, action, actorID string, meta map[string]any) {
	rec := &domain.AuditRecord{
		ID:        uuid.New().String(),
		Action:    action,
		UserID:    actorID,
		Meta:      meta,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		s.logger.Error("failed to record audit event",
			logger.String("action", action),
			logger.String("actor_id", actorID),
			logger.String("error", err.Error()),
		)
	}
}
