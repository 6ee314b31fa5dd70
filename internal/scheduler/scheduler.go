package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type auditPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler периодически удаляет устаревшие записи аудита.
type Scheduler struct {
	audit     auditPurger
	interval  time.Duration
	retention time.Duration
	logger    logger.Logger
}

func New(
	audit auditPurger,
	interval time.Duration,
	retention time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		audit:     audit,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("retention", s.retention),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.retention)

	purged, err := s.audit.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to purge audit records",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("audit records purged",
			logger.Int64("count", purged),
		)
	}
}
