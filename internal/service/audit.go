package service

import (
	"context"

	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/service/ports"
)

const (
	defaultAuditTake = 100
	maxAuditTake     = 1000
)

type AuditService struct {
	repo ports.AuditRepo
}

func NewAuditService(repo ports.AuditRepo) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) ListRecent(ctx context.Context, take int) ([]*domain.AuditRecord, error) {
	if take <= 0 {
		take = defaultAuditTake
	}
	if take > maxAuditTake {
		take = maxAuditTake
	}
	return s.repo.ListRecent(ctx, take)
}
