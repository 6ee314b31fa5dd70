package ports

import (
	"context"

	"github.com/stpnv0/TutorBooker/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error)
	List(ctx context.Context, ownerID string) ([]*domain.SlotDetails, error)
	Delete(ctx context.Context, id string) error
}
