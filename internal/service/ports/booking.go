package ports

import (
	"context"

	"github.com/stpnv0/TutorBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetWithSlot(ctx context.Context, id string) (*domain.BookingWithSlot, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID string) ([]*domain.Booking, error)
	ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error)
	ReportRows(ctx context.Context) ([]*domain.ReportRow, error)
}
