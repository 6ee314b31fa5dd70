package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/metrics"
	"github.com/stpnv0/TutorBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SlotService struct {
	slotRepo    ports.SlotRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	audit       ports.AuditSink
	logger      logger.Logger
}

func NewSlotService(
	slotRepo ports.SlotRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	audit ports.AuditSink,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		audit:       audit,
		logger:      logger,
	}
}

func (s *SlotService) CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error) {
	if input.StartAt.IsZero() || input.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: start_at and end_at are required", domain.ErrValidation)
	}
	if !input.StartAt.Before(input.EndAt) {
		return nil, fmt.Errorf("%w: start_at must be before end_at", domain.ErrValidation)
	}
	if input.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if owner.Role != domain.RoleTeacher {
		return nil, fmt.Errorf("%w: only teachers can publish slots", domain.ErrForbidden)
	}

	slot := &domain.Slot{
		ID:        uuid.New().String(),
		OwnerID:   input.OwnerID,
		StartAt:   input.StartAt.UTC(),
		EndAt:     input.EndAt.UTC(),
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	metrics.SlotsCreated.Inc()
	s.logger.Info("slot created",
		logger.String("slot_id", slot.ID),
		logger.String("owner_id", slot.OwnerID),
		logger.Int("capacity", slot.Capacity),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditActionCreateSlot, input.OwnerID, map[string]any{
		"slot_id":  slot.ID,
		"start_at": slot.StartAt.Format(time.RFC3339),
		"end_at":   slot.EndAt.Format(time.RFC3339),
		"capacity": slot.Capacity,
	})

	return slot, nil
}

func (s *SlotService) DeleteSlot(ctx context.Context, slotID, requesterID string) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}

	if slot.OwnerID != requesterID {
		return fmt.Errorf("%w: slot belongs to another owner", domain.ErrForbidden)
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	metrics.SlotsDeleted.Inc()
	s.logger.Info("slot deleted",
		logger.String("slot_id", slotID),
		logger.String("owner_id", requesterID),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditActionDeleteSlot, requesterID, map[string]any{
		"slot_id": slotID,
	})

	return nil
}

func (s *SlotService) GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error) {
	details, err := s.slotRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListBySlot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *SlotService) List(ctx context.Context, ownerID string) ([]*domain.SlotDetails, error) {
	return s.slotRepo.List(ctx, ownerID)
}
