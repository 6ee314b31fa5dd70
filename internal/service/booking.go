package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/metrics"
	"github.com/stpnv0/TutorBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const conflictRetryDelay = 50 * time.Millisecond

type BookingService struct {
	bookingRepo   ports.BookingRepo
	slotRepo      ports.SlotRepo
	userRepo      ports.UserRepo
	audit         ports.AuditSink
	logger        logger.Logger
	minCancelLead time.Duration
	bookAttempts  int
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	userRepo ports.UserRepo,
	audit ports.AuditSink,
	logger logger.Logger,
	minCancelLead time.Duration,
	bookAttempts int,
) *BookingService {
	if bookAttempts < 1 {
		bookAttempts = 1
	}
	return &BookingService{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		userRepo:      userRepo,
		audit:         audit,
		logger:        logger,
		minCancelLead: minCancelLead,
		bookAttempts:  bookAttempts,
	}
}

func (s *BookingService) Book(ctx context.Context, slotID, bookerID string) (*domain.Booking, error) {
	// проверка, что slotID, bookerID exist
	if _, err := s.slotRepo.GetByID(ctx, slotID); err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, fmt.Errorf("check booker: %w", err)
	}
	if booker.Role != domain.RoleStudent {
		return nil, fmt.Errorf("%w: only students can book slots", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SlotID:    slotID,
		BookerID:  bookerID,
		Status:    domain.BookingStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for attempt := 1; ; attempt++ {
		err = s.bookingRepo.Create(ctx, booking)
		if !errors.Is(err, domain.ErrTxConflict) || attempt >= s.bookAttempts {
			break
		}
		metrics.BookingTxConflicts.Inc()
		s.logger.Warn("booking tx conflict, retrying",
			logger.String("slot_id", slotID),
			logger.Int("attempt", attempt),
		)
		time.Sleep(time.Duration(attempt) * conflictRetryDelay)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNoSeatsLeft) {
			metrics.SeatsExhausted.Inc()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slotID),
		logger.String("booker_id", bookerID),
	)

	// аудит пишется только после успешного коммита
	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditActionBook, bookerID, map[string]any{
		"slot_id": slotID,
	})

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID string) (*domain.Booking, error) {
	bws, err := s.bookingRepo.GetWithSlot(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	// чужая бронь выглядит как отсутствующая
	if bws.Booking.BookerID != requesterID {
		return nil, domain.ErrBookingNotFound
	}

	if !domain.CanCancel(time.Now().UTC(), bws.SlotStartAt, s.minCancelLead) {
		return nil, fmt.Errorf("%w: slot starts at %s", domain.ErrCancelTooLate, bws.SlotStartAt.Format(time.RFC3339))
	}

	booking, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	metrics.BookingsCancelled.Inc()
	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("booker_id", requesterID),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditActionCancel, requesterID, map[string]any{
		"booking_id": bookingID,
	})

	return booking, nil
}

func (s *BookingService) ListByBooker(ctx context.Context, bookerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByBooker(ctx, bookerID)
}

func (s *BookingService) Report(ctx context.Context) ([]*domain.ReportRow, error) {
	return s.bookingRepo.ReportRows(ctx)
}
