package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(
	t *testing.T,
	bookingRepo *mocks.MockBookingRepo,
	slotRepo *mocks.MockSlotRepo,
	userRepo *mocks.MockUserRepo,
	audit *mocks.MockAuditSink,
	minCancelLead time.Duration,
) *BookingService {
	t.Helper()
	return NewBookingService(bookingRepo, slotRepo, userRepo, audit, newTestLogger(t), minCancelLead, 3)
}

func TestBookingService_Book_Succeeds(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleStudent}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	audit.EXPECT().Record(mock.Anything, domain.AuditActionBook, "u1", mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
	assert.Equal(t, "s1", booking.SlotID)
	assert.Equal(t, "u1", booking.BookerID)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine audit
}

func TestBookingService_Book_SlotNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_Book_BookerNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "s1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_TeacherCannotBook(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleTeacher}, nil)

	_, err := svc.Book(context.Background(), "s1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Book_SeatsExhausted(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleStudent}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNoSeatsLeft)

	_, err := svc.Book(context.Background(), "s1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSeatsLeft)
}

func TestBookingService_Book_Duplicate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleStudent}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), "s1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_RetriesOnTxConflict(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleStudent}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTxConflict).Times(2)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	audit.EXPECT().Record(mock.Anything, domain.AuditActionBook, "u1", mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_TxConflictExhaustsRetries(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Slot{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleStudent}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTxConflict).Times(3)

	_, err := svc.Book(context.Background(), "s1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTxConflict)
}

func TestBookingService_Cancel_Succeeds(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, time.Hour)

	bws := &domain.BookingWithSlot{
		Booking:     domain.Booking{ID: "b1", SlotID: "s1", BookerID: "u1", Status: domain.BookingStatusActive},
		SlotStartAt: time.Now().UTC().Add(2 * time.Hour),
	}
	cancelled := &domain.Booking{ID: "b1", SlotID: "s1", BookerID: "u1", Status: domain.BookingStatusCancelled}

	bookingRepo.EXPECT().GetWithSlot(mock.Anything, "b1").Return(bws, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)
	audit.EXPECT().Record(mock.Anything, domain.AuditActionCancel, "u1", mock.Anything).Return()

	booking, err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	bookingRepo.EXPECT().GetWithSlot(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_ForeignBookingLooksMissing(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	bws := &domain.BookingWithSlot{
		Booking:     domain.Booking{ID: "b1", SlotID: "s1", BookerID: "owner", Status: domain.BookingStatusActive},
		SlotStartAt: time.Now().UTC().Add(time.Hour),
	}

	bookingRepo.EXPECT().GetWithSlot(mock.Anything, "b1").Return(bws, nil)

	_, err := svc.Cancel(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_TooLate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 24*time.Hour)

	bws := &domain.BookingWithSlot{
		Booking:     domain.Booking{ID: "b1", SlotID: "s1", BookerID: "u1", Status: domain.BookingStatusActive},
		SlotStartAt: time.Now().UTC().Add(time.Hour),
	}

	bookingRepo.EXPECT().GetWithSlot(mock.Anything, "b1").Return(bws, nil)

	_, err := svc.Cancel(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelTooLate)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	bws := &domain.BookingWithSlot{
		Booking:     domain.Booking{ID: "b1", SlotID: "s1", BookerID: "u1", Status: domain.BookingStatusCancelled},
		SlotStartAt: time.Now().UTC().Add(time.Hour),
	}

	bookingRepo.EXPECT().GetWithSlot(mock.Anything, "b1").Return(bws, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil, domain.ErrAlreadyCancelled)

	_, err := svc.Cancel(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_ListByBooker(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	expected := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	bookingRepo.EXPECT().ListByBooker(mock.Anything, "u1").Return(expected, nil)

	bookings, err := svc.ListByBooker(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingService_Report_PropagatesError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	audit := mocks.NewMockAuditSink(t)

	svc := newBookingService(t, bookingRepo, slotRepo, userRepo, audit, 0)

	bookingRepo.EXPECT().ReportRows(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Report(context.Background())

	require.Error(t, err)
}
