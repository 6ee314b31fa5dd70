package handler

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error)
	DeleteSlot(ctx context.Context, slotID, requesterID string) error
	GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error)
	List(ctx context.Context, ownerID string) ([]*domain.SlotDetails, error)
}

type BookingSvc interface {
	Book(ctx context.Context, slotID, bookerID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterID string) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID string) ([]*domain.Booking, error)
	Report(ctx context.Context) ([]*domain.ReportRow, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type AuditSvc interface {
	ListRecent(ctx context.Context, take int) ([]*domain.AuditRecord, error)
}

type Handler struct {
	slotService    SlotSvc
	bookingService BookingSvc
	userService    UserSvc
	auditService   AuditSvc
}

func NewHandler(slotService SlotSvc, bookingService BookingSvc, userService UserSvc, auditService AuditSvc) *Handler {
	return &Handler{
		slotService:    slotService,
		bookingService: bookingService,
		userService:    userService,
		auditService:   auditService,
	}
}

// Slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSlotInput{
		OwnerID:  req.OwnerID,
		StartAt:  startAt,
		EndAt:    endAt,
		Capacity: req.Capacity,
	}

	slot, err := h.slotService.CreateSlot(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) GetSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	details, err := h.slotService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotDetailsResponse(details))
}

func (h *Handler) ListSlots(c *ginext.Context) {
	ownerID := c.Query("owner_id")
	if ownerID != "" {
		if _, err := uuid.Parse(ownerID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
			return
		}
	}

	slots, err := h.slotService.List(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotDetailsResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotDetailsResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	requesterID := c.Query("requester_id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid requester id"})
		return
	}

	if err := h.slotService.DeleteSlot(c.Request.Context(), id, requesterID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) BookSlot(c *ginext.Context) {
	slotID := c.Param("id")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), slotID, req.BookerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	requesterID := c.Query("requester_id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid requester id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, requesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByBooker(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Role:     domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Audit

func (h *Handler) ListAudit(c *ginext.Context) {
	take, err := strconv.Atoi(c.DefaultQuery("take", "100"))
	if err != nil || take < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid take"})
		return
	}

	records, err := h.auditService.ListRecent(c.Request.Context(), take)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AuditRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, dto.ToAuditRecordResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}

// Reports

func (h *Handler) BookingsReport(c *ginext.Context) {
	rows, err := h.bookingService.Report(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Status(http.StatusOK)

	if err := writeBookingsCSV(c.Writer, rows); err != nil {
		// статус уже отправлен, остаётся зафиксировать обрыв в логе запроса
		c.Set("error", err.Error())
	}
}

func writeBookingsCSV(out io.Writer, rows []*domain.ReportRow) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"booking_id", "status", "owner", "slot_start", "slot_end", "booker", "created_at"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write([]string{
			row.BookingID,
			string(row.Status),
			row.OwnerUsername,
			formatReportTime(row.StartAt),
			formatReportTime(row.EndAt),
			row.BookerUsername,
			row.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatReportTime leaves the cell empty for bookings whose slot was
// deleted and carries no window anymore.
func formatReportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoSeatsLeft),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSlotOverlap),
		errors.Is(err, domain.ErrSlotHasBookings),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrCancelTooLate),
		errors.Is(err, domain.ErrTxConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
