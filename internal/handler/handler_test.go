package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/TutorBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, *hmocks.MockAuditSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	auditSvc := hmocks.NewMockAuditSvc(t)

	h := NewHandler(slotSvc, bookingSvc, userSvc, auditSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/slots", h.CreateSlot)
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.DELETE("/slots/:id", h.DeleteSlot)
		api.POST("/slots/:id/book", h.BookSlot)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/audit", h.ListAudit)
		api.GET("/reports/bookings.csv", h.BookingsReport)
	}

	return slotSvc, bookingSvc, userSvc, auditSvc, r
}

// --- Slots ---

func TestHandler_CreateSlot_Success(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	slot := &domain.Slot{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		StartAt:   start,
		EndAt:     start.Add(time.Hour),
		Capacity:  3,
		CreatedAt: time.Now().UTC(),
	}

	slotSvc.EXPECT().CreateSlot(mock.Anything, mock.Anything).Return(slot, nil)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		OwnerID:  ownerID,
		StartAt:  start.Format(time.RFC3339),
		EndAt:    start.Add(time.Hour).Format(time.RFC3339),
		Capacity: 3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, 3, resp.Capacity)
}

func TestHandler_CreateSlot_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"owner_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSlot_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	body := []byte(`{"owner_id":"` + ownerID + `","start_at":"not-a-date","end_at":"also-bad","capacity":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSlot_OverlapConflict(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	start := time.Now().UTC().Add(24 * time.Hour)

	slotSvc.EXPECT().CreateSlot(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotOverlap)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		OwnerID:  ownerID,
		StartAt:  start.Format(time.RFC3339),
		EndAt:    start.Add(time.Hour).Format(time.RFC3339),
		Capacity: 1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSlot_Success(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	details := &domain.SlotDetails{
		Slot:           domain.Slot{ID: slotID, Capacity: 3, StartAt: time.Now(), EndAt: time.Now().Add(time.Hour), CreatedAt: time.Now()},
		AvailableSeats: 2,
		Bookings:       []domain.Booking{},
	}

	slotSvc.EXPECT().GetDetails(mock.Anything, slotID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+slotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.AvailableSeats)
}

func TestHandler_GetSlot_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlot_NotFound(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().GetDetails(mock.Anything, slotID).Return(nil, domain.ErrSlotNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+slotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListSlots_FilterByOwner(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	slots := []*domain.SlotDetails{
		{Slot: domain.Slot{ID: uuid.New().String(), OwnerID: ownerID}, AvailableSeats: 1},
	}

	slotSvc.EXPECT().List(mock.Anything, ownerID).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?owner_id="+ownerID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_DeleteSlot_Success(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	requesterID := uuid.New().String()

	slotSvc.EXPECT().DeleteSlot(mock.Anything, slotID, requesterID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/slots/"+slotID+"?requester_id="+requesterID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteSlot_HasBookings(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	requesterID := uuid.New().String()

	slotSvc.EXPECT().DeleteSlot(mock.Anything, slotID, requesterID).Return(domain.ErrSlotHasBookings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/slots/"+slotID+"?requester_id="+requesterID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteSlot_Forbidden(t *testing.T) {
	slotSvc, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	requesterID := uuid.New().String()

	slotSvc.EXPECT().DeleteSlot(mock.Anything, slotID, requesterID).Return(domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/slots/"+slotID+"?requester_id="+requesterID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Bookings ---

func TestHandler_BookSlot_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	bookerID := uuid.New().String()
	booking := &domain.Booking{
		ID:       uuid.New().String(),
		SlotID:   slotID,
		BookerID: bookerID,
		Status:   domain.BookingStatusActive,
	}

	bookingSvc.EXPECT().Book(mock.Anything, slotID, bookerID).Return(booking, nil)

	body, _ := json.Marshal(dto.BookRequest{BookerID: bookerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusActive), resp.Status)
}

func TestHandler_BookSlot_SeatsExhausted(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	bookerID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, slotID, bookerID).Return(nil, domain.ErrNoSeatsLeft)

	body, _ := json.Marshal(dto.BookRequest{BookerID: bookerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookSlot_Duplicate(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	bookerID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, slotID, bookerID).Return(nil, domain.ErrAlreadyBooked)

	body, _ := json.Marshal(dto.BookRequest{BookerID: bookerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookSlot_BadBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	slotID := uuid.New().String()
	body := []byte(`{"booker_id":"nope"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/"+slotID+"/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	requesterID := uuid.New().String()
	booking := &domain.Booking{
		ID:       bookingID,
		BookerID: requesterID,
		Status:   domain.BookingStatusCancelled,
	}

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, requesterID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID+"?requester_id="+requesterID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusCancelled), resp.Status)
}

func TestHandler_CancelBooking_TooLate(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	requesterID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, requesterID).Return(nil, domain.ErrCancelTooLate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID+"?requester_id="+requesterID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_MissingRequester(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: uuid.New().String(), BookerID: userID, Status: domain.BookingStatusActive},
		{ID: uuid.New().String(), BookerID: userID, Status: domain.BookingStatusCancelled},
	}

	bookingSvc.EXPECT().ListByBooker(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		Username: "alice",
		Role:     domain.RoleTeacher,
	}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Role: "teacher"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "teacher", resp.Role)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Audit ---

func TestHandler_ListAudit_Success(t *testing.T) {
	_, _, _, auditSvc, r := setupRouter(t)

	records := []*domain.AuditRecord{
		{ID: uuid.New().String(), Action: domain.AuditActionBook, UserID: uuid.New().String()},
	}

	auditSvc.EXPECT().ListRecent(mock.Anything, 10).Return(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit?take=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AuditRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListAudit_InvalidTake(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit?take=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reports ---

func TestHandler_BookingsReport_CSV(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	now := time.Now().UTC().Truncate(time.Second)
	rows := []*domain.ReportRow{
		{
			BookingID:      uuid.New().String(),
			Status:         domain.BookingStatusActive,
			OwnerUsername:  "teacher1",
			StartAt:        now,
			EndAt:          now.Add(time.Hour),
			BookerUsername: "student1",
			CreatedAt:      now,
		},
	}

	bookingSvc.EXPECT().Report(mock.Anything).Return(rows, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/bookings.csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.csv")

	parsed, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2) // header + one row
	assert.Equal(t, "booking_id", parsed[0][0])
	assert.Equal(t, "teacher1", parsed[1][2])
	assert.Equal(t, "student1", parsed[1][5])
}

func TestWriteBookingsCSV_EmptySlotWindowForDeletedSlot(t *testing.T) {
	rows := []*domain.ReportRow{
		{
			BookingID:      uuid.New().String(),
			Status:         domain.BookingStatusCancelled,
			BookerUsername: "student1",
			CreatedAt:      time.Now().UTC(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeBookingsCSV(&buf, rows))

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Empty(t, parsed[1][2]) // owner
	assert.Empty(t, parsed[1][3]) // slot_start
	assert.Empty(t, parsed[1][4]) // slot_end
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestWriteBookingsCSV_SurfacesWriterError(t *testing.T) {
	rows := []*domain.ReportRow{
		{BookingID: uuid.New().String(), Status: domain.BookingStatusActive},
	}

	err := writeBookingsCSV(failingWriter{}, rows)

	require.Error(t, err)
}
