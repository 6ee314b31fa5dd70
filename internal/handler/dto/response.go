package dto

import (
	"time"

	"github.com/stpnv0/TutorBooker/internal/domain"
)

type SlotResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type SlotDetailsResponse struct {
	Slot           SlotResponse      `json:"slot"`
	AvailableSeats int               `json:"available_seats"`
	Bookings       []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	SlotID    string `json:"slot_id"`
	BookerID  string `json:"booker_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuditRecordResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	UserID    string         `json:"user_id"`
	Meta      map[string]any `json:"meta"`
	CreatedAt string         `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		StartAt:   s.StartAt.Format(time.RFC3339),
		EndAt:     s.EndAt.Format(time.RFC3339),
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotDetailsResponse(d *domain.SlotDetails) SlotDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return SlotDetailsResponse{
		Slot:           ToSlotResponse(&d.Slot),
		AvailableSeats: d.AvailableSeats,
		Bookings:       bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		SlotID:    b.SlotID,
		BookerID:  b.BookerID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuditRecordResponse(rec *domain.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		ID:        rec.ID,
		Action:    rec.Action,
		UserID:    rec.UserID,
		Meta:      rec.Meta,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
