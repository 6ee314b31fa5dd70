package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        string        `json:"id"`
	SlotID    string        `json:"slot_id"`
	BookerID  string        `json:"booker_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingWithSlot carries the owning slot's window alongside the booking,
// loaded in one query so the cancellation policy sees the same row the
// state transition will touch.
type BookingWithSlot struct {
	Booking     Booking
	SlotStartAt time.Time
	SlotEndAt   time.Time
	SlotOwnerID string
}

// ReportRow is one line of the admin bookings export.
type ReportRow struct {
	BookingID      string
	Status         BookingStatus
	OwnerUsername  string
	StartAt        time.Time
	EndAt          time.Time
	BookerUsername string
	CreatedAt      time.Time
}
