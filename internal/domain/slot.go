package domain

import "time"

type Slot struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotDetails struct {
	Slot           Slot      `json:"slot"`
	AvailableSeats int       `json:"available_seats"`
	Bookings       []Booking `json:"bookings"`
}

type CreateSlotInput struct {
	OwnerID  string
	StartAt  time.Time
	EndAt    time.Time
	Capacity int
}
