package domain

import "errors"

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoSeatsLeft      = errors.New("no seats left")
	ErrAlreadyBooked    = errors.New("booker already has an active booking for this slot")
	ErrSlotOverlap      = errors.New("overlapping slot")
	ErrSlotHasBookings  = errors.New("slot has active bookings")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancelTooLate    = errors.New("cannot cancel within restricted window")
	ErrTxConflict       = errors.New("transaction conflict")
)

var (
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
