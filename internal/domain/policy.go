package domain

import "time"

// CanCancel reports whether a booking on a slot starting at slotStart may
// still be cancelled at the given moment. A zero minLead disables the
// restriction entirely.
func CanCancel(now, slotStart time.Time, minLead time.Duration) bool {
	return slotStart.Sub(now) >= minLead
}
