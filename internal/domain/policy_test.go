package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		slotStart time.Time
		minLead   time.Duration
		want      bool
	}{
		{"zero lead allows anytime", now.Add(time.Minute), 0, true},
		{"zero lead allows past slot", now.Add(-time.Hour), 0, true},
		{"enough lead", now.Add(10 * time.Hour), 4 * time.Hour, true},
		{"exactly at the boundary", now.Add(4 * time.Hour), 4 * time.Hour, true},
		{"inside restricted window", now.Add(2 * time.Hour), 4 * time.Hour, false},
		{"slot already started", now.Add(-time.Minute), 4 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancel(now, tt.slotStart, tt.minLead))
		})
	}
}
