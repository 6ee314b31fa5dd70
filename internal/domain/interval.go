package domain

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries (aEnd == bStart) do not
// count as an overlap. Callers guarantee start < end for each interval.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
