package availability

import (
	"clinagenda/models"
)

// Overlaps reports whether two half-open minute intervals intersect.
// Back-to-back intervals (one ending exactly where the other starts) do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// IsAvailable reports whether the candidate conflicts with none of the given
// bookings. Callers pass only blocking bookings; the calendar query filters
// out cancelled and completed ones.
func IsAvailable(candidate models.CandidateSlot, bookings []models.Booking) bool {
	for _, booking := range bookings {
		if Overlaps(candidate.Start, candidate.End, booking.Start, booking.End) {
			return false
		}
	}
	return true
}
