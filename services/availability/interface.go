package availability

import (
	"context"
	"time"

	bookingRepo "clinagenda/database/repository/booking"
	professionalRepo "clinagenda/database/repository/professional"
	roomRepo "clinagenda/database/repository/room"
	"clinagenda/models"
)

// DefaultMaxResults caps an availability search when the caller does not say
// how many slots it wants.
const DefaultMaxResults = 5

// AvailabilityService finds and ranks open appointment slots.
type AvailabilityService interface {
	// FindBestAvailableSlots returns at most maxResults open slots for the
	// query, ranked by descending score. An empty result is not an error.
	FindBestAvailableSlots(ctx context.Context, query models.AvailabilityQuery, maxResults int) ([]models.ScoredSlot, error)
	// IsSlotAvailable checks a single interval against a professional's
	// calendar, optionally ignoring one booking (the one being rescheduled).
	IsSlotAvailable(ctx context.Context, professionalID string, start, end time.Time, excludeBookingID *string) (bool, error)
}

// DefaultAvailabilityService is the concrete implementation backed by the
// Mongo repositories.
type DefaultAvailabilityService struct {
	Schedule         ScheduleConfig
	BookingRepo      bookingRepo.BookingRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
	RoomRepo         roomRepo.RoomRepository
}
