package appointment

import (
	"context"
	"time"

	bookingRepo "clinagenda/database/repository/booking"
	"clinagenda/models"
	"clinagenda/services/availability"
)

// CreateRequest holds everything needed to book an appointment.
type CreateRequest struct {
	ProfessionalID string
	PatientID      string
	RoomID         *string
	Start          time.Time
	End            time.Time
	Reason         string
}

// AppointmentService manages the booking lifecycle. Availability results are
// candidates, not reservations: conflicts surface here, at creation time.
type AppointmentService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	Reschedule(ctx context.Context, id string, start, end time.Time, roomID *string) (*models.Booking, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	DayAgenda(ctx context.Context, professionalID string, day time.Time) ([]models.Booking, error)
}

// DefaultAppointmentService is the concrete implementation.
type DefaultAppointmentService struct {
	BookingRepo  bookingRepo.BookingRepository
	Availability availability.AvailabilityService
}
