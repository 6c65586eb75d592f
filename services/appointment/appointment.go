package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinagenda/models"
	"clinagenda/services/availability"
	"clinagenda/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Create books an appointment after re-checking the interval against the
// professional's calendar. Availability searches are best-effort, so a slot
// returned earlier may have been taken in the meantime.
func (s *DefaultAppointmentService) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	logger := utils.GetLogger()
	if err := validateInterval(req.Start, req.End); err != nil {
		return nil, err
	}

	free, err := s.Availability.IsSlotAvailable(ctx, req.ProfessionalID, req.Start, req.End, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotTaken
	}

	now := time.Now()
	booking := models.Booking{
		ID:             uuid.New().String(),
		ProfessionalID: req.ProfessionalID,
		PatientID:      req.PatientID,
		Date:           availability.DateKey(req.Start),
		Start:          availability.MinuteOfDay(req.Start),
		End:            availability.MinuteOfDay(req.End),
		Status:         models.BookingStatusScheduled,
		Reason:         req.Reason,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	logger.Info("appointment created",
		zap.String("bookingID", booking.ID),
		zap.String("professionalID", booking.ProfessionalID),
		zap.String("date", booking.Date))
	return &booking, nil
}

// Reschedule moves an existing appointment to a new interval, ignoring the
// appointment's own interval during the conflict check.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id string, start, end time.Time, roomID *string) (*models.Booking, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Blocks() {
		return nil, ErrInvalidState
	}

	free, err := s.Availability.IsSlotAvailable(ctx, booking.ProfessionalID, start, end, &id)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotTaken
	}

	if err := s.BookingRepo.Reschedule(ctx, id, availability.DateKey(start), availability.MinuteOfDay(start), availability.MinuteOfDay(end), roomID); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment %s: %w", id, err)
	}
	return s.getBooking(ctx, id)
}

// Confirm promotes a scheduled appointment to confirmed.
func (s *DefaultAppointmentService) Confirm(ctx context.Context, id string) error {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusScheduled {
		return ErrInvalidState
	}
	return s.BookingRepo.UpdateStatus(ctx, id, models.BookingStatusConfirmed)
}

// Cancel releases the appointment's interval. Cancelled bookings no longer
// block availability.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}
	if !booking.Blocks() {
		return ErrInvalidState
	}
	return s.BookingRepo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
}

// DayAgenda lists a professional's blocking bookings for one day, ordered by
// start time.
func (s *DefaultAppointmentService) DayAgenda(ctx context.Context, professionalID string, day time.Time) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListForDay(ctx, availability.DateKey(day), professionalID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda for professional %s: %w", professionalID, err)
	}
	return bookings, nil
}

func (s *DefaultAppointmentService) getBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}

func validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	if availability.DateKey(start) != availability.DateKey(end) {
		return ErrInvalidInterval
	}
	return nil
}
