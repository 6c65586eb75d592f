package models

import "time"

// Booking lifecycle states. Only scheduled and confirmed bookings block
// availability; cancelled and completed ones are ignored by calendar queries.
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a committed appointment on a professional's calendar.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                                         // Unique booking identifier (UUID)
	ProfessionalID string    `bson:"profesionalId" json:"profesionalId"`                   // Professional who owns the appointment
	RoomID         string    `bson:"salaId,omitempty" json:"salaId,omitempty"`             // Optional consultation room
	PatientID      string    `bson:"pacienteId,omitempty" json:"pacienteId,omitempty"`     // Patient the appointment is for
	Date           string    `bson:"date" json:"fecha"`                                    // Appointment date in "YYYY-MM-DD" format
	Start          int       `bson:"start" json:"start"`                                   // Start time (minutes from midnight)
	End            int       `bson:"end" json:"end"`                                       // End time (minutes from midnight), always > Start
	Status         string    `bson:"status" json:"status"`                                 // One of the BookingStatus* constants
	Reason         string    `bson:"motivo,omitempty" json:"motivo,omitempty"`             // Free-text visit reason
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Blocks reports whether the booking occupies its interval for
// availability purposes.
func (b Booking) Blocks() bool {
	return b.Status == BookingStatusScheduled || b.Status == BookingStatusConfirmed
}
