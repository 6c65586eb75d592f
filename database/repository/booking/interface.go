package bookingRepo

import (
	"context"

	"clinagenda/config"
	"clinagenda/database"
	"clinagenda/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides access to the bookings collection.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListForDay returns the blocking (scheduled or confirmed) bookings for a
	// professional on the given "YYYY-MM-DD" date, optionally restricted to a room.
	ListForDay(ctx context.Context, date, professionalID string, roomID *string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Reschedule moves a booking to a new interval, updating its date as well
	// so cross-day moves block the right calendar day.
	Reschedule(ctx context.Context, id, date string, start, end int, roomID *string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
