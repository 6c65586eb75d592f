package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinagenda/models"
	"clinagenda/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryBookingRepo is an in-memory BookingRepository for tests.
type memoryBookingRepo struct {
	bookings map[string]models.Booking
	err      error
}

func newMemoryBookingRepo(bookings ...models.Booking) *memoryBookingRepo {
	repo := &memoryBookingRepo{bookings: make(map[string]models.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (m *memoryBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	if m.err != nil {
		return m.err
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *memoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	booking, ok := m.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &booking, nil
}

func (m *memoryBookingRepo) ListForDay(ctx context.Context, date, professionalID string, roomID *string) ([]models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date && b.ProfessionalID == professionalID && b.Blocks() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	booking, ok := m.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	booking.Status = status
	m.bookings[id] = booking
	return nil
}

func (m *memoryBookingRepo) Reschedule(ctx context.Context, id, date string, start, end int, roomID *string) error {
	booking, ok := m.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	booking.Date = date
	booking.Start = start
	booking.End = end
	if roomID != nil {
		booking.RoomID = *roomID
	}
	m.bookings[id] = booking
	return nil
}

func newTestService(repo *memoryBookingRepo) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		BookingRepo: repo,
		Availability: &availability.DefaultAvailabilityService{
			Schedule:    availability.DefaultScheduleConfig(),
			BookingRepo: repo,
		},
	}
}

func testDay() time.Time {
	return time.Date(2026, time.September, 14, 0, 0, 0, 0, time.Local)
}

func at(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, day.Location())
}

func TestCreate(t *testing.T) {
	day := testDay()
	repo := newMemoryBookingRepo()
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		PatientID:      "pac-1",
		Start:          at(day, 600),
		End:            at(day, 630),
		Reason:         "Consulta general",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusScheduled, booking.Status)
	assert.Equal(t, 600, booking.Start)
	assert.Equal(t, 630, booking.End)
	assert.Equal(t, "2026-09-14", booking.Date)
}

func TestCreate_SlotTaken(t *testing.T) {
	day := testDay()
	repo := newMemoryBookingRepo(models.Booking{
		ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
		Start: 600, End: 660, Status: models.BookingStatusConfirmed,
	})
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 630),
		End:            at(day, 690),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// An adjacent interval is not a conflict.
	booking, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 660),
		End:            at(day, 690),
	})
	require.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestCreate_CancelledBookingDoesNotBlock(t *testing.T) {
	day := testDay()
	repo := newMemoryBookingRepo(models.Booking{
		ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
		Start: 600, End: 660, Status: models.BookingStatusCancelled,
	})
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 600),
		End:            at(day, 660),
	})
	assert.NoError(t, err)
}

func TestCreate_InvalidInterval(t *testing.T) {
	day := testDay()
	svc := newTestService(newMemoryBookingRepo())

	_, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 630),
		End:            at(day, 600),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 1380),
		End:            at(day.AddDate(0, 0, 1), 30),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestReschedule(t *testing.T) {
	day := testDay()
	repo := newMemoryBookingRepo(
		models.Booking{
			ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
			Start: 600, End: 660, Status: models.BookingStatusScheduled,
		},
		models.Booking{
			ID: "b2", ProfessionalID: "prof-1", Date: "2026-09-14",
			Start: 720, End: 780, Status: models.BookingStatusConfirmed,
		},
	)
	svc := newTestService(repo)

	// Moving b1 onto its own old interval shifted by 15 minutes succeeds:
	// the booking being moved is excluded from the conflict check.
	booking, err := svc.Reschedule(context.Background(), "b1", at(day, 615), at(day, 675), nil)
	require.NoError(t, err)
	assert.Equal(t, 615, booking.Start)
	assert.Equal(t, 675, booking.End)

	// Moving b1 onto b2's interval fails.
	_, err = svc.Reschedule(context.Background(), "b1", at(day, 720), at(day, 780), nil)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Unknown booking.
	_, err = svc.Reschedule(context.Background(), "missing", at(day, 600), at(day, 630), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReschedule_CrossDayMovesDate(t *testing.T) {
	day := testDay()
	nextDay := day.AddDate(0, 0, 1)
	repo := newMemoryBookingRepo(models.Booking{
		ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
		Start: 600, End: 660, Status: models.BookingStatusScheduled,
	})
	svc := newTestService(repo)
	ctx := context.Background()

	moved, err := svc.Reschedule(ctx, "b1", at(nextDay, 600), at(nextDay, 660), nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", moved.Date)

	// The old day's interval is released.
	free, err := svc.Availability.IsSlotAvailable(ctx, "prof-1", at(day, 600), at(day, 660), nil)
	require.NoError(t, err)
	assert.True(t, free)

	// The new day's interval now blocks: booking it again must conflict.
	_, err = svc.Create(ctx, CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(nextDay, 600),
		End:            at(nextDay, 660),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestConfirmAndCancel(t *testing.T) {
	repo := newMemoryBookingRepo(models.Booking{
		ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
		Start: 600, End: 660, Status: models.BookingStatusScheduled,
	})
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Confirm(ctx, "b1"))
	booking, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	// Confirming twice is rejected.
	assert.ErrorIs(t, svc.Confirm(ctx, "b1"), ErrInvalidState)

	require.NoError(t, svc.Cancel(ctx, "b1"))
	booking, err = repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)

	// Cancelling a cancelled booking is rejected.
	assert.ErrorIs(t, svc.Cancel(ctx, "b1"), ErrInvalidState)
}

func TestDayAgenda(t *testing.T) {
	repo := newMemoryBookingRepo(
		models.Booking{
			ID: "b1", ProfessionalID: "prof-1", Date: "2026-09-14",
			Start: 600, End: 660, Status: models.BookingStatusScheduled,
		},
		models.Booking{
			ID: "b2", ProfessionalID: "prof-2", Date: "2026-09-14",
			Start: 600, End: 660, Status: models.BookingStatusScheduled,
		},
		models.Booking{
			ID: "b3", ProfessionalID: "prof-1", Date: "2026-09-15",
			Start: 600, End: 660, Status: models.BookingStatusScheduled,
		},
	)
	svc := newTestService(repo)

	agenda, err := svc.DayAgenda(context.Background(), "prof-1", testDay())
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Equal(t, "b1", agenda[0].ID)
}

func TestCreate_StoreErrorPropagates(t *testing.T) {
	day := testDay()
	repo := newMemoryBookingRepo()
	repo.err = errors.New("mongo: connection refused")
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		ProfessionalID: "prof-1",
		Start:          at(day, 600),
		End:            at(day, 630),
	})
	require.Error(t, err)
}
