package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"clinagenda/models"
	"clinagenda/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FindBestAvailableSlots resolves the professionals to consider, generates one
// shared candidate grid, filters each professional's candidates against their
// own bookings, scores the survivors and returns the top maxResults by score.
//
// A store read error fails the whole call; there are no partial results.
func (s *DefaultAvailabilityService) FindBestAvailableSlots(ctx context.Context, query models.AvailabilityQuery, maxResults int) ([]models.ScoredSlot, error) {
	logger := utils.GetLogger()
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	professionals, err := s.resolveProfessionals(ctx, query.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if len(professionals) == 0 {
		return []models.ScoredSlot{}, nil
	}

	// The grid does not depend on professional identity, so it is generated once.
	candidates := GenerateCandidateSlots(s.Schedule, query.DurationMinutes, query.Preferences)
	if len(candidates) == 0 {
		return []models.ScoredSlot{}, nil
	}

	roomName := ""
	if query.RoomID != nil {
		room, err := s.RoomRepo.GetByID(ctx, *query.RoomID)
		if err != nil {
			// An unknown room matches nothing, like an unknown professional.
			if errors.Is(err, mongo.ErrNoDocuments) {
				return []models.ScoredSlot{}, nil
			}
			return nil, fmt.Errorf("failed to fetch room %s: %w", *query.RoomID, err)
		}
		roomName = room.Name
	}

	dateKey := DateKey(query.Date)
	scored := []models.ScoredSlot{}
	for _, professional := range professionals {
		bookings, err := s.BookingRepo.ListForDay(ctx, dateKey, professional.ID, query.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bookings for professional %s: %w", professional.ID, err)
		}

		for _, candidate := range candidates {
			if !IsAvailable(candidate, bookings) {
				continue
			}
			score, reason := Score(s.Schedule, candidate, professional.ID, query.Preferences)
			slot := models.ScoredSlot{
				Start:            atMinute(query.Date, candidate.Start),
				End:              atMinute(query.Date, candidate.End),
				ProfessionalID:   professional.ID,
				ProfessionalName: professional.Name,
				Score:            score,
				Reason:           reason,
			}
			if query.RoomID != nil {
				slot.RoomID = *query.RoomID
				slot.RoomName = roomName
			}
			scored = append(scored, slot)
		}
	}

	// Stable sort keeps generation order (earliest start first, professional
	// iteration order second) among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	logger.Debug("availability search finished",
		zap.String("date", dateKey),
		zap.Int("durationMinutes", query.DurationMinutes),
		zap.Int("professionals", len(professionals)),
		zap.Int("results", len(scored)))
	return scored, nil
}

// IsSlotAvailable checks one concrete interval against a professional's day,
// optionally ignoring the booking being moved during a reschedule.
func (s *DefaultAvailabilityService) IsSlotAvailable(ctx context.Context, professionalID string, start, end time.Time, excludeBookingID *string) (bool, error) {
	bookings, err := s.BookingRepo.ListForDay(ctx, DateKey(start), professionalID, nil)
	if err != nil {
		return false, fmt.Errorf("failed to fetch bookings for professional %s: %w", professionalID, err)
	}

	startMinute := MinuteOfDay(start)
	endMinute := MinuteOfDay(end)
	for _, booking := range bookings {
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if Overlaps(startMinute, endMinute, booking.Start, booking.End) {
			return false, nil
		}
	}
	return true, nil
}

// resolveProfessionals returns the roster to search: the single requested
// professional when one was named, otherwise every active professional. A
// missing or inactive professional yields an empty set, not an error.
func (s *DefaultAvailabilityService) resolveProfessionals(ctx context.Context, professionalID *string) ([]models.Professional, error) {
	if professionalID == nil {
		professionals, err := s.ProfessionalRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active professionals: %w", err)
		}
		return professionals, nil
	}

	professional, err := s.ProfessionalRepo.GetByID(ctx, *professionalID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional %s: %w", *professionalID, err)
	}
	if !professional.Active {
		return nil, nil
	}
	return []models.Professional{*professional}, nil
}
