package availability

import (
	"clinagenda/models"
)

// GenerateCandidateSlots walks the effective working window in fixed steps of
// the grid interval and returns every candidate of exactly durationMinutes
// that fits. The window defaults to the clinic working hours and narrows to
// the caller's preferred window when one is supplied.
//
// A non-positive duration, or a window too short for a single slot, yields an
// empty sequence rather than an error.
func GenerateCandidateSlots(cfg ScheduleConfig, durationMinutes int, prefs *models.Preferences) []models.CandidateSlot {
	if durationMinutes <= 0 || cfg.GridInterval <= 0 {
		return nil
	}

	windowStart := cfg.WorkStart
	windowEnd := cfg.WorkEnd
	if prefs != nil {
		if prefs.WindowStart != nil {
			windowStart = *prefs.WindowStart
		}
		if prefs.WindowEnd != nil {
			windowEnd = *prefs.WindowEnd
		}
	}

	var slots []models.CandidateSlot
	for start := windowStart; start+durationMinutes <= windowEnd; start += cfg.GridInterval {
		end := start + durationMinutes
		// Half-open overlap: candidates that merely touch the lunch window
		// boundary remain valid.
		if prefs != nil && prefs.ExcludeLunch && start < cfg.LunchEnd && end > cfg.LunchStart {
			continue
		}
		slots = append(slots, models.CandidateSlot{Start: start, End: end})
	}
	return slots
}
