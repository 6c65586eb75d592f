package models

import "time"

// Preferences carries the caller's soft scheduling preferences. Nil pointer
// fields mean "no preference"; empty strings are never used as sentinels.
type Preferences struct {
	WindowStart           *int    // Preferred earliest start (minutes from midnight)
	WindowEnd             *int    // Preferred latest end (minutes from midnight)
	ExcludeLunch          bool    // Skip slots overlapping the clinic lunch window
	PreferredProfessional *string // Used for scoring only, never for filtering
}

// AvailabilityQuery describes one availability search.
type AvailabilityQuery struct {
	ProfessionalID  *string      // Nil means "search across all active professionals"
	RoomID          *string      // Optional room the appointment must use
	Date            time.Time    // Target calendar day
	DurationMinutes int          // Requested appointment length
	Preferences     *Preferences // Optional soft preferences
}

// CandidateSlot is a grid-aligned interval under consideration, expressed
// in minutes from midnight of the query day.
type CandidateSlot struct {
	Start int
	End   int
}

// ScoredSlot is a ranked availability result for one professional.
type ScoredSlot struct {
	Start            time.Time `json:"inicio"`
	End              time.Time `json:"fin"`
	ProfessionalID   string    `json:"profesionalId"`
	ProfessionalName string    `json:"profesionalNombre"`
	RoomID           string    `json:"salaId,omitempty"`
	RoomName         string    `json:"salaNombre,omitempty"`
	Score            int       `json:"score"`
	Reason           string    `json:"razon"`
}
