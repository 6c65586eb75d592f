package availability

import (
	"testing"

	"clinagenda/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestScore_NoPreferences(t *testing.T) {
	cfg := DefaultScheduleConfig()

	// 08:00, neither prime nor extreme.
	score, reason := Score(cfg, models.CandidateSlot{Start: 8 * 60, End: 8*60 + 30}, "prof-1", nil)
	assert.Equal(t, 50, score)
	assert.Equal(t, "Horario disponible", reason)
}

func TestScore_Rules(t *testing.T) {
	cfg := DefaultScheduleConfig()

	tests := []struct {
		name       string
		start      int
		prof       string
		prefs      *models.Preferences
		wantScore  int
		wantReason string
	}{
		{
			name:       "prime hours morning",
			start:      10 * 60,
			prof:       "prof-1",
			wantScore:  60,
			wantReason: "Horario óptimo",
		},
		{
			name:       "prime hours afternoon",
			start:      16 * 60,
			prof:       "prof-1",
			wantScore:  60,
			wantReason: "Horario óptimo",
		},
		{
			name:       "extreme early",
			start:      7 * 60,
			prof:       "prof-1",
			wantScore:  40,
			wantReason: "Horario extremo",
		},
		{
			name:       "extreme late",
			start:      20 * 60,
			prof:       "prof-1",
			wantScore:  40,
			wantReason: "Horario extremo",
		},
		{
			name:  "preferred professional at prime hours",
			start: 10 * 60,
			prof:  "prof-1",
			prefs: &models.Preferences{
				PreferredProfessional: strPtr("prof-1"),
			},
			wantScore:  90,
			wantReason: "Profesional preferido, Horario óptimo",
		},
		{
			name:  "other professional only gets hour components",
			start: 10 * 60,
			prof:  "prof-2",
			prefs: &models.Preferences{
				PreferredProfessional: strPtr("prof-1"),
			},
			wantScore:  60,
			wantReason: "Horario óptimo",
		},
		{
			name:  "all bonuses capped at 100",
			start: 10 * 60,
			prof:  "prof-1",
			prefs: &models.Preferences{
				PreferredProfessional: strPtr("prof-1"),
				WindowStart:           intPtr(9 * 60),
				WindowEnd:             intPtr(18 * 60),
			},
			wantScore:  100,
			wantReason: "Profesional preferido, Dentro del horario preferido, Horario óptimo",
		},
		{
			name:  "preference window inclusive at both ends",
			start: 12 * 60,
			prof:  "prof-1",
			prefs: &models.Preferences{
				WindowStart: intPtr(12 * 60),
				WindowEnd:   intPtr(12 * 60),
			},
			wantScore:  70,
			wantReason: "Dentro del horario preferido",
		},
		{
			name:  "start outside preference window",
			start: 8 * 60,
			prof:  "prof-1",
			prefs: &models.Preferences{
				WindowStart: intPtr(9 * 60),
				WindowEnd:   intPtr(12 * 60),
			},
			wantScore:  50,
			wantReason: "Horario disponible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := models.CandidateSlot{Start: tt.start, End: tt.start + 30}
			score, reason := Score(cfg, slot, tt.prof, tt.prefs)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestScore_BoundsHold(t *testing.T) {
	cfg := DefaultScheduleConfig()
	prefsVariants := []*models.Preferences{
		nil,
		{PreferredProfessional: strPtr("prof-1")},
		{WindowStart: intPtr(7 * 60), WindowEnd: intPtr(21 * 60), PreferredProfessional: strPtr("prof-1")},
		{WindowStart: intPtr(0), WindowEnd: intPtr(0)},
	}

	for start := 0; start < 24*60; start += cfg.GridInterval {
		slot := models.CandidateSlot{Start: start, End: start + 30}
		for _, prefs := range prefsVariants {
			for _, prof := range []string{"prof-1", "prof-2"} {
				score, reason := Score(cfg, slot, prof, prefs)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
				assert.NotEmpty(t, reason)
			}
		}
	}
}
