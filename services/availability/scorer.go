package availability

import (
	"strings"

	"clinagenda/models"
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100
)

// scoreRule is one additive scoring rule. Rules are independent and every
// applicable one fires; the rationale string joins the labels of the rules
// that did.
type scoreRule struct {
	label   string
	delta   int
	applies func(cfg ScheduleConfig, slot models.CandidateSlot, professionalID string, prefs *models.Preferences) bool
}

var scoreRules = []scoreRule{
	{
		label: "Profesional preferido",
		delta: 30,
		applies: func(_ ScheduleConfig, _ models.CandidateSlot, professionalID string, prefs *models.Preferences) bool {
			return prefs != nil && prefs.PreferredProfessional != nil && *prefs.PreferredProfessional == professionalID
		},
	},
	{
		label: "Dentro del horario preferido",
		delta: 20,
		applies: func(cfg ScheduleConfig, slot models.CandidateSlot, _ string, prefs *models.Preferences) bool {
			if prefs == nil || (prefs.WindowStart == nil && prefs.WindowEnd == nil) {
				return false
			}
			windowStart := cfg.WorkStart
			windowEnd := cfg.WorkEnd
			if prefs.WindowStart != nil {
				windowStart = *prefs.WindowStart
			}
			if prefs.WindowEnd != nil {
				windowEnd = *prefs.WindowEnd
			}
			return slot.Start >= windowStart && slot.Start <= windowEnd
		},
	},
	{
		label: "Horario extremo",
		delta: -10,
		applies: func(_ ScheduleConfig, slot models.CandidateSlot, _ string, _ *models.Preferences) bool {
			hour := slot.Start / 60
			return hour < 8 || hour > 19
		},
	},
	{
		label: "Horario óptimo",
		delta: 10,
		applies: func(_ ScheduleConfig, slot models.CandidateSlot, _ string, _ *models.Preferences) bool {
			hour := slot.Start / 60
			return (hour >= 9 && hour < 12) || (hour >= 16 && hour < 19)
		},
	},
}

// Score rates a surviving candidate for one professional against the caller's
// preferences. The result is clamped to [0, 100]. The returned rationale
// lists every rule that fired, or a generic message when none did.
func Score(cfg ScheduleConfig, slot models.CandidateSlot, professionalID string, prefs *models.Preferences) (int, string) {
	score := baseScore
	var labels []string

	for _, rule := range scoreRules {
		if rule.applies(cfg, slot, professionalID, prefs) {
			score += rule.delta
			labels = append(labels, rule.label)
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	if len(labels) == 0 {
		return score, "Horario disponible"
	}
	return score, strings.Join(labels, ", ")
}
