package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinagenda/config"
)

// ScheduleConfig holds the clinic-wide scheduling constants. Values are
// minutes from midnight except GridInterval, which is the step between
// consecutive candidate starts. The struct is passed by value and never
// mutated after construction, so per-call overrides are safe.
type ScheduleConfig struct {
	WorkStart    int
	WorkEnd      int
	LunchStart   int
	LunchEnd     int
	GridInterval int
}

// DefaultScheduleConfig returns the stock clinic schedule: working day
// 07:00-21:00, lunch 13:00-15:00, 15-minute grid.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		WorkStart:    7 * 60,
		WorkEnd:      21 * 60,
		LunchStart:   13 * 60,
		LunchEnd:     15 * 60,
		GridInterval: 15,
	}
}

// ScheduleConfigFromApp builds a ScheduleConfig from the loaded application
// configuration.
func ScheduleConfigFromApp() ScheduleConfig {
	return ScheduleConfig{
		WorkStart:    config.AppConfig.WorkDayStartMinute,
		WorkEnd:      config.AppConfig.WorkDayEndMinute,
		LunchStart:   config.AppConfig.LunchStartMinute,
		LunchEnd:     config.AppConfig.LunchEndMinute,
		GridInterval: config.AppConfig.SlotGridMinutes,
	}
}

// ParseClock converts an "HH:mm" string to minutes from midnight. The minute
// part must be exactly two digits; trailing text is rejected.
func ParseClock(s string) (int, error) {
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok || len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// DateKey formats a day the way bookings store their date field.
func DateKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// atMinute anchors a minutes-from-midnight offset to the given calendar day.
// Times stay in the day's location; no timezone conversion happens.
func atMinute(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, day.Location())
}

// MinuteOfDay is the inverse of atMinute for instants on the same day.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
