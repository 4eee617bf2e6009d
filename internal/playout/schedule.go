package playout

import (
	"strconv"
	"strings"
	"time"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

const dateLayout = "2006-01-02"

// ScheduleActiveAt reports whether a schedule rule is live at the given
// instant. now must already be in the store's local timezone; all date and
// weekday checks read now's calendar fields directly.
func ScheduleActiveAt(s model.Schedule, now time.Time) bool {
	if !s.Active {
		return false
	}
	if !withinDateBounds(s.StartDate, s.EndDate, now) {
		return false
	}

	switch s.ScheduleType {
	case model.ScheduleTypeAlways, model.ScheduleTypeDateRange:
		return true

	case model.ScheduleTypeDaily:
		return withinClockWindow(s.StartTime, s.EndTime, now)

	case model.ScheduleTypeWeekly:
		// An empty day set matches nothing; validation rejects it upstream
		// but stale rows must not silently mean "all days".
		if !containsDay(s.DaysOfWeek, isoWeekday(now)) {
			return false
		}
		return withinClockWindow(s.StartTime, s.EndTime, now)

	case model.ScheduleTypeCustom:
		if len(s.CustomDates) == 0 && s.StartTime == nil && s.EndTime == nil {
			return false
		}
		if len(s.CustomDates) > 0 && !containsDate(s.CustomDates, now) {
			return false
		}
		return withinClockWindow(s.StartTime, s.EndTime, now)
	}

	return false
}

// withinDateBounds checks the inclusive [start, end] calendar-date window.
// Either bound may be nil (unbounded on that side). Comparison is on the
// ISO date string so the bounds' own clock/zone fields are irrelevant.
func withinDateBounds(start, end *time.Time, now time.Time) bool {
	today := now.Format(dateLayout)
	if start != nil && today < start.Format(dateLayout) {
		return false
	}
	if end != nil && today > end.Format(dateLayout) {
		return false
	}
	return true
}

// withinClockWindow checks the inclusive time-of-day window. Nil bounds
// leave that side open; end before start wraps across midnight.
func withinClockWindow(start, end *string, now time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	s := 0
	e := 24*60 - 1
	if start != nil {
		s = clockMinutes(*start)
	}
	if end != nil {
		e = clockMinutes(*end)
	}
	cur := now.Hour()*60 + now.Minute()
	if e < s {
		return cur >= s || cur <= e
	}
	return cur >= s && cur <= e
}

// clockMinutes parses "HH:MM" (or "HH:MM:SS", as Postgres time columns scan)
// into minutes since midnight. Malformed input reads as 0 — validation keeps
// it out of stored rows.
func clockMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// isoWeekday maps time.Weekday to the 1=Monday..7=Sunday encoding used by
// Schedule.DaysOfWeek.
func isoWeekday(now time.Time) int64 {
	wd := int64(now.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func containsDay(days []int64, day int64) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func containsDate(dates []string, now time.Time) bool {
	today := now.Format(dateLayout)
	for _, d := range dates {
		// tolerate timestamps stored alongside bare dates
		if len(d) >= len(dateLayout) && d[:len(dateLayout)] == today {
			return true
		}
	}
	return false
}
