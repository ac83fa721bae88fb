// Package schedule is the day-order resolution and schedule-enrichment
// engine. Everything here is a pure function of its inputs plus an explicit
// "now"; data loading, rendering, and the refresh tick live elsewhere.
package schedule

import (
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

// ResolvedDay is a calendar entry with its day-order code normalized to a
// plain integer. DayOrder and IsHoliday are independent: a holiday entry
// that still carries a day order is passed through unmodified, and the UI
// decides precedence.
type ResolvedDay struct {
	DayOrder  *int
	IsHoliday bool
	Event     string
}

// ResolveDay looks up the calendar entry for date's local calendar day.
// It returns nil when the calendar has no entry for that day, which callers
// treat as "no data" rather than an error.
func ResolveDay(date time.Time, cal models.CalendarMap) *ResolvedDay {
	entry, ok := cal[timeutil.DateKey(date)]
	if !ok {
		return nil
	}
	return &ResolvedDay{
		DayOrder:  normalizeDayOrder(entry.DayOrder),
		IsHoliday: entry.IsHoliday,
		Event:     entry.Event,
	}
}

// normalizeDayOrder collapses the heterogeneous day-order encodings to a
// single integer-or-nil. A string code yields its first run of decimal
// digits. A digit-free label normalizes to nil, same as an explicit null,
// and is logged rather than rejected.
func normalizeDayOrder(code models.DayOrderCode) *int {
	switch {
	case code.Int != nil:
		n := *code.Int
		return &n
	case code.Str != nil:
		if n, ok := firstNumber(*code.Str); ok {
			return &n
		}
		logger.Warn("day order label has no embedded number", "label", *code.Str)
		return nil
	default:
		return nil
	}
}

// firstNumber extracts the first maximal run of decimal digits in s.
func firstNumber(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
