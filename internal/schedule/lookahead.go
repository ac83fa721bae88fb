package schedule

import (
	"sort"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

// NextEvent returns the nearest calendar entry at or after today's local
// calendar day that carries a named event, or nil when none exists.
func NextEvent(cal models.CalendarMap, today time.Time) *models.EventInfo {
	events := UpcomingEvents(cal, today, 1)
	if len(events) == 0 {
		return nil
	}
	return &events[0]
}

// UpcomingEvents returns up to limit named events at or after today's local
// calendar day, ascending by date. A limit <= 0 returns all of them.
// DaysLeft is 0 for an event today and never negative.
func UpcomingEvents(cal models.CalendarMap, today time.Time, limit int) []models.EventInfo {
	start := timeutil.StartOfDay(today)

	// Lexical order on YYYY-MM-DD keys is date order.
	keys := make([]string, 0, len(cal))
	for key := range cal {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []models.EventInfo
	for _, key := range keys {
		entry := cal[key]
		if entry.Event == "" {
			continue
		}
		date, err := timeutil.ParseDate(key, today.Location())
		if err != nil {
			continue
		}
		if date.Before(start) {
			continue
		}
		events = append(events, models.EventInfo{
			Name:      entry.Event,
			Date:      key,
			DaysLeft:  timeutil.DaysBetween(start, date),
			IsHoliday: entry.IsHoliday,
		})
		if limit > 0 && len(events) == limit {
			break
		}
	}
	return events
}
