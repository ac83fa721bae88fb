package schedule

import (
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
)

// Timing defaults used when no shift timing is available for a subject.
// The zero clock times are the documented degraded-mode output, not an
// error: the schedule still renders, just without real times.
const fallbackClock = "00:00"

// EnrichSubjects attaches start/end clock times and a period index to each
// subject by positional lookup against the shift's timing table. The result
// has the same length and order as the input.
//
// Lengths are never validated against each other: a subject list longer than
// the timing table degrades its tail to the fallback timing, and a shorter
// one simply leaves timing slots unused.
func EnrichSubjects(subjects []models.Subject, shiftID string, cfg *models.MasterConfig) []models.EnrichedSubject {
	enriched := make([]models.EnrichedSubject, len(subjects))
	shift := cfg.FindShift(shiftID)
	for i, sub := range subjects {
		enriched[i] = subjectTiming(sub, i, shift)
	}
	return enriched
}

func subjectTiming(sub models.Subject, periodIndex int, shift *models.Shift) models.EnrichedSubject {
	if shift == nil || periodIndex >= len(shift.Timings) {
		return models.EnrichedSubject{
			Subject:   sub,
			StartTime: fallbackClock,
			EndTime:   fallbackClock,
			Period:    periodIndex + 1,
		}
	}
	timing := shift.Timings[periodIndex]
	return models.EnrichedSubject{
		Subject:   sub,
		StartTime: timing.StartTime,
		EndTime:   timing.EndTime,
		Period:    timing.Period,
	}
}
