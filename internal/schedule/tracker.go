package schedule

import (
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

// Track computes which class is in progress, which is next, and how many
// minutes remain until the next one starts, at the instant now. It returns
// nil for an empty schedule.
//
// The scan trusts the input's order: classes are assumed time-ordered and
// non-overlapping, and the first match wins. Boundary instants belong to the
// class that is starting (intervals are half-open, [start, end)), so
// back-to-back classes hand over cleanly with no "between" state. A subject
// whose timing does not parse is treated as having no timing available and
// cannot match either branch.
func Track(subjects []models.EnrichedSubject, now time.Time) *models.NextClassInfo {
	if len(subjects) == 0 {
		return nil
	}
	nowMin := timeutil.MinuteOfDay(now)

	for i := range subjects {
		startMin, err := timeutil.ToMinutes(subjects[i].StartTime)
		if err != nil {
			continue
		}
		endMin, err := timeutil.ToMinutes(subjects[i].EndTime)
		if err != nil {
			continue
		}

		if startMin <= nowMin && nowMin < endMin {
			info := &models.NextClassInfo{
				Current: &subjects[i],
				Status:  models.StatusDuring,
			}
			if i+1 < len(subjects) {
				info.Next = &subjects[i+1]
				if nextStart, err := timeutil.ToMinutes(subjects[i+1].StartTime); err == nil && nextStart > nowMin {
					info.MinutesUntilNext = nextStart - nowMin
				}
			}
			return info
		}

		if nowMin < startMin {
			// First class not yet started.
			info := &models.NextClassInfo{
				Next:             &subjects[i],
				Status:           models.StatusBefore,
				MinutesUntilNext: startMin - nowMin,
			}
			if i > 0 {
				info.Current = &subjects[i-1]
				info.Status = models.StatusBetween
			}
			return info
		}
	}

	// Now is at or past the last class's end.
	return &models.NextClassInfo{
		Current: &subjects[len(subjects)-1],
		Status:  models.StatusAfter,
	}
}
