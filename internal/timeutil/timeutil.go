package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
)

// ErrFormat is returned when a clock-time string is not HH:MM.
var ErrFormat = errors.New("invalid time format")

// DateKey returns the YYYY-MM-DD key for t built from its local calendar
// fields. Two instants on the same local day always produce the same key,
// even either side of UTC midnight.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ToMinutes parses an HH:MM string into its minute-of-day value.
func ToMinutes(s string) (int, error) {
	h, m, err := splitClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// MinuteOfDay returns t's minute-of-day value.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// StartOfDay returns midnight of t's local calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference between the local calendar
// days of a and b (positive when b is after a).
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD key into midnight of that day in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// LoadLocation loads an IANA timezone name. "Local" or empty selects the
// system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks whether the timezone name is loadable.
func ValidateTimezone(timezone string) error {
	if _, err := LoadLocation(timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return nil
}

func splitClock(s string) (h, m int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	h, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return h, m, nil
}
