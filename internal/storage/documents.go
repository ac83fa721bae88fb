package storage

import (
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
)

// Typed accessors for the cached documents. Each returns nil when the
// document has never been cached; callers decide whether that means
// "run setup" or "show a degraded view".

func GetProfile(p Provider) (*models.UserProfile, error) {
	var profile models.UserProfile
	ok, err := p.Get(constants.KeyUserProfile, &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func SaveProfile(p Provider, profile models.UserProfile) error {
	return p.Set(constants.KeyUserProfile, profile)
}

// ClearUser removes the profile along with its course-specific documents.
// The master config stays cached; it is shared across selections.
func ClearUser(p Provider) error {
	for _, key := range []string{constants.KeyUserProfile, constants.KeyTimeTable, constants.KeyDayOrderConfig} {
		if err := p.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

func GetMasterConfig(p Provider) (*models.MasterConfig, error) {
	var cfg models.MasterConfig
	ok, err := p.Get(constants.KeyMasterConfig, &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

func SaveMasterConfig(p Provider, cfg models.MasterConfig) error {
	return p.Set(constants.KeyMasterConfig, cfg)
}

func GetTimeTable(p Provider) (models.TimeTable, error) {
	var tt models.TimeTable
	ok, err := p.Get(constants.KeyTimeTable, &tt)
	if err != nil || !ok {
		return nil, err
	}
	return tt, nil
}

func SaveTimeTable(p Provider, tt models.TimeTable) error {
	return p.Set(constants.KeyTimeTable, tt)
}

func GetCalendar(p Provider) (models.CalendarMap, error) {
	var cal models.CalendarMap
	ok, err := p.Get(constants.KeyDayOrderConfig, &cal)
	if err != nil || !ok {
		return nil, err
	}
	return cal, nil
}

func SaveCalendar(p Provider, cal models.CalendarMap) error {
	return p.Set(constants.KeyDayOrderConfig, cal)
}

func StampLastFetch(p Provider, at time.Time) error {
	return p.Set(constants.KeyLastFetch, at.UTC().Format(time.RFC3339))
}

// LastFetch returns the zero time when no fetch has ever completed.
func LastFetch(p Provider) (time.Time, error) {
	var stamp string
	ok, err := p.Get(constants.KeyLastFetch, &stamp)
	if err != nil || !ok {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}
