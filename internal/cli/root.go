package cli

import (
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/config"
	"github.com/glitch-xp/loyola-academic-calender/internal/fetch"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

type Context struct {
	Store      storage.Provider
	Config     *config.Config
	ConfigPath string
	Client     *fetch.Client
}

// Now returns the current time in the configured timezone, falling back to
// the system timezone when the configured name does not load.
func (c *Context) Now() time.Time {
	loc, err := timeutil.LoadLocation(c.Config.Timezone)
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}

// DayView is everything the date-centric commands need for one calendar day.
type DayView struct {
	Date     time.Time
	Resolved *schedule.ResolvedDay // nil when the calendar has no entry
	Subjects []models.EnrichedSubject
	Calendar models.CalendarMap
}

// LoadDayView assembles the view for the given date from cached documents.
// Missing documents degrade the view instead of failing it: no calendar
// entry leaves Resolved nil, no timetable leaves Subjects empty.
func (c *Context) LoadDayView(date time.Time) (*DayView, error) {
	profile, err := storage.GetProfile(c.Store)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no course selected, run 'loyolacal setup' first")
	}

	cal, err := storage.GetCalendar(c.Store)
	if err != nil {
		return nil, err
	}
	if cal == nil {
		return nil, fmt.Errorf("no calendar cached, run 'loyolacal refresh'")
	}

	view := &DayView{Date: date, Calendar: cal}
	view.Resolved = schedule.ResolveDay(date, cal)
	if view.Resolved == nil || view.Resolved.DayOrder == nil {
		return view, nil
	}

	tt, err := storage.GetTimeTable(c.Store)
	if err != nil {
		return nil, err
	}
	master, err := storage.GetMasterConfig(c.Store)
	if err != nil {
		return nil, err
	}
	view.Subjects = schedule.EnrichSubjects(tt[*view.Resolved.DayOrder], profile.Shift, master)
	return view, nil
}
