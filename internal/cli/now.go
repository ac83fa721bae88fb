package cli

import (
	"fmt"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	view, err := ctx.LoadDayView(now)
	if err != nil {
		return err
	}

	clock := now.Format(constants.TimeFormat)

	if view.Resolved == nil {
		fmt.Printf("Now (%s): no calendar data for today.\n", clock)
		return nil
	}
	if view.Resolved.IsHoliday {
		label := view.Resolved.Event
		if label == "" {
			label = "Holiday"
		}
		fmt.Printf("Now (%s): %s, no classes today.\n", clock, label)
		return nil
	}

	info := schedule.Track(view.Subjects, now)
	if info == nil {
		fmt.Printf("Now (%s): no classes scheduled today.\n", clock)
		return nil
	}

	switch info.Status {
	case models.StatusBefore:
		fmt.Printf("Now (%s): classes haven't started yet.\n", clock)
		fmt.Printf("First up: %s at %s (in %d min)\n", info.Next.Name, info.Next.StartTime, info.MinutesUntilNext)
	case models.StatusDuring:
		fmt.Printf("Now (%s): %s (%s–%s)\n", clock, info.Current.Name, info.Current.StartTime, info.Current.EndTime)
		if info.Next != nil {
			fmt.Printf("Next: %s at %s (in %d min)\n", info.Next.Name, info.Next.StartTime, info.MinutesUntilNext)
		} else {
			fmt.Println("Last class of the day.")
		}
	case models.StatusBetween:
		fmt.Printf("Now (%s): between classes.\n", clock)
		fmt.Printf("Next: %s at %s (in %d min)\n", info.Next.Name, info.Next.StartTime, info.MinutesUntilNext)
	case models.StatusAfter:
		fmt.Printf("Now (%s): classes are over for today.\n", clock)
	}
	return nil
}
