package cli

import (
	"fmt"

	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	view, err := ctx.LoadDayView(now)
	if err != nil {
		return err
	}

	fmt.Printf("%s, %s\n\n", Greeting(now), FormatDate(now))
	PrintDayCard(view.Resolved)

	if view.Resolved != nil && !view.Resolved.IsHoliday {
		fmt.Println()
		PrintSchedule(view.Subjects)
	}

	if event := schedule.NextEvent(view.Calendar, now); event != nil {
		fmt.Println()
		PrintNextEvent(event)
	}
	return nil
}
