package cli

import (
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	loc, err := timeutil.LoadLocation(ctx.Config.Timezone)
	if err != nil {
		loc = time.Local
	}
	date, err := timeutil.ParseDate(c.Date, loc)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}

	view, err := ctx.LoadDayView(date)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", FormatDate(date))
	PrintDayCard(view.Resolved)
	if view.Resolved != nil && !view.Resolved.IsHoliday {
		fmt.Println()
		PrintSchedule(view.Subjects)
	}
	return nil
}
