package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
)

type MonthCmd struct {
	Month string `help:"Month to show (YYYY-MM), defaults to the current month."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	cal, err := storage.GetCalendar(ctx.Store)
	if err != nil {
		return err
	}
	if cal == nil {
		return fmt.Errorf("no calendar cached, run 'loyolacal refresh'")
	}

	now := ctx.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if c.Month != "" {
		parsed, err := time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		first = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	fmt.Println(first.Format("January 2006"))
	fmt.Println("Sun   Mon   Tue   Wed   Thu   Fri   Sat")

	// Cells are "14:D3" (day order), "14:H " (holiday), "14:  " (no data).
	var row []string
	pad := int(first.Weekday())
	for i := 0; i < pad; i++ {
		row = append(row, "     ")
	}

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d:  ", day.Day())
		if resolved := schedule.ResolveDay(day, cal); resolved != nil {
			switch {
			case resolved.IsHoliday:
				cell = fmt.Sprintf("%2d:H ", day.Day())
			case resolved.DayOrder != nil:
				cell = fmt.Sprintf("%2d:D%d", day.Day(), *resolved.DayOrder)
			}
		}
		row = append(row, cell)
		if len(row) == 7 {
			fmt.Println(strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Println(strings.Join(row, " "))
	}

	fmt.Println("\nDn day order n, H holiday")
	return nil
}
