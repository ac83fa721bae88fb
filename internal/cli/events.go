package cli

import (
	"fmt"

	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
)

type EventsCmd struct {
	Limit int `help:"Maximum number of events to show." default:"5"`
}

func (c *EventsCmd) Run(ctx *Context) error {
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

	events := schedule.UpcomingEvents(cal, ctx.Now(), c.Limit)
	if len(events) == 0 {
		fmt.Println("No upcoming events.")
		return nil
	}

	for _, event := range events {
		marker := " "
		if event.IsHoliday {
			marker = "*"
		}
		switch event.DaysLeft {
		case 0:
			fmt.Printf("%s %s  %-30s today\n", marker, event.Date, event.Name)
		case 1:
			fmt.Printf("%s %s  %-30s tomorrow\n", marker, event.Date, event.Name)
		default:
			fmt.Printf("%s %s  %-30s in %d days\n", marker, event.Date, event.Name, event.DaysLeft)
		}
	}
	fmt.Println("\n* holiday")
	return nil
}
