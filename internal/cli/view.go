package cli

import (
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/models"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
)

// Greeting returns a time-of-day greeting for the header line.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// FormatDate renders a date the way the screens show it, e.g.
// "Saturday, Feb 14".
func FormatDate(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

// PrintDayCard prints the day-order / holiday headline for a resolved day.
func PrintDayCard(resolved *schedule.ResolvedDay) {
	switch {
	case resolved == nil:
		fmt.Println("No calendar data for this date.")
	case resolved.IsHoliday:
		// Holiday wins over any day order the entry still carries.
		label := resolved.Event
		if label == "" {
			label = "No Classes"
		}
		fmt.Printf("Holiday: %s\n", label)
	case resolved.DayOrder != nil:
		fmt.Printf("Day Order %d\n", *resolved.DayOrder)
	default:
		fmt.Println("Day Order -")
	}
}

// PrintSchedule prints the enriched subject list, one class per line.
func PrintSchedule(subjects []models.EnrichedSubject) {
	if len(subjects) == 0 {
		fmt.Println("No classes scheduled.")
		return
	}
	for _, sub := range subjects {
		line := fmt.Sprintf("%s–%s  %s (%s)", sub.StartTime, sub.EndTime, sub.Name, sub.Code)
		if sub.Room != "" {
			line += "  " + sub.Room
		}
		fmt.Println(line)
	}
}

// PrintNextEvent prints the upcoming-event countdown line, if any.
func PrintNextEvent(event *models.EventInfo) {
	if event == nil {
		return
	}
	switch event.DaysLeft {
	case 0:
		fmt.Printf("Upcoming: %s today\n", event.Name)
	case 1:
		fmt.Printf("Upcoming: %s tomorrow\n", event.Name)
	default:
		fmt.Printf("Upcoming: %s in %d days (%s)\n", event.Name, event.DaysLeft, event.Date)
	}
}
