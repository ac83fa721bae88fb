package system

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/cli"
	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/schedule"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

type DebugCmd struct {
	CachePath   *DebugCachePathCmd   `cmd:"" name:"cache-path" help:"Show cache path."`
	DumpDay     *DebugDumpDayCmd     `cmd:"" name:"dump-day" help:"Dump the resolved view of a day as JSON."`
	DumpProfile *DebugDumpProfileCmd `cmd:"" name:"dump-profile" help:"Dump the cached course selection as JSON."`
	DumpEvents  *DebugDumpEventsCmd  `cmd:"" name:"dump-events" help:"Dump upcoming events as JSON."`
}

type DebugCachePathCmd struct{}

func (cmd *DebugCachePathCmd) Run(ctx *cli.Context) error {
	return dumpJSON(map[string]string{"path": ctx.Store.GetCachePath()})
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	date := ctx.Now()
	if cmd.Date != "today" {
		loc, err := timeutil.LoadLocation(ctx.Config.Timezone)
		if err != nil {
			return err
		}
		date, err = timeutil.ParseDate(cmd.Date, loc)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD or 'today')", cmd.Date)
		}
	}

	view, err := ctx.LoadDayView(date)
	if err != nil {
		return err
	}
	return dumpJSON(map[string]any{
		"date":     timeutil.DateKey(view.Date),
		"resolved": view.Resolved,
		"subjects": view.Subjects,
	})
}

type DebugDumpProfileCmd struct{}

func (cmd *DebugDumpProfileCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	profile, err := storage.GetProfile(ctx.Store)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no course selected, run 'loyolacal setup' first")
	}

	last, err := storage.LastFetch(ctx.Store)
	if err != nil {
		return err
	}
	fetched := ""
	if !last.IsZero() {
		fetched = last.Format(time.RFC3339)
	}
	return dumpJSON(map[string]any{
		"profile":    profile,
		"last_fetch": fetched,
		"app":        constants.AppName,
	})
}

type DebugDumpEventsCmd struct{}

func (cmd *DebugDumpEventsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	cal, err := storage.GetCalendar(ctx.Store)
	if err != nil {
		return err
	}
	if cal == nil {
		return fmt.Errorf("no calendar cached, run 'loyolacal refresh'")
	}
	return dumpJSON(schedule.UpcomingEvents(cal, ctx.Now(), 0))
}

func dumpJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
