package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
)

type RefreshCmd struct{}

// Run re-fetches the course documents for the cached selection and replaces
// the cached copies. The old cache stays intact if any fetch fails.
func (c *RefreshCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := Refresh(ctx); err != nil {
		return err
	}
	fmt.Println("Cache refreshed.")
	return nil
}

// Refresh performs the fetch-and-recache cycle against an already loaded
// store. The watch loop reuses it on its cron schedule.
func Refresh(ctx *Context) error {
	profile, err := storage.GetProfile(ctx.Store)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no course selected, run 'loyolacal setup' first")
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	master, err := ctx.Client.FetchMasterConfig(fetchCtx)
	if err != nil {
		return err
	}
	data, err := ctx.Client.FetchCourseData(fetchCtx, *profile)
	if err != nil {
		return err
	}

	if err := storage.SaveMasterConfig(ctx.Store, *master); err != nil {
		return err
	}
	if err := storage.SaveTimeTable(ctx.Store, data.TimeTable); err != nil {
		return err
	}
	if err := storage.SaveCalendar(ctx.Store, data.Calendar); err != nil {
		return err
	}
	if err := storage.StampLastFetch(ctx.Store, time.Now()); err != nil {
		return err
	}

	logger.Info("cache refreshed", "department", profile.Department, "section", profile.Section)
	return nil
}
