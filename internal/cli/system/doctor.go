package system

import (
	"fmt"
	"time"

	"github.com/glitch-xp/loyola-academic-calender/internal/cli"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

// staleAfter is how old the cached documents may get before doctor warns.
const staleAfter = 7 * 24 * time.Hour

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	cacheReachable := false

	if err := checkCacheReachable(ctx); err != nil {
		fmt.Printf("❌ Cache reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Cache reachable: OK\n")
		cacheReachable = true
	}

	if err := checkTimezone(ctx); err != nil {
		fmt.Printf("❌ Timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Timezone: OK\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	if cacheReachable {
		if err := checkProfile(ctx); err != nil {
			fmt.Printf("❌ Course selection: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Course selection: OK\n")
		}

		if err := checkDocuments(ctx); err != nil {
			fmt.Printf("❌ Cached documents: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Cached documents: OK\n")
		}

		if err := checkFreshness(ctx); err != nil {
			fmt.Printf("⚠ Cache freshness: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Cache freshness: OK\n")
		}
	} else {
		fmt.Printf("⊘ Course selection: SKIPPED (cache not reachable)\n")
		fmt.Printf("⊘ Cached documents: SKIPPED (cache not reachable)\n")
		fmt.Printf("⊘ Cache freshness: SKIPPED (cache not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkCacheReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	return timeutil.ValidateTimezone(ctx.Config.Timezone)
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkProfile(ctx *cli.Context) error {
	profile, err := storage.GetProfile(ctx.Store)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no course selected, run 'loyolacal setup'")
	}
	if profile.Department == "" || profile.Section == "" {
		return fmt.Errorf("cached selection is incomplete, re-run 'loyolacal setup'")
	}
	return nil
}

func checkDocuments(ctx *cli.Context) error {
	cal, err := storage.GetCalendar(ctx.Store)
	if err != nil {
		return err
	}
	if cal == nil {
		return fmt.Errorf("no calendar cached, run 'loyolacal refresh'")
	}
	tt, err := storage.GetTimeTable(ctx.Store)
	if err != nil {
		return err
	}
	if tt == nil {
		return fmt.Errorf("no timetable cached, run 'loyolacal refresh'")
	}
	for key := range cal {
		if _, err := time.Parse("2006-01-02", key); err != nil {
			return fmt.Errorf("calendar has malformed date key %q", key)
		}
	}
	return nil
}

func checkFreshness(ctx *cli.Context) error {
	last, err := storage.LastFetch(ctx.Store)
	if err != nil {
		return err
	}
	if last.IsZero() {
		return fmt.Errorf("never fetched, run 'loyolacal refresh'")
	}
	if age := time.Since(last); age > staleAfter {
		return fmt.Errorf("cache is %d days old, consider 'loyolacal refresh'", int(age.Hours()/24))
	}
	return nil
}
